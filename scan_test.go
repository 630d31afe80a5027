package bo4e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerStringFastPath(t *testing.T) {
	sc := &scanner{buf: []byte(`"plain text"`)}
	s, err := sc.str()
	require.NoError(t, err)
	assert.Equal(t, "plain text", s)
}

func TestScannerStringUnescapesInPlace(t *testing.T) {
	cases := map[string]string{
		`"a\"b"`:         `a"b`,
		`"line\nbreak"`:  "line\nbreak",
		`"tab\tstop"`:    "tab\tstop",
		`"back\\slash"`:  `back\slash`,
		`"\u00df"`:       "ß",
		`"\u00dfe"`:      "ße",
		`"\ud83d\ude00"`: "😀",
		`"raw ümlaut"`:   "raw ümlaut",
		`"mix\u00e4\tw"`: "mixä\tw",
	}
	for in, want := range cases {
		sc := &scanner{buf: []byte(in)}
		s, err := sc.str()
		require.NoError(t, err, in)
		assert.Equal(t, want, s, in)
	}
}

func TestScannerStringErrors(t *testing.T) {
	for _, in := range []string{
		`"unterminated`,
		`"bad\qescape"`,
		`"\u12g4"`,
		`"\ud83d"`,       // lone high surrogate
		"\"ctrl\x01char\"", // raw control character
	} {
		sc := &scanner{buf: []byte(in)}
		_, err := sc.str()
		var syntax *SyntaxError
		require.ErrorAs(t, err, &syntax, in)
		assert.GreaterOrEqual(t, syntax.Offset, 0, in)
	}
}

func TestScannerNumber(t *testing.T) {
	for _, in := range []string{"0", "-12", "3.14", "1e9", "-2.5E-3"} {
		sc := &scanner{buf: []byte(in)}
		lit, err := sc.number()
		require.NoError(t, err, in)
		assert.Equal(t, in, lit, in)
	}

	sc := &scanner{buf: []byte("-")}
	_, err := sc.number()
	var syntax *SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestScannerLiterals(t *testing.T) {
	sc := &scanner{buf: []byte("true")}
	b, err := sc.boolean()
	require.NoError(t, err)
	assert.True(t, b)

	sc = &scanner{buf: []byte("false")}
	b, err = sc.boolean()
	require.NoError(t, err)
	assert.False(t, b)

	sc = &scanner{buf: []byte("null")}
	require.NoError(t, sc.null())

	sc = &scanner{buf: []byte("nul")}
	var syntax *SyntaxError
	require.ErrorAs(t, sc.null(), &syntax)
}

func TestScannerSkipNestedValue(t *testing.T) {
	sc := &scanner{buf: []byte(`{"a":[1,{"b":"x"},null],"c":false} `)}
	require.NoError(t, sc.skip())
	require.NoError(t, sc.trailing())
}

func TestScannerObjectKeysAndValues(t *testing.T) {
	sc := &scanner{buf: []byte(`{"a":1,"b":"two"}`)}
	var keys []string
	err := sc.object(func(key string) error {
		keys = append(keys, key)
		return sc.skip()
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestScannerTrailing(t *testing.T) {
	sc := &scanner{buf: []byte(`{} x`)}
	require.NoError(t, sc.skip())
	var syntax *SyntaxError
	require.ErrorAs(t, sc.trailing(), &syntax)
}

package bo4e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/bo"
	"github.com/voltmesh/bo4e-go/com"
)

// The accelerated path must agree with the canonical one for the same
// logical content, including inputs whose escape sequences force the
// in-place rewrite.
func TestInPlaceMatchesCanonical(t *testing.T) {
	docs := []string{
		`{}`,
		`{"_typ":"Zaehler","zaehlernummer":"1APZ0001","sparte":"STROM"}`,
		`{"zaehlernummer":"Zähler \"A\"","hersteller":"Müller & Söhne"}`,
		`{"hersteller":"Straße\n\tZeile","zaehlernummer":"😀"}`,
		`{"hersteller":"\ud83d\ude00 Werke","zaehlernummer":"\u00dfZ1"}`,
		`{"zaehlwerke":[{"obisKennzahl":"1-0:1.8.0","einheit":"KWH"},{"registerId":"2"}]}`,
		`{"standort":{"strasse":"Musterstrasse","ort":"Augsburg"},"herstellungsjahr":1998}`,
		`{"unbekannt":{"x":[1,2.5,true,null,"A"]},"meterNumber":"M"}`,
	}

	for _, doc := range docs {
		var canonical, inPlace bo.Meter
		require.NoError(t, bo4e.Unmarshal([]byte(doc), &canonical), doc)
		require.NoError(t, bo4e.UnmarshalString(doc, &inPlace), doc)
		assert.Equal(t, canonical, inPlace, doc)
	}
}

func TestUnmarshalOwned(t *testing.T) {
	buf := []byte(`{"zaehlernummer":"Straße 1"}`)
	var m bo.Meter
	require.NoError(t, bo4e.UnmarshalOwned(buf, &m))
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "Straße 1", *m.MeterNumber)
}

func TestScratchSingleUse(t *testing.T) {
	s := bo4e.ScratchFromString(`{"zaehlernummer":"Z1"}`)

	var m bo.Meter
	require.NoError(t, bo4e.UnmarshalInPlace(s, &m))

	var again bo.Meter
	err := bo4e.UnmarshalInPlace(s, &again)
	var ownership *bo4e.BufferOwnershipError
	require.ErrorAs(t, err, &ownership)
}

func TestScratchNil(t *testing.T) {
	var m bo.Meter
	err := bo4e.UnmarshalInPlace(nil, &m)
	var ownership *bo4e.BufferOwnershipError
	require.ErrorAs(t, err, &ownership)
}

func TestInPlaceSyntaxErrorOffset(t *testing.T) {
	var m bo.Meter
	err := bo4e.UnmarshalString(`{"zaehlernummer":tru}`, &m)

	var syntax *bo4e.SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.GreaterOrEqual(t, syntax.Offset, 0)
}

func TestInPlaceTrailingData(t *testing.T) {
	var m bo.Meter
	err := bo4e.UnmarshalString(`{"zaehlernummer":"Z1"} x`, &m)

	var syntax *bo4e.SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestInPlaceShapeAndEnumErrors(t *testing.T) {
	var m bo.Meter
	err := bo4e.UnmarshalString(`{"sparte":"PLASMA"}`, &m)
	var unknown *bo4e.UnknownEnumError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sparte", unknown.Field)

	var p com.TimePeriod
	err = bo4e.UnmarshalString(`{"startdatum":[]}`, &p)
	var shape *bo4e.ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "Zeitraum", shape.Type)
}

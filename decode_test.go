package bo4e_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/bo"
	"github.com/voltmesh/bo4e-go/enums"
)

func TestUnmarshalGerman(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"_typ":"Zaehler","zaehlernummer":"1APZ0001","sparte":"STROM"}`), &m)
	require.NoError(t, err)

	require.NotNil(t, m.Typ)
	assert.Equal(t, "Zaehler", *m.Typ)
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "1APZ0001", *m.MeterNumber)
	require.NotNil(t, m.Division)
	assert.Equal(t, enums.DivisionElectricity, *m.Division)
}

func TestUnmarshalEnglish(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"meterNumber":"1APZ0001","division":"STROM"}`), &m)
	require.NoError(t, err)

	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "1APZ0001", *m.MeterNumber)
	require.NotNil(t, m.Division)
	assert.Equal(t, enums.DivisionElectricity, *m.Division)
}

func TestUnmarshalMixedConventions(t *testing.T) {
	// Both conventions in one document decode to the same fields.
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":"1APZ0001","meterType":"WECHSELSTROMZAEHLER","sparte":"GAS"}`), &m)
	require.NoError(t, err)

	require.NotNil(t, m.MeterNumber)
	require.NotNil(t, m.MeterType)
	assert.Equal(t, enums.MeterTypeSinglePhaseAlternatingMeter, *m.MeterType)
	require.NotNil(t, m.Division)
	assert.Equal(t, enums.DivisionGas, *m.Division)
}

func TestUnmarshalSingleGermanField(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":"1APZ0001"}`), &m)
	require.NoError(t, err)
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "1APZ0001", *m.MeterNumber)
	assert.Nil(t, m.Division)
	assert.Nil(t, m.Typ)
}

func TestUnmarshalUnknownKeysSkipped(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"fremdesFeld":{"a":[1,2,{"b":null}]},"zaehlernummer":"Z1","nochEins":false}`), &m)
	require.NoError(t, err)
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "Z1", *m.MeterNumber)
}

func TestUnmarshalNullIsAbsent(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":null,"zaehlwerke":null}`), &m)
	require.NoError(t, err)
	assert.Nil(t, m.MeterNumber)
	assert.Nil(t, m.Registers)
}

func TestUnmarshalEmptyListIsAbsent(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlwerke":[]}`), &m)
	require.NoError(t, err)
	assert.Nil(t, m.Registers)
}

func TestUnmarshalDuplicateKeyLastWins(t *testing.T) {
	// Last occurrence wins across conventions too.
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":"A","meterNumber":"B"}`), &m)
	require.NoError(t, err)
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "B", *m.MeterNumber)
}

func TestUnmarshalShapeMismatch(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":42}`), &m)

	var shape *bo4e.ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "Zaehler", shape.Type)
	assert.Equal(t, "zaehlernummer", shape.Field)
	assert.Equal(t, bo4e.KindString, shape.Want)
	assert.Equal(t, bo4e.KindNumber, shape.Got)
}

func TestUnmarshalFractionalInteger(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"herstellungsjahr":1999.5}`), &m)

	var shape *bo4e.ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "herstellungsjahr", shape.Field)
	assert.Equal(t, bo4e.KindInteger, shape.Want)
}

func TestUnmarshalUnknownEnumToken(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"sparte":"PLASMA"}`), &m)

	var unknown *bo4e.UnknownEnumError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Division", unknown.Enum)
	assert.Equal(t, "sparte", unknown.Field)
	assert.Equal(t, "PLASMA", unknown.Token)
}

func TestUnmarshalTopLevelNotObject(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`[1,2]`), &m)

	var shape *bo4e.ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, bo4e.KindObject, shape.Want)
	assert.Equal(t, bo4e.KindArray, shape.Got)
}

func TestUnmarshalTrailingData(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{} {}`), &m)

	var syntax *bo4e.SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestUnmarshalMalformed(t *testing.T) {
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":`), &m)

	var syntax *bo4e.SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestUnmarshalMalformedLiteral(t *testing.T) {
	// A truncated literal looks like a bool until it is read; it must
	// surface as a syntax error, not a shape mismatch.
	var m bo.Meter
	err := bo4e.Unmarshal([]byte(`{"zaehlernummer":tru}`), &m)

	var syntax *bo4e.SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestUnmarshalAny(t *testing.T) {
	o, err := bo4e.UnmarshalAny([]byte(`{"_typ":"Zaehler","zaehlernummer":"Z1"}`))
	require.NoError(t, err)

	m, ok := o.(*bo.Meter)
	require.True(t, ok)
	require.NotNil(t, m.MeterNumber)
	assert.Equal(t, "Z1", *m.MeterNumber)
}

func TestUnmarshalAnyEnglishTypeName(t *testing.T) {
	o, err := bo4e.UnmarshalAny([]byte(`{"_typ":"Invoice","invoiceNumber":"R-1"}`))
	require.NoError(t, err)

	inv, ok := o.(*bo.Invoice)
	require.True(t, ok)
	require.NotNil(t, inv.InvoiceNumber)
	assert.Equal(t, "R-1", *inv.InvoiceNumber)
}

func TestUnmarshalAnyMissingType(t *testing.T) {
	_, err := bo4e.UnmarshalAny([]byte(`{"zaehlernummer":"Z1"}`))
	assert.True(t, errors.Is(err, bo4e.ErrMissingType))
}

func TestUnmarshalAnyUnknownType(t *testing.T) {
	_, err := bo4e.UnmarshalAny([]byte(`{"_typ":"Unbekannt"}`))
	assert.True(t, errors.Is(err, bo4e.ErrUnknownType))
}

func TestNewByType(t *testing.T) {
	o, ok := bo4e.NewByType("Marktlokation")
	require.True(t, ok)
	assert.IsType(t, &bo.MarketLocation{}, o)

	o, ok = bo4e.NewByType("MarketLocation")
	require.True(t, ok)
	assert.IsType(t, &bo.MarketLocation{}, o)

	_, ok = bo4e.NewByType("Bilanzkreis")
	assert.False(t, ok)
}

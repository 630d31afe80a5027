package bo4e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/bo"
	"github.com/voltmesh/bo4e-go/com"
)

func TestMetaBuilders(t *testing.T) {
	m := bo4e.NewMeta("Zaehler").
		WithVersion("202401.0.1").
		WithID("sys-1").
		WithAttribute(bo4e.StringAttr("origin", "sap"))

	require.NotNil(t, m.Typ)
	assert.Equal(t, "Zaehler", *m.Typ)
	require.NotNil(t, m.Version)
	assert.Equal(t, "202401.0.1", *m.Version)
	require.NotNil(t, m.ID)
	assert.Equal(t, "sys-1", *m.ID)
	require.Len(t, m.Attributes, 1)
}

func TestMetaGenerateID(t *testing.T) {
	var m bo4e.Meta
	first := m.GenerateID()
	assert.NotEmpty(t, first)

	// A set id is kept.
	assert.Equal(t, first, m.GenerateID())
}

func TestMetaEnvelopeAccessor(t *testing.T) {
	m := &bo.Meter{Meta: bo4e.NewMeta("Zaehler")}

	// The accessor promoted from the embedded envelope is reachable
	// through the interface and aliases the embedded value.
	var o bo4e.Object = m
	env := o.Envelope()
	require.NotNil(t, env.Typ)
	assert.Equal(t, "Zaehler", *env.Typ)

	env.GenerateID()
	require.NotNil(t, m.ID)
}

func TestMetaEnvelopeFlattened(t *testing.T) {
	a := &com.Address{
		Meta: bo4e.NewMeta("Adresse").WithVersion("202401.0.1"),
		City: ptr("Augsburg"),
	}
	data, err := bo4e.Marshal(a)
	require.NoError(t, err)

	// Envelope keys sit on the object itself, before the type's own
	// fields, and keep their underscore names in both conventions.
	assert.Equal(t, `{"_typ":"Adresse","_version":"202401.0.1","ort":"Augsburg"}`, string(data))

	english, err := bo4e.MarshalEnglish(a)
	require.NoError(t, err)
	assert.Equal(t, `{"_typ":"Adresse","_version":"202401.0.1","city":"Augsburg"}`, string(english))
}

func TestMetaAttributesRoundTrip(t *testing.T) {
	m := &bo.Meter{
		Meta: bo4e.NewMeta("Zaehler").
			WithAttribute(bo4e.StringAttr("origin", "sap")).
			WithAttribute(bo4e.NumberAttr("prio", 2)).
			WithAttribute(bo4e.BoolAttr("migrated", true)),
		MeterNumber: ptr("Z1"),
	}

	data, err := bo4e.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"zusatzAttribute":[{"name":"origin","value":"sap"},{"name":"prio","value":2},{"name":"migrated","value":true}]`)

	var decoded bo.Meter
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, m, &decoded)
}

func TestMetaAttributesStructuredValue(t *testing.T) {
	doc := `{"zusatzAttribute":[{"name":"quelle","value":{"system":"sap","ids":[1,2]}}]}`

	var m bo.Meter
	require.NoError(t, bo4e.Unmarshal([]byte(doc), &m))
	require.Len(t, m.Attributes, 1)
	assert.Equal(t, "quelle", m.Attributes[0].Name)
	assert.Equal(t, map[string]any{"system": "sap", "ids": []any{1.0, 2.0}}, m.Attributes[0].Value)

	// Map keys are re-emitted sorted, so the document reproduces.
	data, err := bo4e.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, `{"zusatzAttribute":[{"name":"quelle","value":{"ids":[1,2],"system":"sap"}}]}`, string(data))
}

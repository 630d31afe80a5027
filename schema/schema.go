// Package schema derives a structural description of the catalog from
// the types themselves. The descriptions are produced by running each
// type's field table against a recording encoder, so they can never
// drift from what the engine actually reads and writes.
package schema

import (
	bo4e "github.com/voltmesh/bo4e-go"
)

// Field describes one wire field of a catalog type under both naming
// conventions.
type Field struct {
	German   string `json:"german"`
	English  string `json:"english"`
	Type     string `json:"type"`
	Object   string `json:"object,omitempty"`
	Repeated bool   `json:"repeated,omitempty"`
}

// Type describes one catalog type: its name pair and its fields in
// declaration order, the envelope first.
type Type struct {
	German  string  `json:"german"`
	English string  `json:"english"`
	Fields  []Field `json:"fields"`
}

// Envelope fields common to every type. zusatzAttribute is listed as a
// repeated object without a type reference since attribute values are
// free-form.
var envelopeFields = []Field{
	{German: "_typ", English: "_typ", Type: "string"},
	{German: "_version", English: "_version", Type: "string"},
	{German: "_id", English: "_id", Type: "string"},
	{German: "zusatzAttribute", English: "zusatzAttribute", Type: "object", Repeated: true},
}

// For returns the description of a single catalog type.
func For(o bo4e.Object) Type {
	name := o.TypeName()
	t := Type{
		German:  name.German,
		English: name.English,
		Fields:  append([]Field(nil), envelopeFields...),
	}
	for _, f := range bo4e.DescribeFields(o) {
		field := Field{
			German:   f.Name.German,
			English:  f.Name.English,
			Type:     f.Type,
			Repeated: f.Repeated,
		}
		if f.Type == "object" {
			field.Object = f.Object.English
		}
		t.Fields = append(t.Fields, field)
	}
	return t
}

// All returns the descriptions of every registered catalog type,
// sorted by German type name. The caller must have imported the
// catalog packages for their registrations to have run.
func All() []Type {
	objects := bo4e.RegisteredTypes()
	out := make([]Type, 0, len(objects))
	for _, o := range objects {
		out = append(out, For(o))
	}
	return out
}

// ByName returns the description of the registered type with the given
// name, in either convention.
func ByName(name string) (Type, bool) {
	o, ok := bo4e.NewByType(name)
	if !ok {
		return Type{}, false
	}
	return For(o), true
}

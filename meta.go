package bo4e

import "github.com/rs/xid"

// Envelope wire keys. The underscore-prefixed keys and "zusatzAttribute"
// are fixed by the BO4E standard and identical under both conventions.
var (
	metaTyp     = Name{German: "_typ", English: "_typ"}
	metaVersion = Name{German: "_version", English: "_version"}
	metaID      = Name{German: "_id", English: "_id"}
	metaAttrs   = Name{German: "zusatzAttribute", English: "zusatzAttribute"}
)

// Meta is the envelope shared by every business object and component:
// the type discriminator, the BO4E schema version, an external system
// id, and free-form additional attributes. On the wire its fields are
// flattened into the owner's object; in memory it stays a distinct
// value, embedded in each catalog type.
//
// An all-absent envelope is valid and encodes to nothing at all.
type Meta struct {
	// Typ is the type discriminator ("_typ"), e.g. "Zaehler".
	Typ *string

	// Version is the BO4E schema version ("_version").
	Version *string

	// ID is an external system identifier ("_id").
	ID *string

	// Attributes carries additional attributes for interoperability
	// with external systems ("zusatzAttribute").
	Attributes []AdditionalAttribute
}

// Envelope implements Object's envelope accessor for every type that
// embeds Meta. The method cannot be called Meta: the embedded field of
// that name would shadow it and the promoted method would never reach
// the embedding type's method set.
func (m *Meta) Envelope() *Meta { return m }

// NewMeta returns an envelope carrying the given type discriminator.
func NewMeta(typ string) Meta {
	return Meta{Typ: &typ}
}

// WithVersion sets the schema version.
func (m Meta) WithVersion(version string) Meta {
	m.Version = &version
	return m
}

// WithID sets the external system id.
func (m Meta) WithID(id string) Meta {
	m.ID = &id
	return m
}

// GenerateID assigns a fresh globally unique external id if none is set
// and returns it.
func (m *Meta) GenerateID() string {
	if m.ID == nil {
		id := xid.New().String()
		m.ID = &id
	}
	return *m.ID
}

// WithAttribute appends an additional attribute.
func (m Meta) WithAttribute(attr AdditionalAttribute) Meta {
	m.Attributes = append(m.Attributes, attr)
	return m
}

// encode flattens the envelope's present fields into the wire object
// currently being written.
func (m *Meta) encode(e *Encoder) {
	e.Str(metaTyp, m.Typ)
	e.Str(metaVersion, m.Version)
	e.Str(metaID, m.ID)
	m.encodeAttributes(e)
}

func (m *Meta) encodeAttributes(e *Encoder) {
	if e.rec != nil {
		return
	}
	if len(m.Attributes) == 0 {
		return
	}
	e.key(metaAttrs)
	e.stream.WriteArrayStart()
	for i := range m.Attributes {
		if i > 0 {
			e.stream.WriteMore()
		}
		m.Attributes[i].encode(e)
	}
	e.stream.WriteArrayEnd()
}

// decodeField consumes envelope keys. It reports whether the key
// belonged to the envelope.
func (m *Meta) decodeField(d *Decoder, key string) (bool, error) {
	switch key {
	case metaTyp.German:
		return true, d.Str(&m.Typ)
	case metaVersion.German:
		return true, d.Str(&m.Version)
	case metaID.German:
		return true, d.Str(&m.ID)
	case metaAttrs.German:
		return true, d.readAttributes(&m.Attributes)
	}
	return false, nil
}

// AdditionalAttribute attaches a named free-form value to an envelope.
// Value holds the generic JSON mapping of the wire value: string,
// float64, bool, nil, []any or map[string]any.
type AdditionalAttribute struct {
	Name  string
	Value any
}

// StringAttr builds a string-valued attribute.
func StringAttr(name, value string) AdditionalAttribute {
	return AdditionalAttribute{Name: name, Value: value}
}

// NumberAttr builds a numeric attribute.
func NumberAttr(name string, value float64) AdditionalAttribute {
	return AdditionalAttribute{Name: name, Value: value}
}

// BoolAttr builds a boolean attribute.
func BoolAttr(name string, value bool) AdditionalAttribute {
	return AdditionalAttribute{Name: name, Value: value}
}

func (a *AdditionalAttribute) encode(e *Encoder) {
	e.stream.WriteObjectStart()
	e.stream.WriteObjectField("name")
	e.stream.WriteString(a.Name)
	if a.Value != nil {
		e.stream.WriteMore()
		e.stream.WriteObjectField("value")
		e.writeValue(a.Value)
	}
	e.stream.WriteObjectEnd()
}

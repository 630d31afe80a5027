// Package bo4e implements the serialization engine for BO4E (Business
// Objects for Energy), the data exchange standard of the German energy
// industry.
//
// Every business object and component is representable as JSON under two
// field-naming conventions: the domain-native German names used by the
// BO4E standard ("zaehlernummer", "marktlokationsId") and the English
// names ("meterNumber", "marketLocationId"). The convention is a
// write-time concern only; decoding accepts either convention and both
// mixed in one document.
//
// The catalog of concrete types lives in the bo, com and enums
// subpackages. The engine is generic over the catalog: a type takes part
// in serialization by implementing Object.
//
// Decoding comes in two flavors. Unmarshal is the canonical path and
// never touches its input. UnmarshalInPlace is the accelerated path: it
// rewrites escape sequences directly into the caller's buffer while
// scanning, so the buffer must be handed over exclusively via a Scratch.
// Both paths produce identical results for the same logical content.
package bo4e

// Name is the wire-name pair for a single field or type: the
// domain-native German name and the English name. For a handful of
// fields the two columns are identical (for example "name1" or the
// underscore-prefixed envelope keys), which is expressed by storing the
// same string in both.
type Name struct {
	German  string
	English string
}

// pick returns the wire name for the given convention.
func (n Name) pick(c Convention) string {
	if c == English {
		return n.English
	}
	return n.German
}

// Object is implemented by every business object and component in the
// catalog. EncodeFields and DecodeField carry the per-type naming
// tables: EncodeFields emits fields in declaration order through the
// Encoder, DecodeField routes a wire key (in either convention) to the
// matching field and reports ErrUnknownField for keys it does not know.
type Object interface {
	// TypeName returns the type's name pair, e.g. {Zaehler, Meter}.
	TypeName() Name

	// Envelope returns the object's envelope. Usually provided by
	// embedding Meta.
	Envelope() *Meta

	// EncodeFields writes the object's own fields (not the envelope)
	// to the encoder in declaration order.
	EncodeFields(e *Encoder)

	// DecodeField decodes the value for the given wire key into the
	// object, or returns ErrUnknownField.
	DecodeField(d *Decoder, key string) error
}

// objectPtr constrains a pointer-to-catalog-type so that generic
// helpers can allocate elements and still get a nil-comparable pointer.
type objectPtr[T any] interface {
	*T
	Object
}

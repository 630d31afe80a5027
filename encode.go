package bo4e

import (
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Frozen jsoniter configs for the two whitespace modes. Field order and
// escaping are fully controlled here, so encoding is byte-for-byte
// reproducible for a given object, convention and pretty flag.
var (
	compactCfg = jsoniter.Config{EscapeHTML: false}.Froze()
	prettyCfg  = jsoniter.Config{EscapeHTML: false, IndentionStep: 2}.Froze()
)

// Marshal encodes an object to compact JSON with German field names,
// the BO4E standard form.
func Marshal(o Object) ([]byte, error) {
	return MarshalWith(o, Options{})
}

// MarshalEnglish encodes an object to compact JSON with English field
// names.
func MarshalEnglish(o Object) ([]byte, error) {
	return MarshalWith(o, Options{Convention: English})
}

// MarshalWith encodes an object under the given options. Absent fields
// are omitted entirely (never emitted as null), empty collections are
// omitted like absent ones, and fields appear in declaration order with
// the envelope first.
func MarshalWith(o Object, opts Options) ([]byte, error) {
	cfg := compactCfg
	if opts.Pretty {
		cfg = prettyCfg
	}
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	e := &Encoder{stream: stream, opts: opts}
	e.writeObject(o)
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// Encoder writes one wire object field by field. Catalog types receive
// it in EncodeFields and call the typed field writers below; a writer
// with a nil value writes nothing, which is how the omission policy is
// enforced in exactly one place.
type Encoder struct {
	stream *jsoniter.Stream
	opts   Options
	// more tracks, per object nesting level, whether a field has been
	// written and a comma is due.
	more []bool
	// rec, when set, captures field descriptions instead of writing
	// JSON. Used by DescribeFields.
	rec *[]FieldDesc
}

func (e *Encoder) writeObject(o Object) {
	e.stream.WriteObjectStart()
	e.more = append(e.more, false)
	o.Envelope().encode(e)
	o.EncodeFields(e)
	e.more = e.more[:len(e.more)-1]
	e.stream.WriteObjectEnd()
}

// key writes the separator and the field name for the active
// convention.
func (e *Encoder) key(n Name) {
	if e.more[len(e.more)-1] {
		e.stream.WriteMore()
	} else {
		e.more[len(e.more)-1] = true
	}
	e.stream.WriteObjectField(n.pick(e.opts.Convention))
}

// Str writes an optional string field.
func (e *Encoder) Str(n Name, v *string) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "string"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteString(*v)
}

// Int writes an optional integer field.
func (e *Encoder) Int(n Name, v *int) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "integer"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteInt(*v)
}

// F64 writes an optional floating-point field.
func (e *Encoder) F64(n Name, v *float64) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "number"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteFloat64(*v)
}

// Bool writes an optional boolean field.
func (e *Encoder) Bool(n Name, v *bool) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "boolean"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteBool(*v)
}

// Dec writes an optional decimal field as a plain JSON number.
func (e *Encoder) Dec(n Name, v *decimal.Decimal) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "decimal"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteRaw(v.String())
}

// Time writes an optional timestamp field in RFC 3339 form.
func (e *Encoder) Time(n Name, v *time.Time) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "datetime"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteString(v.Format(time.RFC3339Nano))
}

// Date writes an optional calendar-date field ("2006-01-02").
func (e *Encoder) Date(n Name, v *time.Time) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "date"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteString(v.Format(dateLayout))
}

const dateLayout = "2006-01-02"

// StrList writes a list of strings. Empty and nil lists are omitted;
// absent and empty collections are wire-indistinguishable.
func (e *Encoder) StrList(n Name, v []string) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "string", Repeated: true})
		return
	}
	if len(v) == 0 {
		return
	}
	e.key(n)
	e.stream.WriteArrayStart()
	for i, s := range v {
		if i > 0 {
			e.stream.WriteMore()
		}
		e.stream.WriteString(s)
	}
	e.stream.WriteArrayEnd()
}

// EncodeEnum writes an optional enum field as its fixed wire token.
// Enum tokens are never translated between naming conventions.
func EncodeEnum[E ~string](e *Encoder, n Name, v *E) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "enum"})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.stream.WriteString(string(*v))
}

// EncodeEnumList writes a list of enum tokens, omitting empty lists.
func EncodeEnumList[E ~string](e *Encoder, n Name, v []E) {
	if e.rec != nil {
		e.record(FieldDesc{Name: n, Type: "enum", Repeated: true})
		return
	}
	if len(v) == 0 {
		return
	}
	e.key(n)
	e.stream.WriteArrayStart()
	for i, t := range v {
		if i > 0 {
			e.stream.WriteMore()
		}
		e.stream.WriteString(string(t))
	}
	e.stream.WriteArrayEnd()
}

// EncodeStruct writes an optional nested component or business object.
func EncodeStruct[T any, P objectPtr[T]](e *Encoder, n Name, v P) {
	if e.rec != nil {
		var t T
		e.record(FieldDesc{Name: n, Type: "object", Object: P(&t).TypeName()})
		return
	}
	if v == nil {
		return
	}
	e.key(n)
	e.writeObject(v)
}

// EncodeStructList writes a list of nested components, omitting empty
// lists.
func EncodeStructList[T any, P objectPtr[T]](e *Encoder, n Name, v []T) {
	if e.rec != nil {
		var t T
		e.record(FieldDesc{Name: n, Type: "object", Object: P(&t).TypeName(), Repeated: true})
		return
	}
	if len(v) == 0 {
		return
	}
	e.key(n)
	e.stream.WriteArrayStart()
	for i := range v {
		if i > 0 {
			e.stream.WriteMore()
		}
		e.writeObject(P(&v[i]))
	}
	e.stream.WriteArrayEnd()
}

// writeValue writes a generic JSON value (additional attributes). Map
// keys are emitted sorted so output stays reproducible.
func (e *Encoder) writeValue(v any) {
	switch t := v.(type) {
	case nil:
		e.stream.WriteNil()
	case string:
		e.stream.WriteString(t)
	case bool:
		e.stream.WriteBool(t)
	case float64:
		e.stream.WriteFloat64(t)
	case int:
		e.stream.WriteInt(t)
	case int64:
		e.stream.WriteInt64(t)
	case []any:
		e.stream.WriteArrayStart()
		for i, el := range t {
			if i > 0 {
				e.stream.WriteMore()
			}
			e.writeValue(el)
		}
		e.stream.WriteArrayEnd()
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.stream.WriteObjectStart()
		for i, k := range keys {
			if i > 0 {
				e.stream.WriteMore()
			}
			e.stream.WriteObjectField(k)
			e.writeValue(t[k])
		}
		e.stream.WriteObjectEnd()
	default:
		e.stream.Error = &SyntaxError{Offset: -1, Msg: "unsupported attribute value type"}
	}
}

// FieldDesc is the structural description of one field, produced by
// DescribeFields for the schema dump.
type FieldDesc struct {
	Name     Name
	Type     string // string, integer, number, decimal, boolean, datetime, date, enum, object
	Object   Name   // type name pair for Type == "object"
	Repeated bool
}

// DescribeFields runs an object's EncodeFields against a recording
// encoder and returns the declaration-ordered field descriptions,
// including fields that are absent on the given instance. The envelope
// is common to all types and not part of the result.
func DescribeFields(o Object) []FieldDesc {
	var fields []FieldDesc
	e := &Encoder{rec: &fields}
	o.EncodeFields(e)
	return fields
}

func (e *Encoder) record(d FieldDesc) {
	*e.rec = append(*e.rec, d)
}

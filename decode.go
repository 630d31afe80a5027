package bo4e

import (
	"errors"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Unmarshal decodes wire bytes into o. This is the canonical decode
// path: the input is never modified, field names are accepted in either
// naming convention, unknown keys are skipped, JSON null and a missing
// key both leave the field absent, and a key occurring twice (in any
// convention mix) follows last-key-wins.
func Unmarshal(data []byte, o Object) error {
	iter := compactCfg.BorrowIterator(data)
	defer compactCfg.ReturnIterator(iter)

	r := &iterReader{iter: iter}
	d := &Decoder{r: r}
	if err := d.decodeObject(o); err != nil {
		return err
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return &SyntaxError{Offset: -1, Msg: "trailing data after top-level value"}
	}
	return nil
}

// Decoder reads one wire value at a time. Catalog types receive it in
// DecodeField and call the typed field readers below; the current type
// and key are tracked for error context.
type Decoder struct {
	r   reader
	typ Name   // owner type of the field being decoded
	key string // wire key being decoded, as it appeared in the input
}

func (d *Decoder) shapeErr(want, got Kind) error {
	return &ShapeError{Type: d.typ.German, Field: d.key, Want: want, Got: got}
}

// mismatch reports a shape error for a wrong-kinded value, but only
// after consuming it: peek classifies by first byte, so a malformed
// literal like "tru" looks like a bool until it is actually read. The
// consume surfaces such inputs as syntax errors instead.
func (d *Decoder) mismatch(want, got Kind) error {
	if err := d.r.skip(); err != nil {
		return err
	}
	return d.shapeErr(want, got)
}

// decodeObject decodes one wire object into o: envelope keys first
// refused to the envelope, everything else to o.DecodeField, unknown
// keys skipped.
func (d *Decoder) decodeObject(o Object) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k != KindObject {
		if err := d.r.skip(); err != nil {
			return err
		}
		return &ShapeError{Type: o.TypeName().German, Field: d.key, Want: KindObject, Got: k}
	}

	prevTyp, prevKey := d.typ, d.key
	d.typ = o.TypeName()
	err = d.r.object(func(key string) error {
		d.key = key
		if handled, err := o.Envelope().decodeField(d, key); handled {
			return err
		}
		if err := o.DecodeField(d, key); err != nil {
			if errors.Is(err, ErrUnknownField) {
				return d.r.skip()
			}
			return err
		}
		return nil
	})
	d.typ, d.key = prevTyp, prevKey
	return err
}

// Str reads an optional string field. Null decodes to absent.
func (d *Decoder) Str(dst **string) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindString {
		return d.mismatch(KindString, k)
	}
	s, err := d.r.str()
	if err != nil {
		return err
	}
	*dst = &s
	return nil
}

// Int reads an optional integer field. A fractional number is a shape
// mismatch, not a truncation.
func (d *Decoder) Int(dst **int) error {
	lit, ok, err := d.numberLit()
	if err != nil || !ok {
		*dst = nil
		return err
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return &SyntaxError{Offset: -1, Msg: "invalid number literal " + strconv.Quote(lit)}
	}
	i := int(f)
	if float64(i) != f {
		return d.shapeErr(KindInteger, KindNumber)
	}
	*dst = &i
	return nil
}

// F64 reads an optional floating-point field.
func (d *Decoder) F64(dst **float64) error {
	lit, ok, err := d.numberLit()
	if err != nil || !ok {
		*dst = nil
		return err
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return &SyntaxError{Offset: -1, Msg: "invalid number literal " + strconv.Quote(lit)}
	}
	*dst = &f
	return nil
}

// Dec reads an optional decimal field from the raw number literal, so
// values like 19.99 survive without binary-float rounding.
func (d *Decoder) Dec(dst **decimal.Decimal) error {
	lit, ok, err := d.numberLit()
	if err != nil || !ok {
		*dst = nil
		return err
	}
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return &SyntaxError{Offset: -1, Msg: "invalid number literal " + strconv.Quote(lit)}
	}
	*dst = &v
	return nil
}

// numberLit consumes the next value if it is a number and returns its
// literal. ok is false when the value was null (consumed).
func (d *Decoder) numberLit() (lit string, ok bool, err error) {
	k, err := d.r.peek()
	if err != nil {
		return "", false, err
	}
	if k == KindNull {
		return "", false, d.r.null()
	}
	if k != KindNumber {
		return "", false, d.mismatch(KindNumber, k)
	}
	lit, err = d.r.number()
	return lit, err == nil, err
}

// Bool reads an optional boolean field.
func (d *Decoder) Bool(dst **bool) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindBool {
		return d.mismatch(KindBool, k)
	}
	b, err := d.r.boolean()
	if err != nil {
		return err
	}
	*dst = &b
	return nil
}

// Time reads an optional RFC 3339 timestamp field.
func (d *Decoder) Time(dst **time.Time) error {
	var s *string
	if err := d.Str(&s); err != nil {
		return err
	}
	if s == nil {
		*dst = nil
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return &SyntaxError{Offset: -1, Msg: "invalid timestamp " + strconv.Quote(*s)}
	}
	*dst = &t
	return nil
}

// Date reads an optional calendar-date field ("2006-01-02").
func (d *Decoder) Date(dst **time.Time) error {
	var s *string
	if err := d.Str(&s); err != nil {
		return err
	}
	if s == nil {
		*dst = nil
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return &SyntaxError{Offset: -1, Msg: "invalid date " + strconv.Quote(*s)}
	}
	*dst = &t
	return nil
}

// StrList reads a list of strings. Both null and [] decode to nil: an
// empty collection and an absent one are wire-indistinguishable.
func (d *Decoder) StrList(dst *[]string) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindArray {
		return d.mismatch(KindArray, k)
	}
	var out []string
	err = d.r.array(func() error {
		ek, err := d.r.peek()
		if err != nil {
			return err
		}
		if ek != KindString {
			return d.mismatch(KindString, ek)
		}
		s, err := d.r.str()
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// ReadEnum reads an optional enum field, validating the wire token
// against the enum's fixed set via parse. An unknown token fails the
// decode with an UnknownEnumError carrying the field context.
func ReadEnum[E ~string](d *Decoder, parse func(string) (E, error), dst **E) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindString {
		return d.mismatch(KindString, k)
	}
	s, err := d.r.str()
	if err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		var ue *UnknownEnumError
		if errors.As(err, &ue) {
			ue.Field = d.key
		}
		return err
	}
	*dst = &v
	return nil
}

// ReadEnumList reads a list of enum tokens with the same validation as
// ReadEnum. Null and [] decode to nil.
func ReadEnumList[E ~string](d *Decoder, parse func(string) (E, error), dst *[]E) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindArray {
		return d.mismatch(KindArray, k)
	}
	var out []E
	err = d.r.array(func() error {
		var v *E
		if err := ReadEnum(d, parse, &v); err != nil {
			return err
		}
		if v != nil {
			out = append(out, *v)
		}
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// ReadStruct reads an optional nested component or business object into
// a freshly allocated value.
func ReadStruct[T any, P objectPtr[T]](d *Decoder, dst *P) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	v := new(T)
	if err := d.decodeObject(P(v)); err != nil {
		return err
	}
	*dst = v
	return nil
}

// ReadStructList reads a list of nested components. Null and [] decode
// to nil.
func ReadStructList[T any, P objectPtr[T]](d *Decoder, dst *[]T) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindArray {
		return d.mismatch(KindArray, k)
	}
	var out []T
	err = d.r.array(func() error {
		var t T
		if err := d.decodeObject(P(&t)); err != nil {
			return err
		}
		out = append(out, t)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// readAttributes decodes the zusatzAttribute array.
func (d *Decoder) readAttributes(dst *[]AdditionalAttribute) error {
	k, err := d.r.peek()
	if err != nil {
		return err
	}
	if k == KindNull {
		*dst = nil
		return d.r.null()
	}
	if k != KindArray {
		return d.mismatch(KindArray, k)
	}
	var out []AdditionalAttribute
	err = d.r.array(func() error {
		var attr AdditionalAttribute
		ak, err := d.r.peek()
		if err != nil {
			return err
		}
		if ak != KindObject {
			return d.mismatch(KindObject, ak)
		}
		err = d.r.object(func(key string) error {
			switch key {
			case "name":
				nk, err := d.r.peek()
				if err != nil {
					return err
				}
				if nk != KindString {
					return d.mismatch(KindString, nk)
				}
				attr.Name, err = d.r.str()
				return err
			case "value":
				v, err := d.readValue()
				if err != nil {
					return err
				}
				attr.Value = v
				return nil
			}
			return d.r.skip()
		})
		if err != nil {
			return err
		}
		out = append(out, attr)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// readValue decodes a generic JSON value into the attribute value
// mapping (string, float64, bool, nil, []any, map[string]any).
func (d *Decoder) readValue() (any, error) {
	k, err := d.r.peek()
	if err != nil {
		return nil, err
	}
	switch k {
	case KindNull:
		return nil, d.r.null()
	case KindString:
		return d.r.str()
	case KindBool:
		return d.r.boolean()
	case KindNumber:
		lit, err := d.r.number()
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: -1, Msg: "invalid number literal " + strconv.Quote(lit)}
		}
		return f, nil
	case KindArray:
		out := []any{}
		err := d.r.array(func() error {
			v, err := d.readValue()
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
		return out, err
	case KindObject:
		out := map[string]any{}
		err := d.r.object(func(key string) error {
			v, err := d.readValue()
			if err != nil {
				return err
			}
			out[key] = v
			return nil
		})
		return out, err
	}
	return nil, &SyntaxError{Offset: -1, Msg: "unexpected value"}
}

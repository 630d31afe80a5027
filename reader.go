package bo4e

import (
	jsoniter "github.com/json-iterator/go"
)

// Kind identifies a JSON value kind, used in shape errors and when
// dispatching on the next value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	// KindInteger only ever appears as the wanted kind in a
	// ShapeError, for integral fields fed a fractional number.
	KindInteger
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// reader is the token source behind a Decoder. Two implementations
// exist: iterReader on a jsoniter.Iterator (canonical path, input left
// untouched) and scanner (accelerated path, unescapes in place). Field
// decode hooks are written once against Decoder and work with either.
type reader interface {
	// peek reports the kind of the next value without consuming it.
	peek() (Kind, error)
	// str consumes a string value.
	str() (string, error)
	// number consumes a number value and returns its literal text.
	number() (string, error)
	// boolean consumes a true/false value.
	boolean() (bool, error)
	// null consumes a null value.
	null() error
	// object consumes an object, calling fn for each key; fn must
	// consume the corresponding value.
	object(fn func(key string) error) error
	// array consumes an array, calling fn before each element; fn must
	// consume the element.
	array(fn func() error) error
	// skip consumes and discards the next value.
	skip() error
}

// iterReader adapts a jsoniter.Iterator to the reader interface.
type iterReader struct {
	iter *jsoniter.Iterator
	// cb holds an error raised inside an object/array callback so it
	// is not misreported as a syntax error.
	cb error
}

func (r *iterReader) err() error {
	if r.cb != nil {
		return r.cb
	}
	if r.iter.Error != nil {
		return &SyntaxError{Offset: -1, Msg: r.iter.Error.Error()}
	}
	return nil
}

func (r *iterReader) peek() (Kind, error) {
	switch r.iter.WhatIsNext() {
	case jsoniter.NilValue:
		return KindNull, nil
	case jsoniter.BoolValue:
		return KindBool, nil
	case jsoniter.NumberValue:
		return KindNumber, nil
	case jsoniter.StringValue:
		return KindString, nil
	case jsoniter.ArrayValue:
		return KindArray, nil
	case jsoniter.ObjectValue:
		return KindObject, nil
	}
	if err := r.err(); err != nil {
		return KindInvalid, err
	}
	return KindInvalid, &SyntaxError{Offset: -1, Msg: "unexpected end of input"}
}

func (r *iterReader) str() (string, error) {
	s := r.iter.ReadString()
	return s, r.err()
}

func (r *iterReader) number() (string, error) {
	n := r.iter.ReadNumber()
	return string(n), r.err()
}

func (r *iterReader) boolean() (bool, error) {
	b := r.iter.ReadBool()
	return b, r.err()
}

func (r *iterReader) null() error {
	r.iter.ReadNil()
	return r.err()
}

func (r *iterReader) object(fn func(key string) error) error {
	r.iter.ReadObjectCB(func(_ *jsoniter.Iterator, key string) bool {
		if err := fn(key); err != nil {
			r.cb = err
			return false
		}
		return true
	})
	return r.err()
}

func (r *iterReader) array(fn func() error) error {
	r.iter.ReadArrayCB(func(_ *jsoniter.Iterator) bool {
		if err := fn(); err != nil {
			r.cb = err
			return false
		}
		return true
	})
	return r.err()
}

func (r *iterReader) skip() error {
	r.iter.Skip()
	return r.err()
}

package bo4e

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned by Object.DecodeField for wire keys
	// that match neither naming convention. The decoder treats it as
	// "skip this value"; it never escapes to callers of Unmarshal.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingType is returned by UnmarshalAny when the document has
	// no "_typ" discriminator.
	ErrMissingType = errors.New("missing _typ discriminator")

	// ErrUnknownType is returned by UnmarshalAny when the "_typ" value
	// names no registered type.
	ErrUnknownType = errors.New("unknown _typ")
)

// SyntaxError reports malformed JSON input. Offset is the byte position
// where the error was detected, or -1 when the underlying parser does
// not track positions.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("bo4e: syntax error: %s", e.Msg)
	}
	return fmt.Sprintf("bo4e: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// ShapeError reports a JSON value of the wrong kind for the field being
// decoded, e.g. an array where an object was expected.
type ShapeError struct {
	Type  string // German type name of the owning object
	Field string // wire key as it appeared in the input, "" at top level
	Want  Kind
	Got   Kind
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bo4e: %s: expected %s, got %s", e.Type, e.Want, e.Got)
	}
	return fmt.Sprintf("bo4e: %s.%s: expected %s, got %s", e.Type, e.Field, e.Want, e.Got)
}

// UnknownEnumError reports a wire token outside an enum's fixed token
// set. Unknown enum tokens fail the decode; they are never silently
// replaced by a default variant.
type UnknownEnumError struct {
	Enum  string // enum type name, e.g. "MeterType"
	Field string // wire key as it appeared in the input
	Token string
}

func (e *UnknownEnumError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bo4e: unknown token %q for enum %s", e.Token, e.Enum)
	}
	return fmt.Sprintf("bo4e: unknown token %q for enum %s (field %q)", e.Token, e.Enum, e.Field)
}

// BufferOwnershipError reports a violation of the Scratch single-use
// contract: the in-place decoder was asked to run over a buffer it was
// not granted exclusively.
type BufferOwnershipError struct {
	Reason string
}

func (e *BufferOwnershipError) Error() string {
	return "bo4e: buffer ownership violation: " + e.Reason
}

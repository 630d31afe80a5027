package bo4e

import "sync/atomic"

// Scratch grants the in-place decoder exclusive ownership of a byte
// buffer. Construct one with NewScratch (taking ownership of an
// already-owned buffer, no copy) or ScratchFromString (copying
// read-only text into a fresh buffer).
//
// A Scratch is consumable exactly once: the decode rewrites the buffer
// while scanning, so afterwards its contents are unspecified and it
// must not be reused as the original text. A second decode attempt, or
// two concurrent attempts over the same Scratch, fail with a
// BufferOwnershipError instead of corrupting the parse.
type Scratch struct {
	buf  []byte
	used atomic.Bool
}

// NewScratch wraps an owned buffer without copying. The caller must not
// read or write buf, or alias it from another goroutine, until the
// decode call using the Scratch has returned.
func NewScratch(buf []byte) *Scratch {
	return &Scratch{buf: buf}
}

// ScratchFromString copies text into a fresh mutable buffer.
func ScratchFromString(text string) *Scratch {
	return &Scratch{buf: []byte(text)}
}

// UnmarshalInPlace decodes wire bytes into o using the accelerated
// path: escape sequences are rewritten directly into the Scratch's
// buffer while scanning, avoiding the canonical path's intermediate
// copies. Results are identical to Unmarshal for the same logical
// content.
func UnmarshalInPlace(s *Scratch, o Object) error {
	if s == nil {
		return &BufferOwnershipError{Reason: "nil scratch"}
	}
	if !s.used.CompareAndSwap(false, true) {
		return &BufferOwnershipError{Reason: "scratch already consumed by an earlier decode"}
	}
	sc := &scanner{buf: s.buf}
	d := &Decoder{r: sc}
	if err := d.decodeObject(o); err != nil {
		return err
	}
	return sc.trailing()
}

// UnmarshalString decodes read-only text via the accelerated path,
// copying it into a fresh buffer first.
func UnmarshalString(text string, o Object) error {
	return UnmarshalInPlace(ScratchFromString(text), o)
}

// UnmarshalOwned decodes an owned byte buffer via the accelerated path
// without copying. The buffer's contents are unspecified afterwards.
func UnmarshalOwned(buf []byte, o Object) error {
	return UnmarshalInPlace(NewScratch(buf), o)
}

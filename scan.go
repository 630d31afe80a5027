package bo4e

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
)

// scanner is the reader behind the accelerated decode path. It walks
// the buffer once and rewrites escape sequences in place while
// scanning, so string values need no intermediate allocation before
// being copied out. The buffer is unusable as the original text
// afterwards; Scratch enforces that contract.
//
// Semantics mirror the canonical path exactly: same accepted grammar,
// same error kinds. Divergence between the two is a correctness bug.
type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) syntax(msg string) error {
	return &SyntaxError{Offset: s.pos, Msg: msg}
}

func (s *scanner) skipWS() {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) peek() (Kind, error) {
	s.skipWS()
	if s.pos >= len(s.buf) {
		return KindInvalid, s.syntax("unexpected end of input")
	}
	switch c := s.buf[s.pos]; {
	case c == '{':
		return KindObject, nil
	case c == '[':
		return KindArray, nil
	case c == '"':
		return KindString, nil
	case c == 't' || c == 'f':
		return KindBool, nil
	case c == 'n':
		return KindNull, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return KindNumber, nil
	}
	return KindInvalid, s.syntax("unexpected character")
}

// str consumes a string, unescaping into the buffer itself. The
// returned value is a fresh Go string; the scanned region of the buffer
// is left rewritten.
func (s *scanner) str() (string, error) {
	s.skipWS()
	if s.pos >= len(s.buf) || s.buf[s.pos] != '"' {
		return "", s.syntax("expected string")
	}
	s.pos++
	start := s.pos

	// Fast path: no escapes, slice straight out of the buffer.
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if c == '"' {
			out := string(s.buf[start:s.pos])
			s.pos++
			return out, nil
		}
		if c == '\\' {
			break
		}
		if c < 0x20 {
			return "", s.syntax("invalid control character in string")
		}
		s.pos++
	}
	if s.pos >= len(s.buf) {
		return "", s.syntax("unterminated string")
	}

	// Slow path: compact the remainder in place from the first escape.
	w := s.pos
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		switch {
		case c == '"':
			out := string(s.buf[start:w])
			s.pos++
			return out, nil
		case c == '\\':
			s.pos++
			if s.pos >= len(s.buf) {
				return "", s.syntax("unterminated escape sequence")
			}
			switch e := s.buf[s.pos]; e {
			case '"', '\\', '/':
				s.buf[w] = e
				w++
				s.pos++
			case 'b':
				s.buf[w] = '\b'
				w++
				s.pos++
			case 'f':
				s.buf[w] = '\f'
				w++
				s.pos++
			case 'n':
				s.buf[w] = '\n'
				w++
				s.pos++
			case 'r':
				s.buf[w] = '\r'
				w++
				s.pos++
			case 't':
				s.buf[w] = '\t'
				w++
				s.pos++
			case 'u':
				r, err := s.readUnicodeEscape()
				if err != nil {
					return "", err
				}
				w += utf8.EncodeRune(s.buf[w:], r)
			default:
				return "", s.syntax("invalid escape sequence")
			}
		case c < 0x20:
			return "", s.syntax("invalid control character in string")
		default:
			s.buf[w] = c
			w++
			s.pos++
		}
	}
	return "", s.syntax("unterminated string")
}

// readUnicodeEscape consumes the XXXX of a \uXXXX escape (s.pos on the
// 'u'), including a trailing low surrogate where required.
func (s *scanner) readUnicodeEscape() (rune, error) {
	r, err := s.readHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if s.pos+1 >= len(s.buf) || s.buf[s.pos] != '\\' || s.buf[s.pos+1] != 'u' {
		return 0, s.syntax("unpaired utf16 surrogate")
	}
	s.pos++ // the '\'; readHex4 steps over the 'u'
	r2, err := s.readHex4()
	if err != nil {
		return 0, err
	}
	combined := utf16.DecodeRune(r, r2)
	if combined == utf8.RuneError {
		return 0, s.syntax("invalid utf16 surrogate pair")
	}
	return combined, nil
}

func (s *scanner) readHex4() (rune, error) {
	s.pos++ // the 'u'
	if s.pos+4 > len(s.buf) {
		return 0, s.syntax("truncated unicode escape")
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s.buf[s.pos+i]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, s.syntax("invalid unicode escape")
		}
	}
	s.pos += 4
	return r, nil
}

func (s *scanner) number() (string, error) {
	s.skipWS()
	start := s.pos
	if s.pos < len(s.buf) && s.buf[s.pos] == '-' {
		s.pos++
	}
	digits := 0
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			if c >= '0' && c <= '9' {
				digits++
			}
			s.pos++
			continue
		}
		break
	}
	if digits == 0 {
		return "", s.syntax("expected number")
	}
	return string(s.buf[start:s.pos]), nil
}

func (s *scanner) boolean() (bool, error) {
	s.skipWS()
	switch {
	case bytes.HasPrefix(s.buf[s.pos:], []byte("true")):
		s.pos += 4
		return true, nil
	case bytes.HasPrefix(s.buf[s.pos:], []byte("false")):
		s.pos += 5
		return false, nil
	}
	return false, s.syntax("expected true or false")
}

func (s *scanner) null() error {
	s.skipWS()
	if !bytes.HasPrefix(s.buf[s.pos:], []byte("null")) {
		return s.syntax("expected null")
	}
	s.pos += 4
	return nil
}

func (s *scanner) object(fn func(key string) error) error {
	s.skipWS()
	if s.pos >= len(s.buf) || s.buf[s.pos] != '{' {
		return s.syntax("expected object")
	}
	s.pos++
	s.skipWS()
	if s.pos < len(s.buf) && s.buf[s.pos] == '}' {
		s.pos++
		return nil
	}
	for {
		key, err := s.str()
		if err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.buf) || s.buf[s.pos] != ':' {
			return s.syntax("expected ':' after object key")
		}
		s.pos++
		if err := fn(key); err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.buf) {
			return s.syntax("unterminated object")
		}
		switch s.buf[s.pos] {
		case ',':
			s.pos++
			s.skipWS()
		case '}':
			s.pos++
			return nil
		default:
			return s.syntax("expected ',' or '}' in object")
		}
	}
}

func (s *scanner) array(fn func() error) error {
	s.skipWS()
	if s.pos >= len(s.buf) || s.buf[s.pos] != '[' {
		return s.syntax("expected array")
	}
	s.pos++
	s.skipWS()
	if s.pos < len(s.buf) && s.buf[s.pos] == ']' {
		s.pos++
		return nil
	}
	for {
		if err := fn(); err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.buf) {
			return s.syntax("unterminated array")
		}
		switch s.buf[s.pos] {
		case ',':
			s.pos++
			s.skipWS()
		case ']':
			s.pos++
			return nil
		default:
			return s.syntax("expected ',' or ']' in array")
		}
	}
}

func (s *scanner) skip() error {
	k, err := s.peek()
	if err != nil {
		return err
	}
	switch k {
	case KindNull:
		return s.null()
	case KindBool:
		_, err := s.boolean()
		return err
	case KindNumber:
		_, err := s.number()
		return err
	case KindString:
		_, err := s.str()
		return err
	case KindArray:
		return s.array(s.skip)
	case KindObject:
		return s.object(func(string) error { return s.skip() })
	}
	return s.syntax("unexpected value")
}

// trailing reports an error if anything but whitespace remains.
func (s *scanner) trailing() error {
	s.skipWS()
	if s.pos < len(s.buf) {
		return s.syntax("trailing data after top-level value")
	}
	return nil
}

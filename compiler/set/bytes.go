package set

import (
	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/tlog/tlwire"
)

type (
	// Bytes is a set of byte values.
	Bytes [4]uint64
)

func NewBytes(chars string) (s Bytes) {
	for i := 0; i < len(chars); i++ {
		s.Set(chars[i])
	}

	return s
}

func ByteRange(lo, hi byte) (s Bytes) {
	s.SetRange(lo, hi)

	return s
}

func (s *Bytes) Set(c byte) {
	s[c/64] |= 1 << (c % 64)
}

func (s *Bytes) SetRange(lo, hi byte) {
	for c := int(lo); c <= int(hi); c++ {
		s.Set(byte(c))
	}
}

func (s Bytes) IsSet(c byte) bool {
	return s[c/64]&(1<<(c%64)) != 0
}

func (s Bytes) Or(x Bytes) Bytes {
	for i := range s {
		s[i] |= x[i]
	}

	return s
}

func (s Bytes) AndNot(x Bytes) Bytes {
	for i := range s {
		s[i] &^= x[i]
	}

	return s
}

// Span returns the length of the prefix of b consisting of bytes from the set.
func (s Bytes) Span(b []byte) int {
	for i, c := range b {
		if !s.IsSet(c) {
			return i
		}
	}

	return len(b)
}

// String renders the set as a regexp-like class: [0-9a-f_].
func (s Bytes) String() string {
	b := []byte{'['}

	for c := 0; c < 256; {
		if !s.IsSet(byte(c)) {
			c++
			continue
		}

		e := c
		for e+1 < 256 && s.IsSet(byte(e+1)) {
			e++
		}

		switch {
		case e-c >= 2:
			b = appendClassChar(b, byte(c))
			b = append(b, '-')
			b = appendClassChar(b, byte(e))
		case e-c == 1:
			b = appendClassChar(b, byte(c))
			b = appendClassChar(b, byte(e))
		default:
			b = appendClassChar(b, byte(c))
		}

		c = e + 1
	}

	b = append(b, ']')

	return string(b)
}

func (s Bytes) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, s.String())
}

func appendClassChar(b []byte, c byte) []byte {
	switch c {
	case '\n':
		return append(b, `\n`...)
	case '\t':
		return append(b, `\t`...)
	case '\r':
		return append(b, `\r`...)
	case '-', ']', '[', '\\', '^':
		return append(b, '\\', c)
	}

	if c < 0x20 || c >= 0x7f {
		return hfmt.Appendf(b, `\x%02x`, c)
	}

	return append(b, c)
}

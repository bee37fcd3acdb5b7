package grammar

import (
	"bytes"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// Unescape decodes each 3-byte substring of the form "% HEXDIG HEXDIG" in s
// into the hex-decoded byte. Malformed sequences pass through untouched.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape normalizes s against the character class admitted by shouldEscape:
//
//   - a byte the callback admits is copied through;
//   - a well-formed "% HEXDIG HEXDIG" triplet is kept with its hex digits
//     upper-cased, unless it decodes to an admitted byte, in which case the
//     triplet collapses to the literal byte;
//   - any other byte, including a bare '%', is written as "%XX" with
//     upper-case hex.
//
// The callback must reject '%' itself, otherwise triplets lose meaning.
// Escape never fails and is idempotent: Escape(Escape(s)) == Escape(s).
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			if c := unhex(s[i+1])<<4 | unhex(s[i+2]); !shouldEscape(c) {
				b.WriteByte(c)
			} else {
				b.WriteByte('%')
				b.WriteByte(uphex(s[i+1]))
				b.WriteByte(uphex(s[i+2]))
			}
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func uphex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}

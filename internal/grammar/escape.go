package grammar

import (
	"bytes"

	"github.com/ghettovoice/urn/internal/constraints"
)

const upperhex = "0123456789ABCDEF"

// NormalizeEscapes rewrites every 3-byte substring of the form
// "% HEXDIG HEXDIG" with the hex digits uppercased and reports whether any
// such triplet was found. A "%" not followed by two hex digits is left
// untouched. The triplets are not decoded: "%2C" and "%2c" normalize to the
// same representation, but neither is ever equivalent to ",".
//
// Normalization is idempotent.
func NormalizeEscapes[T constraints.Byteseq](s T) (T, bool) {
	if len(s) == 0 {
		return s, false
	}

	var (
		b     bytes.Buffer
		found bool
	)
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[unhex(s[i+1])])
			b.WriteByte(upperhex[unhex(s[i+2])])
			found = true
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes()), found
}

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

// Package grammar implements the RFC 8141 URN grammar primitives:
// character classes for the namespace identifier and the namespace specific
// string, percent-encoding normalization and separator/indicator scanning.
package grammar

// RQF component indicators (RFC 8141 Section 2.3).
const (
	ResolutionInd = "?+"
	QueryInd      = "?="
	FragmentInd   = "#"
)

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsNIDChar checks the NID character rule: alphanum / "-".
func IsNIDChar(c byte) bool {
	return c == '-' || IsAlphanumChar(c)
}

var nssChars = map[byte]bool{
	'-':  true,
	'.':  true,
	'_':  true,
	'~':  true,
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
	':':  true,
	'@':  true,
	'/':  true,
}

// IsNSSChar checks the NSS character rule for strings without
// percent-encoded triplets: pchar / "/".
func IsNSSChar(c byte) bool {
	return nssChars[c] || IsAlphanumChar(c)
}

// IsNSSEscapedChar checks the NSS character rule for strings containing at
// least one percent-encoded triplet. The "%" itself becomes permitted once a
// valid triplet is present.
func IsNSSEscapedChar(c byte) bool {
	return c == '%' || IsNSSChar(c)
}

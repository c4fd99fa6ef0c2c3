package grammar

import "strings"

// SplitURN splits a raw URN string on its first two ":" separators into the
// scheme, NID and post-NID remainder. It reports false when fewer than two
// separators are present. No component is validated here.
func SplitURN(s string) (scheme, nid, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", "", "", false
	}
	j := strings.IndexByte(s[i+1:], ':')
	if j < 0 {
		return "", "", "", false
	}
	j += i + 1
	return s[:i], s[i+1 : j], s[j+1:], true
}

// IndexRQF returns the index of the earliest RQF indicator in s, or -1 when
// none is present. The NSS boundary depends only on which indicator occurs
// first, not on the canonical resolution/query/fragment order. Indicators are
// matched as literal substrings; an unescaped indicator character inside the
// NSS is read as the start of the trailer.
func IndexRQF(s string) int {
	best := -1
	for _, ind := range [...]string{ResolutionInd, QueryInd, FragmentInd} {
		if p := strings.Index(s, ind); p >= 0 && (best < 0 || p < best) {
			best = p
		}
	}
	return best
}

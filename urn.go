package urn

import (
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/constraints"
	"github.com/ghettovoice/urn/internal/grammar"
	"github.com/ghettovoice/urn/internal/ioutil"
	"github.com/ghettovoice/urn/internal/util"
)

// The only scheme supported by this package.
const schemeURN = "urn"

// NID length bounds in code points. RFC 8141 permits up to 31 characters,
// this implementation caps the NID at 30.
const (
	minNIDLen = 2
	maxNIDLen = 30
)

// URN represents a parsed Uniform Resource Name as defined by RFC 8141.
//
// A URN consists of the "urn" scheme, a namespace identifier (NID), a
// namespace specific string (NSS) and an optional resolution/query/fragment
// trailer ([RQF]). Values are immutable once constructed: the scheme and NID
// are stored lowercase, the NSS is stored with all percent-encoded triplets
// uppercased and its remaining characters preserved as given.
//
// Use [Parse] or [New] to obtain a URN; the zero value is not a valid URN.
type URN struct {
	scheme string
	nid    string
	nss    string
	rqf    *RQF
}

// Parse parses a complete URN string from the given input src (string or []byte).
//
// The input is split on its first two ":" separators into scheme, NID and the
// remainder; the NSS extends from the second separator to the earliest RQF
// indicator ("?+", "?=" or "#") or to the end of input. Each component is then
// validated and normalized. The first violated rule aborts parsing with the
// corresponding sentinel error and no partial result.
func Parse[T constraints.Byteseq](src T) (*URN, error) {
	s := string(src)

	schemeRaw, nidRaw, rest, ok := grammar.SplitURN(s)
	if !ok {
		return nil, errtrace.Wrap(newInsufficientComponentsErr(s))
	}

	scheme, err := validateScheme(schemeRaw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	nid, err := validateNID(nidRaw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	nssRaw, trailer := rest, ""
	if k := grammar.IndexRQF(rest); k >= 0 {
		nssRaw, trailer = rest[:k], rest[k:]
	}
	nss, err := validateNSS(nssRaw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &URN{scheme: scheme, nid: nid, nss: nss, rqf: ParseRQF(trailer)}, nil
}

// New builds a URN from discrete components, applying the same validation and
// normalization as [Parse]. An empty scheme defaults to "urn". The rqf
// argument is a raw trailer string (e.g. "?=key=value#root"); when it contains
// no RQF indicator the resulting URN carries no trailer.
func New(scheme, nid, nss, rqf string) (*URN, error) {
	if scheme == "" {
		scheme = schemeURN
	}
	scheme, err := validateScheme(scheme)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	nid, err = validateNID(nid)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	nss, err = validateNSS(nss)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URN{scheme: scheme, nid: nid, nss: nss, rqf: ParseRQF(rqf)}, nil
}

func validateScheme(s string) (string, error) {
	if !util.EqFold(s, schemeURN) {
		return "", errtrace.Wrap(newUnsupportedSchemeErr(s))
	}
	return schemeURN, nil
}

// validateNID checks the NID in a fixed order: presence, minimum length,
// maximum length, character class. The order makes error reporting
// deterministic for multiply-invalid input.
func validateNID(s string) (string, error) {
	if s == "" {
		return "", errtrace.Wrap(ErrMissingNID)
	}
	n := utf8.RuneCountInString(s)
	if n < minNIDLen {
		return "", errtrace.Wrap(newNIDLenErr(ErrNIDTooShort, s, n))
	}
	if n > maxNIDLen {
		return "", errtrace.Wrap(newNIDLenErr(ErrNIDTooLong, s, n))
	}
	for i := 0; i < len(s); i++ {
		if !grammar.IsNIDChar(s[i]) {
			return "", errtrace.Wrap(newInvalidNIDCharsErr(s, s[i]))
		}
	}
	return util.LCase(s), nil
}

// validateNSS normalizes percent-encoded triplets first, then checks every
// byte of the normalized string against the permitted set. The set including
// "%" applies only when at least one valid triplet is present, so a lone
// unescaped "%" is rejected.
func validateNSS(s string) (string, error) {
	if s == "" {
		return "", errtrace.Wrap(ErrMissingNSS)
	}
	norm, escaped := grammar.NormalizeEscapes(s)
	for i := 0; i < len(norm); i++ {
		c := norm[i]
		if escaped {
			if !grammar.IsNSSEscapedChar(c) {
				return "", errtrace.Wrap(newInvalidNSSCharsErr(norm, c))
			}
		} else if !grammar.IsNSSChar(c) {
			return "", errtrace.Wrap(newInvalidNSSCharsErr(norm, c))
		}
	}
	return norm, nil
}

// Scheme returns the URN scheme, always "urn".
func (u *URN) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// NID returns the namespace identifier in its lowercase normalized form.
func (u *URN) NID() string {
	if u == nil {
		return ""
	}
	return u.nid
}

// NSS returns the namespace specific string with percent-encoded triplets
// uppercased.
func (u *URN) NSS() string {
	if u == nil {
		return ""
	}
	return u.nss
}

// Elements returns the NSS split on ":" in source order. Namespaces that
// sub-structure their NSS (e.g. "urn:ietf:rfc:2141") can address the parts
// positionally. Empty segments are preserved.
func (u *URN) Elements() []string {
	if u == nil {
		return nil
	}
	return strings.Split(u.nss, ":")
}

// RQF returns the resolution/query/fragment trailer, or nil when the URN has
// none.
func (u *URN) RQF() *RQF {
	if u == nil {
		return nil
	}
	return u.rqf
}

// AssignedName returns the "scheme:NID:NSS" form of the URN built from the
// stored normalized components. It is the basis of URN-equivalence.
func (u *URN) AssignedName() string {
	if u == nil {
		return ""
	}
	return u.scheme + ":" + u.nid + ":" + u.nss
}

// Clone returns a copy of the URN.
func (u *URN) Clone() *URN {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.rqf != nil {
		rqf := *u.rqf
		u2.rqf = &rqf
	}
	return &u2
}

// RenderOptions contains options for rendering URNs and trailers.
// It is reserved for forward compatibility; a nil value is always accepted.
type RenderOptions struct{}

// RenderTo writes the URN to the provided writer.
func (u *URN) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(u.scheme, ":", u.nid, ":", u.nss)
	if u.rqf != nil {
		cw.Call(u.renderRQF)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URN) renderRQF(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(u.rqf.RenderTo(w, nil))
}

// Render returns the string representation of the URN.
func (u *URN) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URN: the assigned name
// followed by the reconstructed trailer, if any.
func (u *URN) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URN.
func (u *URN) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URN
		type URN hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URN)(u))
		return
	}
}

// Equal compares this URN with another for URN-equivalence according to
// RFC 8141 Section 3.2: the assigned names must match after normalization.
// The scheme and NID are compared case-insensitively (both stored lowercase),
// percent-encoded triplets case-insensitively (stored uppercase) without
// decoding, the rest of the NSS case-sensitively. The RQF trailer never takes
// part in the comparison.
func (u *URN) Equal(val any) bool {
	var other *URN
	switch v := val.(type) {
	case URN:
		other = &v
	case *URN:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.AssignedName() == other.AssignedName()
}

// Hash returns a 64-bit hash of the URN consistent with [URN.Equal]:
// equivalent URNs hash to the same value.
func (u *URN) Hash() uint64 {
	h := fnv.New64a()
	io.WriteString(h, u.AssignedName()) //nolint:errcheck
	return h.Sum64()
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URN) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URN) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URN{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

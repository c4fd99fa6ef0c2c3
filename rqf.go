package urn

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urn/internal/constraints"
	"github.com/ghettovoice/urn/internal/grammar"
	"github.com/ghettovoice/urn/internal/ioutil"
	"github.com/ghettovoice/urn/internal/util"
)

// RQF represents the optional resolution/query/fragment trailer of a URN
// (RFC 8141 Section 2.3). Each component is tracked separately as present or
// absent: a component is present, possibly with an empty payload, only when
// its indicator ("?+", "?=" or "#") occurred in the source trailer.
//
// The trailer never takes part in URN-equivalence.
type RQF struct {
	resolution string
	query      string
	fragment   string

	hasResolution bool
	hasQuery      bool
	hasFragment   bool
}

// ParseRQF parses a trailer string from the given input src (string or []byte).
//
// It returns nil when none of the three indicators is present, whatever the
// rest of the input contains. A present indicator with nothing between it and
// the next indicator or end of input yields a present component with an empty
// payload, which is distinct from an absent component.
//
// The trailer is consumed left to right from the earliest indicator: a
// resolution payload runs to the first "?=" or "#" after it, a query payload
// to the first "#" after it, and a fragment payload to the end of input. An
// indicator character occurring past that point belongs to the payload and
// starts no component.
func ParseRQF[T constraints.Byteseq](src T) *RQF {
	s := string(src)

	i := grammar.IndexRQF(s)
	if i < 0 {
		return nil
	}

	rqf := &RQF{}
	rest := s[i:]
	if strings.HasPrefix(rest, grammar.ResolutionInd) {
		payload := rest[len(grammar.ResolutionInd):]
		end := payloadEnd(payload, grammar.QueryInd, grammar.FragmentInd)
		rqf.hasResolution = true
		rqf.resolution = payload[:end]
		rest = payload[end:]
	}
	if strings.HasPrefix(rest, grammar.QueryInd) {
		payload := rest[len(grammar.QueryInd):]
		end := payloadEnd(payload, grammar.FragmentInd)
		rqf.hasQuery = true
		rqf.query = payload[:end]
		rest = payload[end:]
	}
	if strings.HasPrefix(rest, grammar.FragmentInd) {
		rqf.hasFragment = true
		rqf.fragment = rest[len(grammar.FragmentInd):]
	}
	return rqf
}

// payloadEnd picks the payload boundary: the earliest occurrence of any of
// the given indicators in s, else the end of input.
func payloadEnd(s string, inds ...string) int {
	end := len(s)
	for _, ind := range inds {
		if p := strings.Index(s, ind); p >= 0 && p < end {
			end = p
		}
	}
	return end
}

// Resolution returns the r-component payload and whether it is present.
func (rqf *RQF) Resolution() (string, bool) {
	if rqf == nil {
		return "", false
	}
	return rqf.resolution, rqf.hasResolution
}

// Query returns the q-component payload and whether it is present.
func (rqf *RQF) Query() (string, bool) {
	if rqf == nil {
		return "", false
	}
	return rqf.query, rqf.hasQuery
}

// Fragment returns the f-component payload and whether it is present.
func (rqf *RQF) Fragment() (string, bool) {
	if rqf == nil {
		return "", false
	}
	return rqf.fragment, rqf.hasFragment
}

// ParamItem is a single name=value parameter of an r- or q-component payload.
type ParamItem struct {
	Name  string
	Value string
}

// ResolutionItems returns the r-component payload split into name=value
// parameters, in source order.
func (rqf *RQF) ResolutionItems() []ParamItem {
	if rqf == nil || !rqf.hasResolution {
		return nil
	}
	return splitParamItems(rqf.resolution)
}

// QueryItems returns the q-component payload split into name=value
// parameters, in source order.
func (rqf *RQF) QueryItems() []ParamItem {
	if rqf == nil || !rqf.hasQuery {
		return nil
	}
	return splitParamItems(rqf.query)
}

// splitParamItems splits a payload on "&", then each piece on "=". A piece
// must split into exactly a non-empty name and a non-empty value to produce an
// item; anything else is dropped without error. Sub-parameters are interpreted
// by the consumer and not governed by the URN grammar.
func splitParamItems(payload string) []ParamItem {
	if payload == "" {
		return nil
	}

	pairs := strings.Split(payload, "&")
	items := make([]ParamItem, 0, len(pairs))
	for _, pair := range pairs {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
			continue
		}
		items = append(items, ParamItem{Name: kv[0], Value: kv[1]})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// RenderTo writes the trailer to the provided writer: present indicators in
// canonical resolution, query, fragment order, each immediately followed by
// its payload.
func (rqf *RQF) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if rqf == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if rqf.hasResolution {
		cw.Fprint(grammar.ResolutionInd, rqf.resolution)
	}
	if rqf.hasQuery {
		cw.Fprint(grammar.QueryInd, rqf.query)
	}
	if rqf.hasFragment {
		cw.Fprint(grammar.FragmentInd, rqf.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the trailer.
func (rqf *RQF) Render(opts *RenderOptions) string {
	if rqf == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	rqf.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the trailer.
func (rqf *RQF) String() string {
	if rqf == nil {
		return ""
	}
	return rqf.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the trailer.
func (rqf *RQF) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			rqf.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, rqf.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rqf.String()))
		return
	default:
		type hideMethods RQF
		type RQF hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*RQF)(rqf))
		return
	}
}

// Equal compares this trailer with another structurally: the same components
// present with the same payloads.
func (rqf *RQF) Equal(val any) bool {
	var other *RQF
	switch v := val.(type) {
	case RQF:
		other = &v
	case *RQF:
		other = v
	default:
		return false
	}

	if rqf == other {
		return true
	} else if rqf == nil || other == nil {
		return false
	}

	return *rqf == *other
}

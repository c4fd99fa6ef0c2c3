package urn_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urn"
)

func TestParseRQF(t *testing.T) {
	t.Parallel()

	type comp struct {
		val string
		ok  bool
	}

	cases := []struct {
		name     string
		input    string
		wantNil  bool
		wantRes  comp
		wantQry  comp
		wantFrag comp
	}{
		{"empty input", "", true, comp{}, comp{}, comp{}},
		{"no indicators", "garbage without indicators", true, comp{}, comp{}, comp{}},
		{"lone question mark", "?res", true, comp{}, comp{}, comp{}},

		{"resolution only", "?+res", false, comp{"res", true}, comp{}, comp{}},
		{"query only", "?=op=map", false, comp{}, comp{"op=map", true}, comp{}},
		{"fragment only", "#rivers", false, comp{}, comp{}, comp{"rivers", true}},
		{"all components", "?+res?=op=map#rivers", false, comp{"res", true}, comp{"op=map", true}, comp{"rivers", true}},

		{"empty resolution", "?+", false, comp{"", true}, comp{}, comp{}},
		{"empty query", "?=", false, comp{}, comp{"", true}, comp{}},
		{"empty fragment", "#", false, comp{}, comp{}, comp{"", true}},
		{"all empty", "?+?=#", false, comp{"", true}, comp{"", true}, comp{"", true}},

		{"resolution bounded by fragment", "?+res#frag", false, comp{"res", true}, comp{}, comp{"frag", true}},
		{"query bounded by fragment", "?=op#frag", false, comp{}, comp{"op", true}, comp{"frag", true}},

		{"fragment absorbs later indicators", "#f?=q", false, comp{}, comp{}, comp{"f?=q", true}},
		{"query absorbs later resolution", "?=x?+y", false, comp{}, comp{"x?+y", true}, comp{}},
		{"fragment before query indicator", "?+r#f?=q", false, comp{"r", true}, comp{}, comp{"f?=q", true}},
		{"repeated resolution indicator", "?+a?+b#c", false, comp{"a?+b", true}, comp{}, comp{"c", true}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := urn.ParseRQF(c.input)
			if c.wantNil {
				if got != nil {
					t.Fatalf("urn.ParseRQF(%q) = %v, want nil", c.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("urn.ParseRQF(%q) = nil, want non-nil", c.input)
			}

			if val, ok := got.Resolution(); val != c.wantRes.val || ok != c.wantRes.ok {
				t.Errorf("RQF.Resolution() = (%q, %v), want (%q, %v)", val, ok, c.wantRes.val, c.wantRes.ok)
			}
			if val, ok := got.Query(); val != c.wantQry.val || ok != c.wantQry.ok {
				t.Errorf("RQF.Query() = (%q, %v), want (%q, %v)", val, ok, c.wantQry.val, c.wantQry.ok)
			}
			if val, ok := got.Fragment(); val != c.wantFrag.val || ok != c.wantFrag.ok {
				t.Errorf("RQF.Fragment() = (%q, %v), want (%q, %v)", val, ok, c.wantFrag.val, c.wantFrag.ok)
			}
		})
	}
}

func TestRQFString(t *testing.T) {
	t.Parallel()

	// Reconstruction re-emits present indicators in canonical order, each
	// immediately followed by its payload.
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"all components", "?+res?=op=map#rivers", "?+res?=op=map#rivers"},
		{"empty components kept", "?+?=#", "?+?=#"},
		{"resolution only", "?+res", "?+res"},
		{"fragment only", "#rivers", "#rivers"},
		{"indicator chars inside fragment", "#f?=q", "#f?=q"},
		{"indicator chars inside payloads", "?+r#f?=q", "?+r#f?=q"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := urn.ParseRQF(c.input).String(); got != c.want {
				t.Errorf("urn.ParseRQF(%q).String() = %q, want %q", c.input, got, c.want)
			}
		})
	}

	var nilRQF *urn.RQF
	if got := nilRQF.String(); got != "" {
		t.Errorf("nil RQF.String() = %q, want empty", got)
	}
}

func TestRQFItems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []urn.ParamItem
	}{
		{"two pairs", "?=k1=v1&k2=v2", []urn.ParamItem{{Name: "k1", Value: "v1"}, {Name: "k2", Value: "v2"}}},
		{"malformed pair dropped", "?=bad&k=v", []urn.ParamItem{{Name: "k", Value: "v"}}},
		{"extra equals dropped", "?=a=b=c&x=y", []urn.ParamItem{{Name: "x", Value: "y"}}},
		{"empty name dropped", "?==v&k=v", []urn.ParamItem{{Name: "k", Value: "v"}}},
		{"empty value dropped", "?=k=&x=y", []urn.ParamItem{{Name: "x", Value: "y"}}},
		{"empty payload", "?=", nil},
		{"all malformed", "?=bad&worse", nil},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := urn.ParseRQF(c.input).QueryItems()
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("urn.ParseRQF(%q).QueryItems() diff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestRQFResolutionItems(t *testing.T) {
	t.Parallel()

	got := urn.ParseRQF("?+a=1&b=2?=c=3").ResolutionItems()
	want := []urn.ParamItem{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("RQF.ResolutionItems() diff (-got +want):\n%v", diff)
	}

	var nilRQF *urn.RQF
	if items := nilRQF.ResolutionItems(); items != nil {
		t.Errorf("nil RQF.ResolutionItems() = %v, want nil", items)
	}
}

func TestRQFEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		t1, t2 string
		want   bool
	}{
		{"identical", "?+res#frag", "?+res#frag", true},
		{"different payload", "?+res1", "?+res2", false},
		{"present empty vs absent", "?+", "#f", false},
		{"same empty components", "?+?=", "?+?=", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r1, r2 := urn.ParseRQF(c.t1), urn.ParseRQF(c.t2)
			if got := r1.Equal(r2); got != c.want {
				t.Errorf("urn.ParseRQF(%q).Equal(urn.ParseRQF(%q)) = %v, want %v", c.t1, c.t2, got, c.want)
			}
		})
	}

	if urn.ParseRQF("?+res").Equal("?+res") {
		t.Error("RQF.Equal(string) = true, want false")
	}
}

func TestURNWithoutRQF(t *testing.T) {
	t.Parallel()

	u, err := urn.Parse("urn:example:abc")
	if err != nil {
		t.Fatalf("urn.Parse() error = %v, want nil", err)
	}
	if u.RQF() != nil {
		t.Errorf("URN.RQF() = %v, want nil", u.RQF())
	}
}

package grammar_test

import (
	"testing"

	"github.com/ghettovoice/urn/internal/grammar"
)

func TestNormalizeEscapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     string
		want      string
		wantFound bool
	}{
		{"empty", "", "", false},
		{"no escapes", "abc-qwe", "abc-qwe", false},
		{"lowercase triplet", "a%2cz", "a%2Cz", true},
		{"uppercase triplet", "a%2Cz", "a%2Cz", true},
		{"mixed triplets", "%ff%Ff%fF%FF", "%FF%FF%FF%FF", true},
		{"adjacent to text", "100%20200", "100%20200", true},
		{"percent without digits", "100%ZZ", "100%ZZ", false},
		{"trailing percent", "example%", "example%", false},
		{"percent one digit", "a%2", "a%2", false},
		{"triplet then bare percent", "a%2C%", "a%2C%", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, found := grammar.NormalizeEscapes(c.input)
			if got != c.want || found != c.wantFound {
				t.Errorf("grammar.NormalizeEscapes(%q) = (%q, %v), want (%q, %v)",
					c.input, got, found, c.want, c.wantFound,
				)
			}

			// normalization is idempotent
			got2, _ := grammar.NormalizeEscapes(got)
			if got2 != got {
				t.Errorf("grammar.NormalizeEscapes(%q) = %q, not idempotent", got, got2)
			}
		})
	}
}

func TestNormalizeEscapesBytes(t *testing.T) {
	t.Parallel()

	got, found := grammar.NormalizeEscapes([]byte("a%2cz"))
	if string(got) != "a%2Cz" || !found {
		t.Errorf("grammar.NormalizeEscapes() = (%q, %v), want (%q, true)", got, found, "a%2Cz")
	}
}

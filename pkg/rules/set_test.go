package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_DeclarationOrder(t *testing.T) {
	set := NewSet().
		Add("username", Rule{Required: true}).
		Add("email", Rule{Email: true}).
		Add("homepage", Rule{URL: true})

	if diff := cmp.Diff([]string{"username", "email", "homepage"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	// Replacing a rule keeps the original position.
	set.Add("email", Rule{Email: true, Required: true})
	if diff := cmp.Diff([]string{"username", "email", "homepage"}, set.Names()); diff != "" {
		t.Fatalf("names changed after replace (-want +got):\n%s", diff)
	}
	rule, ok := set.Rule("email")
	if !ok || !rule.Required {
		t.Fatal("expected replaced rule to be stored")
	}
}

func TestSet_Labels(t *testing.T) {
	set := NewSet().
		Add("repoName", Rule{}).
		AddLabeled("min_stars", "Minimum Stars", Rule{})

	if got := set.Label("repoName"); got != "Repo name" {
		t.Fatalf("derived label = %q", got)
	}
	if got := set.Label("min_stars"); got != "Minimum Stars" {
		t.Fatalf("explicit label = %q", got)
	}
	if got := set.Label("undeclared_field"); got != "Undeclared Field" {
		t.Fatalf("fallback label = %q", got)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"userName", "User name"},
		{"min_stars", "Min Stars"},
		{"api-key2", "Api Key 2"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Label(tc.input); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

package rules

import (
	"regexp"
	"strings"
	"testing"
)

func TestEvaluate_Required(t *testing.T) {
	rule := Rule{Required: true}
	for _, empty := range []any{nil, ""} {
		if msg := Evaluate(empty, rule, "Name"); msg != "Name is required" {
			t.Fatalf("Evaluate(%v) = %q, want required failure", empty, msg)
		}
	}
	var nilPtr *string
	if msg := Evaluate(nilPtr, rule, "Name"); msg != "Name is required" {
		t.Fatalf("nil pointer should fail required, got %q", msg)
	}
	if msg := Evaluate("ok", rule, "Name"); msg != "" {
		t.Fatalf("non-empty value should skip the required branch, got %q", msg)
	}
}

func TestEvaluate_EmptyOptionalShortCircuits(t *testing.T) {
	rule := Rule{
		MinLength: 8,
		Pattern:   regexp.MustCompile(`^\d+$`),
		Email:     true,
		Custom: func(any) string {
			return "custom should not run"
		},
	}
	if msg := Evaluate("", rule, "Anything"); msg != "" {
		t.Fatalf("empty optional value must pass immediately, got %q", msg)
	}
}

func TestEvaluate_Precedence(t *testing.T) {
	passwordPattern := regexp.MustCompile(`^(?:.*[a-z].*)$`)
	rule := Rule{MinLength: 8, MaxLength: 128, Pattern: passwordPattern}

	if msg := Evaluate("abc", rule, "Password"); msg != "Password must be at least 8 characters" {
		t.Fatalf("length must be checked before pattern, got %q", msg)
	}
	if msg := Evaluate(strings.Repeat("X", 200), rule, "Password"); msg != "Password must be no more than 128 characters" {
		t.Fatalf("expected maxLength failure, got %q", msg)
	}
	if msg := Evaluate("12345678", rule, "Password"); msg != "Password format is invalid" {
		t.Fatalf("expected pattern failure after lengths pass, got %q", msg)
	}
}

func TestEvaluate_Formats(t *testing.T) {
	if msg := Evaluate("not-an-email", Rule{Email: true}, "Email"); msg != "Email must be a valid email address" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate("user@example.com", Rule{Email: true}, "Email"); msg != "" {
		t.Fatalf("valid email rejected: %q", msg)
	}
	if msg := Evaluate("not a url", Rule{URL: true}, "Homepage"); msg != "Homepage must be a valid URL" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate("https://example.com", Rule{URL: true}, "Homepage"); msg != "" {
		t.Fatalf("valid url rejected: %q", msg)
	}
}

func TestEvaluate_NumericBounds(t *testing.T) {
	rule := Rule{Min: Bound(1), Max: Bound(100)}
	if msg := Evaluate(0, rule, "Stars"); msg != "Stars must be at least 1" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate(101, rule, "Stars"); msg != "Stars must be no more than 100" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate(50, rule, "Stars"); msg != "" {
		t.Fatalf("in-range value rejected: %q", msg)
	}
	if msg := Evaluate("42", rule, "Stars"); msg != "" {
		t.Fatalf("numeric string should coerce, got %q", msg)
	}
}

func TestEvaluate_CustomRunsLast(t *testing.T) {
	calls := 0
	rule := Rule{
		MinLength: 3,
		Custom: func(value any) string {
			calls++
			if value == "banned" {
				return "that value is not allowed"
			}
			return ""
		},
	}
	if msg := Evaluate("ab", rule, "Field"); !strings.Contains(msg, "at least 3") {
		t.Fatalf("expected minLength failure, got %q", msg)
	}
	if calls != 0 {
		t.Fatal("custom must not run when a built-in already failed")
	}
	if msg := Evaluate("banned", rule, "Field"); msg != "that value is not allowed" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate("fine", rule, "Field"); msg != "" {
		t.Fatalf("got %q", msg)
	}
}

func TestSafe(t *testing.T) {
	rule := Safe()
	if msg := Evaluate("<script>alert(1)</script>", rule, "Bio"); msg != "Input contains potentially dangerous content" {
		t.Fatalf("got %q", msg)
	}
	if msg := Evaluate("an ordinary bio", rule, "Bio"); msg != "" {
		t.Fatalf("safe text rejected: %q", msg)
	}
	if msg := Evaluate(42, rule, "Count"); msg != "" {
		t.Fatalf("non-string value should pass the screen, got %q", msg)
	}
}

func TestMerge_SecurityShortCircuitsCallerCustom(t *testing.T) {
	callerRan := false
	caller := Rule{
		Required: true,
		Custom: func(any) string {
			callerRan = true
			return ""
		},
	}
	merged := Merge(Safe(), caller)

	if msg := Evaluate("1 OR 1=1", merged, "Query"); msg != "Input contains potentially dangerous content" {
		t.Fatalf("got %q", msg)
	}
	if callerRan {
		t.Fatal("caller custom must not run after a security failure")
	}

	if msg := Evaluate("clean", merged, "Query"); msg != "" {
		t.Fatalf("got %q", msg)
	}
	if !callerRan {
		t.Fatal("caller custom should run when the screen passes")
	}
}

func TestMerge_ScalarOverlay(t *testing.T) {
	base := Rule{MinLength: 2, MaxLength: 10}
	extra := Rule{Required: true, MaxLength: 5, Min: Bound(1)}
	merged := Merge(base, extra)

	if !merged.Required || merged.MinLength != 2 || merged.MaxLength != 5 {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if merged.Min == nil || *merged.Min != 1 {
		t.Fatal("expected Min carried from extra")
	}
}

package rules

import "regexp"

// Custom is a caller-supplied predicate evaluated after every built-in
// check. A non-empty return is the failure message for the field.
type Custom func(value any) string

// Rule is the declarative constraint set for one field. Construct it once per
// field definition and treat it as read-only for the life of the form. Zero
// values mean "not constrained": a zero MinLength imposes nothing, a nil
// Pattern skips the regex test, and nil Min/Max skip the numeric bounds.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Min       *float64
	Max       *float64
	Email     bool
	URL       bool
	Custom    Custom
}

// Merge layers extra on top of base. Scalar constraints from extra win when
// set; custom predicates chain with base running first, so a base failure
// short-circuits the extra predicate. Callers merge the mandatory security
// rule as the base and their own rule as extra, which keeps the security
// screen ahead of any caller custom check.
func Merge(base, extra Rule) Rule {
	merged := base
	if extra.Required {
		merged.Required = true
	}
	if extra.MinLength > 0 {
		merged.MinLength = extra.MinLength
	}
	if extra.MaxLength > 0 {
		merged.MaxLength = extra.MaxLength
	}
	if extra.Pattern != nil {
		merged.Pattern = extra.Pattern
	}
	if extra.Min != nil {
		merged.Min = extra.Min
	}
	if extra.Max != nil {
		merged.Max = extra.Max
	}
	if extra.Email {
		merged.Email = true
	}
	if extra.URL {
		merged.URL = true
	}
	merged.Custom = chainCustom(base.Custom, extra.Custom)
	return merged
}

func chainCustom(first, second Custom) Custom {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return func(value any) string {
		if msg := first(value); msg != "" {
			return msg
		}
		return second(value)
	}
}

// Bound is a convenience for inline numeric limits.
func Bound(v float64) *float64 {
	return &v
}

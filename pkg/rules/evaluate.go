package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-formguard/pkg/pattern"
	"github.com/goliatone/go-formguard/pkg/security"
)

// Failure message templates. Fixed strings with the field label interpolated;
// there is no localization layer.
const (
	msgRequired  = "%s is required"
	msgMinLength = "%s must be at least %d characters"
	msgMaxLength = "%s must be no more than %d characters"
	msgPattern   = "%s format is invalid"
	msgEmail     = "%s must be a valid email address"
	msgURL       = "%s must be a valid URL"
	msgMin       = "%s must be at least %v"
	msgMax       = "%s must be no more than %v"
)

// Evaluate checks value against rule and returns the first failure message,
// or "" when the value passes. Checks run in a fixed precedence order and
// short-circuit: required, then (for non-empty values only) minLength,
// maxLength, pattern, email, url, the numeric bounds, and finally the custom
// predicate. An empty value that is not required passes immediately without
// reaching any other check.
func Evaluate(value any, rule Rule, label string) string {
	if pattern.IsEmpty(value) {
		if rule.Required {
			return fmt.Sprintf(msgRequired, label)
		}
		return ""
	}

	if str, ok := pattern.CoerceString(value); ok {
		if rule.MinLength > 0 && utf8.RuneCountInString(str) < rule.MinLength {
			return fmt.Sprintf(msgMinLength, label, rule.MinLength)
		}
		if rule.MaxLength > 0 && utf8.RuneCountInString(str) > rule.MaxLength {
			return fmt.Sprintf(msgMaxLength, label, rule.MaxLength)
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
			return fmt.Sprintf(msgPattern, label)
		}
		if rule.Email && !pattern.Email.MatchString(str) {
			return fmt.Sprintf(msgEmail, label)
		}
		if rule.URL && !pattern.URL.MatchString(str) {
			return fmt.Sprintf(msgURL, label)
		}
	}

	if rule.Min != nil || rule.Max != nil {
		if num, ok := pattern.CoerceNumber(value); ok {
			if rule.Min != nil && num < *rule.Min {
				return fmt.Sprintf(msgMin, label, *rule.Min)
			}
			if rule.Max != nil && num > *rule.Max {
				return fmt.Sprintf(msgMax, label, *rule.Max)
			}
		}
	}

	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// Safe builds the mandatory security rule: a custom predicate that runs the
// injection/traversal screen over string values and fails with the generic
// rejection message. Merge it as the base rule so it always runs ahead of the
// caller's own custom predicate.
func Safe() Rule {
	return Rule{
		Custom: func(value any) string {
			str, ok := pattern.CoerceString(value)
			if !ok {
				return ""
			}
			if !security.IsSafe(str) {
				return security.RejectionMessage
			}
			return ""
		},
	}
}

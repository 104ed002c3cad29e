package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

// Named expressions shared by rule evaluation and input adapters. Compiled
// once at package init; treat them as read-only.
var (
	// Email accepts the common mailbox@domain.tld shape. It is deliberately
	// narrower than RFC 5322; quoted local parts and IP literals are rejected.
	Email = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// URL accepts absolute http(s) URLs with a plausible host.
	URL = regexp.MustCompile(`^https?://[a-zA-Z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+$`)

	// Username allows letters, digits, dashes and underscores, 1-39 runes,
	// matching the GitHub handle shape the dashboard filters on.
	Username = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-_]{0,38})$`)

	// NoSpecialChars allows letters, digits and whitespace only.
	NoSpecialChars = regexp.MustCompile(`^[a-zA-Z0-9\s]*$`)

	// Password requires at least one lower, one upper and one digit. Length
	// bounds are expressed as separate rules so the message stays specific.
	Password = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]*$`)
)

// CoerceString extracts a string from a raw field value. Non-string values
// report false rather than being formatted, so callers can decide whether to
// apply string rules at all.
func CoerceString(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case *string:
		if typed == nil {
			return "", false
		}
		return *typed, true
	default:
		return "", false
	}
}

// CoerceNumber converts a raw field value into a float64. Strings are parsed
// after trimming; empty strings and unsupported types report false.
func CoerceNumber(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// CoerceInteger converts a raw field value into an int64, rejecting values
// with a fractional component.
func CoerceInteger(value any) (int64, bool) {
	switch typed := value.(type) {
	case int:
		return int64(typed), true
	case int32:
		return int64(typed), true
	case int64:
		return typed, true
	case uint:
		return int64(typed), true
	case float64:
		if typed != float64(int64(typed)) {
			return 0, false
		}
		return int64(typed), true
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IsEmpty reports whether a raw field value counts as absent for rule
// purposes: nil, an empty string, or a nil string pointer.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch typed := value.(type) {
	case string:
		return typed == ""
	case *string:
		return typed == nil || *typed == ""
	default:
		return false
	}
}

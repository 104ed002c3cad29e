package security

import "regexp"

// RejectionMessage is the only text surfaced when the screen trips. It stays
// generic on purpose: naming the heuristic that matched would help an
// attacker tune the payload.
const RejectionMessage = "Input contains potentially dangerous content"

var (
	scriptBlockPattern  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsSchemePattern     = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon[a-z]+\s*=`)
	embedTagPattern     = regexp.MustCompile(`(?i)<\s*(iframe|object|embed)\b`)

	sqlKeywordPattern   = regexp.MustCompile(`(?i)(^|[^a-zA-Z0-9_])(select|insert|update|delete|drop|create|alter|exec|union)([^a-zA-Z0-9_]|$)`)
	sqlTautologyPattern = regexp.MustCompile(`(?i)\d+\s*(or|and)\s+\d+\s*=\s*\d+`)
	sqlCharPattern      = regexp.MustCompile("[\"';\\\\]")

	traversalPattern = regexp.MustCompile(`\.\.[\\/]`)
)

// HasXSS reports whether value contains a script block, a javascript: URI
// scheme, an inline on*= event handler attribute, or an iframe/object/embed
// tag. Matching is case-insensitive.
func HasXSS(value string) bool {
	if value == "" {
		return false
	}
	return scriptBlockPattern.MatchString(value) ||
		jsSchemePattern.MatchString(value) ||
		eventHandlerPattern.MatchString(value) ||
		embedTagPattern.MatchString(value)
}

// HasSQLInjection reports whether value contains a SQL keyword as a
// standalone token, a numeric tautology such as "1 OR 1=1", or raw
// quote/semicolon/backslash characters. Legitimate text containing the word
// SELECT trips this check; that trade-off is accepted.
func HasSQLInjection(value string) bool {
	if value == "" {
		return false
	}
	return sqlKeywordPattern.MatchString(value) ||
		sqlTautologyPattern.MatchString(value) ||
		sqlCharPattern.MatchString(value)
}

// HasDirectoryTraversal reports whether value contains a "../" or "..\"
// sequence.
func HasDirectoryTraversal(value string) bool {
	if value == "" {
		return false
	}
	return traversalPattern.MatchString(value)
}

// IsSafe is the composed gate: true only when none of the heuristics match.
// The checks are advisory token matchers, not a sandbox; URL-encoded or
// otherwise obfuscated payloads are not decoded before matching.
func IsSafe(value string) bool {
	return !HasXSS(value) && !HasSQLInjection(value) && !HasDirectoryTraversal(value)
}

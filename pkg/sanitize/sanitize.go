package sanitize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/goliatone/go-formguard/pkg/pattern"
)

var (
	scriptBlockPattern  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsSchemePattern     = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon[a-z]+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)
)

// String strips script blocks, javascript: URI schemes and inline event
// handler attributes, then trims surrounding whitespace. Stripping repeats
// until a fixed point so removals cannot splice a new payload together;
// String(String(x)) == String(x) for every input.
func String(value string) string {
	current := value
	for {
		next := scriptBlockPattern.ReplaceAllString(current, "")
		next = jsSchemePattern.ReplaceAllString(next, "")
		next = eventHandlerPattern.ReplaceAllString(next, "")
		if next == current {
			break
		}
		current = next
	}
	return strings.TrimSpace(current)
}

var entityPrefixPattern = regexp.MustCompile(`^&(?:[a-zA-Z][a-zA-Z0-9]{1,31}|#[0-9]{1,7}|#x[0-9a-fA-F]{1,6});`)

// HTML escapes a string for safe text-node insertion. Unlike html.EscapeString
// it leaves existing character entities alone, which keeps the escape
// idempotent; RE2 has no lookahead, so the ampersand check is a prefix match
// on the remainder of the input.
func HTML(value string) string {
	var out strings.Builder
	out.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '&':
			if entityPrefixPattern.MatchString(value[i:]) {
				out.WriteByte(c)
			} else {
				out.WriteString("&amp;")
			}
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		case '"':
			out.WriteString("&quot;")
		case '\'':
			out.WriteString("&#39;")
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// Number parses a raw value into a float64. The second return is false when
// the value does not parse; callers treat that as "no value" rather than an
// error.
func Number(value any) (float64, bool) {
	return pattern.CoerceNumber(value)
}

// Integer parses a raw value into an int64, rejecting fractional input.
func Integer(value any) (int64, bool) {
	return pattern.CoerceInteger(value)
}

// URL round-trips the string through net/url and yields the normalized form.
// Relative references and host-less strings report false; this sanitizer is
// for link fields, not path fragments.
func URL(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", false
	}
	return parsed.String(), true
}

// Package sanitize normalizes raw field values after the user is done
// editing them. Sanitizers run on blur, never per keystroke, so they may
// rewrite the value; every sanitizer is idempotent so a second pass over an
// already-clean value is a no-op. Parsing sanitizers (Number, Integer, URL)
// report "no value" with a false second return instead of an error.
package sanitize

// Package pattern holds the named regular expressions and primitive value
// coercions shared by rule evaluation, sanitization and input adapters. The
// expressions are intentionally pragmatic rather than spec-complete; the goal
// is fast per-keystroke feedback, not canonical parsing.
package pattern

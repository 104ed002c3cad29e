// Package security screens string values for injection and traversal shapes
// before the rest of the engine trusts them. The predicates are pure and
// deterministic; they run on every keystroke, so each one is a handful of
// precompiled expressions rather than a parser. False positives on ordinary
// prose (a bio containing the word SELECT, an apostrophe in a name) are a
// documented trade-off, and encoded payloads are a documented gap.
package security

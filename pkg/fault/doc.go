// Package fault guards compute spans that must not take the surrounding form
// down with them. It replaces inheritance-style error boundaries with plain
// wrappers: run the span, convert a panic or error into a structured Fault
// record, hand the caller a fallback value, and keep going.
package fault

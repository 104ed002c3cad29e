// Package session holds the per-field error state for one logical form. The
// session is the layer other code composes: forms run whole-set passes
// through it, field adapters record their blur-time failures in it, and both
// read back errors by field name. Every operation is synchronous and mutates
// state atomically per call; instances must not be shared across forms.
package session

// Package form provides the generic container that owns value, error and
// touched state for an arbitrary set of named fields. Submission wires a full
// validation pass in front of the caller's handler: the handler only ever
// sees values that passed every declared rule, and a handler fault is
// contained at the boundary instead of crashing the form.
package form

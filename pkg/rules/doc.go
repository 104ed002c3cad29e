// Package rules defines the declarative Rule descriptor and the evaluator
// that turns a value plus a rule into at most one human-readable failure
// message. Evaluation order is fixed (required, length, pattern, format,
// numeric bounds, custom) and short-circuits on the first failure, so a
// too-short password reports the length problem rather than the pattern one.
// Set collects named rules in declaration order for whole-form passes.
package rules

// Package field binds individual UI controls to the rule evaluator and
// security screen. The adapter follows the sanitize-on-blur policy: change
// events only mirror the raw value and give advisory feedback, while blur is
// where the value is normalized, re-validated and recorded. Controlled fields
// mirror a parent-owned value; uncontrolled fields own their own, seeded by a
// default.
package field

package formguard

import (
	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/session"
)

// Rule aliases the declarative per-field constraint descriptor.
type Rule = rules.Rule

// RuleSet aliases the ordered named rule collection.
type RuleSet = rules.Set

// FieldError aliases the per-field failure record.
type FieldError = session.FieldError

// Result aliases the whole-form validation outcome.
type Result = session.Result

// Notifier aliases the injected notification sink.
type Notifier = form.Notifier

// NewRules exposes the rule set constructor from the top-level module so
// quick-start callers only import one package.
func NewRules() *rules.Set {
	return rules.NewSet()
}

// NewForm constructs a form container for the declared rule set.
func NewForm(set *rules.Set, options ...form.Option) *form.Form {
	return form.New(set, options...)
}

// NewSession constructs a standalone validation session for callers that
// manage their own value state.
func NewSession() *session.Session {
	return session.New()
}

// NewField binds one named control to the evaluator and security screen.
func NewField(name string, options ...field.Option) *field.Adapter {
	return field.New(name, options...)
}

// Evaluate checks a single value against a rule and returns the failure
// message, or "" when the value passes.
func Evaluate(value any, rule Rule, label string) string {
	return rules.Evaluate(value, rule, label)
}

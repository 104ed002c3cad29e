package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formguard/pkg/definition"
	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// ErrAborted signals the user aborted input (e.g. Ctrl+C).
var ErrAborted = errors.New("runner: aborted")

// Option configures the runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver (the default talks to the
// terminal through survey).
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithNotifier forwards form notifications (submission failures,
// sanitization notices) to the supplied sink instead of printing them.
func WithNotifier(notifier form.Notifier) Option {
	return func(r *Runner) {
		if notifier != nil {
			r.notifier = notifier
		}
	}
}

// Runner walks a form definition field by field, prompting for each value and
// holding the answer to the same rules and security screen a UI-bound field
// would face. Prompt validators give per-attempt feedback; accepted values
// still pass through sanitize-on-blur before they land in the form.
type Runner struct {
	driver   PromptDriver
	notifier form.Notifier
}

// New constructs a Runner with the survey driver unless overridden.
func New(options ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run prompts for every declared field, then submits the collected values
// through the handler. The returned map holds the sanitized values; it is nil
// when the run was aborted or the final validation pass refused submission.
func (r *Runner) Run(ctx context.Context, doc definition.Document, handler form.SubmitHandler) (map[string]any, error) {
	set, err := doc.Rules()
	if err != nil {
		return nil, err
	}

	options := []form.Option{}
	if r.notifier != nil {
		options = append(options, form.WithNotifier(r.notifier))
	}
	frm := form.New(set, options...)

	for _, name := range set.Names() {
		rule, ok := set.Rule(name)
		if !ok {
			continue
		}
		value, err := r.promptField(ctx, frm, name, set.Label(name), rule, doc.Kind(name))
		if err != nil {
			return nil, err
		}
		frm.SetValue(name, value)
	}

	submitted := frm.Submit(ctx, handler)
	if !submitted {
		result := frm.Errors()
		for _, fe := range result.Errors {
			if infoErr := r.driver.Info(ctx, fe.Message); infoErr != nil {
				return nil, infoErr
			}
		}
		return nil, fmt.Errorf("runner: form %q did not pass validation", doc.Form)
	}
	return frm.Values(), nil
}

func (r *Runner) promptField(ctx context.Context, frm *form.Form, name, label string, rule rules.Rule, kind field.Kind) (any, error) {
	adapter := field.New(name,
		field.WithRule(rule),
		field.WithLabel(label),
		field.WithKind(kind),
		field.WithSession(frm.Session()),
	)
	merged := rules.Merge(rules.Safe(), rule)

	answer, err := r.driver.Input(ctx, InputConfig{
		Message: label,
		Validator: func(raw string) error {
			if msg := rules.Evaluate(raw, merged, label); msg != "" {
				return errors.New(msg)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	adapter.Change(answer)
	adapter.Blur()
	if adapter.HasError() {
		// The prompt validator already vetted the raw text; an error here
		// means sanitization stripped it down to something the rules reject.
		return nil, fmt.Errorf("runner: field %q: %s", name, adapter.Error())
	}
	return adapter.Value(), nil
}

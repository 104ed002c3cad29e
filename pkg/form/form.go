package form

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formguard/pkg/fault"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/session"
)

// SubmitHandler performs the external side effect of a successful submission,
// typically an API call. It is only invoked when every declared rule passes.
type SubmitHandler func(ctx context.Context, values map[string]any) error

// Option customises form construction.
type Option func(*Form)

// WithNotifier injects the notification sink used for submission failures.
func WithNotifier(notifier Notifier) Option {
	return func(f *Form) {
		if notifier != nil {
			f.notifier = notifier
		}
	}
}

// WithValues seeds the initial value map. Reset restores these values.
func WithValues(values map[string]any) Option {
	return func(f *Form) {
		f.initial = cloneValues(values)
	}
}

// WithFaultHandler observes structured fault records captured around the
// submit handler, in addition to the notifier message.
func WithFaultHandler(handler fault.Handler) Option {
	return func(f *Form) {
		f.onFault = handler
	}
}

// Form owns the canonical value/error/touched state for one set of named
// fields. Fields move one way from pristine to touched (blur or a submit
// attempt); only Reset clears touched flags. The form is synchronous and not
// safe for concurrent use; create one instance per mounted form.
type Form struct {
	set        *rules.Set
	session    *session.Session
	values     map[string]any
	touched    map[string]bool
	initial    map[string]any
	submitting bool
	notifier   Notifier
	onFault    fault.Handler
}

// New constructs a form for the declared rule set.
func New(set *rules.Set, options ...Option) *Form {
	if set == nil {
		set = rules.NewSet()
	}
	f := &Form{
		set:      set,
		session:  session.New(),
		touched:  make(map[string]bool),
		notifier: nopNotifier{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.values = cloneValues(f.initial)
	return f
}

// SetValue updates one field's value and immediately re-validates only that
// field against its declared rule. Other fields' errors and touched flags are
// untouched.
func (f *Form) SetValue(name string, value any) {
	f.values[name] = value
	if rule, ok := f.set.Rule(name); ok {
		f.session.ValidateOne(name, value, rule, f.set.Label(name))
	}
}

// Value returns the current value for a field.
func (f *Form) Value(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Values returns a copy of the current value map.
func (f *Form) Values() map[string]any {
	return cloneValues(f.values)
}

// SetTouched marks a field as interacted with. Touched is sticky: passing
// false is a no-op, only Reset clears the flag.
func (f *Form) SetTouched(name string, touched bool) {
	if touched {
		f.touched[name] = true
	}
}

// Touched reports whether a field has been blurred or been through a submit
// attempt.
func (f *Form) Touched(name string) bool {
	return f.touched[name]
}

// Error returns the active validation message for a field, if any.
func (f *Form) Error(name string) string {
	return f.session.Error(name)
}

// Errors snapshots the current error state.
func (f *Form) Errors() session.Result {
	return f.session.Result()
}

// Valid reports whether the form currently holds no errors.
func (f *Form) Valid() bool {
	return f.session.Valid()
}

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// Submit runs a full validation pass and, when every rule passes, invokes
// handler with a copy of the current values. Every declared field is marked
// touched so errors become visible. The return is true only when the handler
// was invoked. Handler errors and panics are captured at this boundary,
// reported through the notifier, and swallowed; they never populate field
// errors on their own. A Submit issued while one is already in flight is a
// no-op returning false.
func (f *Form) Submit(ctx context.Context, handler SubmitHandler) bool {
	if f.submitting {
		return false
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	for _, name := range f.set.Names() {
		f.touched[name] = true
	}

	result := f.session.ValidateAll(f.values, f.set)
	if !result.Valid {
		return false
	}
	if handler == nil {
		return true
	}

	values := f.Values()
	err := fault.Recover("form: submit", func() error {
		return handler(ctx, values)
	}, f.onFault)
	if err != nil {
		f.notifier.Notify(LevelError, fmt.Sprintf("Submission failed: %v", err))
	}
	return true
}

// Reset restores the initial values and clears every error and touched flag.
func (f *Form) Reset() {
	f.values = cloneValues(f.initial)
	f.touched = make(map[string]bool)
	f.session.Clear()
}

// Session exposes the underlying validation session so field adapters bound
// to this form can record their blur-time results in the same error state.
func (f *Form) Session() *session.Session {
	return f.session
}

// Rules exposes the declared rule set.
func (f *Form) Rules() *rules.Set {
	return f.set
}

// Notifier exposes the injected notification sink for collaborators that
// share the form's reporting channel.
func (f *Form) Notifier() Notifier {
	return f.notifier
}

func cloneValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

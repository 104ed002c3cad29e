package field

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/pattern"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/sanitize"
	"github.com/goliatone/go-formguard/pkg/session"
)

// Kind selects the type-specific sanitizer applied on blur.
type Kind string

const (
	KindText    Kind = "text"
	KindHTML    Kind = "html"
	KindMarkup  Kind = "markup"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindURL     Kind = "url"
)

// ChangeFunc receives every keystroke with the raw, unsanitized value and an
// advisory validity flag computed against the merged rule set.
type ChangeFunc func(value any, valid bool)

// SanitizedFunc is called when blur-time sanitization rewrote the value.
type SanitizedFunc func(from, to any)

// Option customises adapter construction.
type Option func(*Adapter)

// WithRule attaches the caller's rule. The mandatory security screen is
// merged in front of it; a screen failure short-circuits the caller's custom
// predicate.
func WithRule(rule rules.Rule) Option {
	return func(a *Adapter) {
		a.rule = rules.Merge(rules.Safe(), rule)
	}
}

// WithLabel overrides the display label (defaults to the humanized name).
func WithLabel(label string) Option {
	return func(a *Adapter) {
		if label != "" {
			a.label = label
		}
	}
}

// WithKind selects the sanitizer family for this field (defaults to text).
func WithKind(kind Kind) Option {
	return func(a *Adapter) {
		if kind != "" {
			a.kind = kind
		}
	}
}

// WithSession binds the adapter to a validation session so blur-time results
// land in the same error state the owning form reads.
func WithSession(s *session.Session) Option {
	return func(a *Adapter) {
		a.session = s
	}
}

// WithValue puts the adapter in controlled mode: the parent owns the value
// and the adapter only mirrors it. Edits are still reported upward through
// the change callback; the mirror exists so sanitize-on-blur has the latest
// text before the parent re-renders.
func WithValue(value any) Option {
	return func(a *Adapter) {
		a.controlled = true
		a.value = value
	}
}

// WithDefault seeds the internal value for uncontrolled fields.
func WithDefault(value any) Option {
	return func(a *Adapter) {
		if !a.controlled {
			a.value = value
		}
	}
}

// WithoutSanitize disables sanitize-on-blur for this field.
func WithoutSanitize() Option {
	return func(a *Adapter) {
		a.sanitizeOnBlur = false
	}
}

// OnChange registers the keystroke callback.
func OnChange(fn ChangeFunc) Option {
	return func(a *Adapter) {
		a.onChange = fn
	}
}

// OnSanitized registers the sanitization notice callback.
func OnSanitized(fn SanitizedFunc) Option {
	return func(a *Adapter) {
		a.onSanitized = fn
	}
}

// Adapter binds one named field to one UI control. It owns the
// controlled-vs-uncontrolled value split, clears stale errors while the user
// is typing, and performs sanitize-on-blur without disturbing in-progress
// keystrokes. Error and validity states are always derived, never stored
// redundantly.
type Adapter struct {
	name           string
	label          string
	kind           Kind
	rule           rules.Rule
	controlled     bool
	value          any
	touched        bool
	err            string
	sanitizeOnBlur bool
	session        *session.Session
	onChange       ChangeFunc
	onSanitized    SanitizedFunc
}

// New constructs an adapter for the named field. Without WithRule the field
// still carries the mandatory security screen.
func New(name string, options ...Option) *Adapter {
	a := &Adapter{
		name:           name,
		label:          rules.Label(name),
		kind:           KindText,
		rule:           rules.Safe(),
		sanitizeOnBlur: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// SetExternal pushes a new controlling value from the parent. The internal
// mirror is overwritten unconditionally.
func (a *Adapter) SetExternal(value any) {
	a.controlled = true
	a.value = value
}

// Change handles one keystroke: the mirror tracks the raw value, any
// previously displayed error is cleared so stale messages never show during
// active editing, and the change callback receives the raw value plus an
// advisory validity verdict.
func (a *Adapter) Change(value any) {
	a.value = value
	a.err = ""
	if a.session != nil {
		a.session.Clear(a.name)
	}
	if a.onChange != nil {
		valid := rules.Evaluate(value, a.rule, a.label) == ""
		a.onChange(value, valid)
	}
}

// Blur marks the field touched, sanitizes the value when enabled (adopting
// and announcing the cleaned value if it differs), then evaluates the merged
// rule set against the possibly sanitized value and surfaces the result.
func (a *Adapter) Blur() {
	a.touched = true

	if a.sanitizeOnBlur {
		clean, changed := sanitizeValue(a.kind, a.value)
		if changed {
			before := a.value
			a.value = clean
			if a.onSanitized != nil {
				a.onSanitized(before, clean)
			}
		}
	}

	a.err = rules.Evaluate(a.value, a.rule, a.label)
	if a.session != nil {
		a.session.Record(a.name, a.err)
	}
}

// Name returns the bound field name.
func (a *Adapter) Name() string {
	return a.name
}

// Value returns the current (mirrored) value.
func (a *Adapter) Value() any {
	return a.value
}

// Error returns the currently displayed message, if any.
func (a *Adapter) Error() string {
	return a.err
}

// Touched reports whether the field has been blurred.
func (a *Adapter) Touched() bool {
	return a.touched
}

// HasError reports whether an error should be shown: a message exists and the
// user has interacted with the field.
func (a *Adapter) HasError() bool {
	return a.err != "" && a.touched
}

// Valid reports positive confirmation: the field was interacted with and has
// no error. An untouched field is neither valid nor invalid.
func (a *Adapter) Valid() bool {
	return !a.HasError() && a.touched
}

func sanitizeValue(kind Kind, value any) (any, bool) {
	switch kind {
	case KindNumber:
		str, ok := pattern.CoerceString(value)
		if !ok || strings.TrimSpace(str) == "" {
			return value, false
		}
		num, ok := sanitize.Number(str)
		if !ok {
			return nil, true
		}
		return num, true
	case KindInteger:
		str, ok := pattern.CoerceString(value)
		if !ok || strings.TrimSpace(str) == "" {
			return value, false
		}
		num, ok := sanitize.Integer(str)
		if !ok {
			return nil, true
		}
		return num, true
	case KindURL:
		str, ok := pattern.CoerceString(value)
		if !ok {
			return value, false
		}
		if str == "" {
			return value, false
		}
		clean, ok := sanitize.URL(str)
		if !ok {
			return nil, true
		}
		return clean, clean != str
	case KindHTML:
		return sanitizeString(value, sanitize.HTML)
	case KindMarkup:
		return sanitizeString(value, sanitize.Markup)
	default:
		return sanitizeString(value, sanitize.String)
	}
}

func sanitizeString(value any, fn func(string) string) (any, bool) {
	str, ok := pattern.CoerceString(value)
	if !ok {
		return value, false
	}
	clean := fn(str)
	return clean, clean != str
}

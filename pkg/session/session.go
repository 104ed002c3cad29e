package session

import "github.com/goliatone/go-formguard/pkg/rules"

// FieldError pairs a field name with its current failure message. A field has
// at most one active error; a fresh validation replaces any prior entry.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result reports the outcome of a whole-form pass. Valid is always derived
// from the error list, never stored independently.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Session tracks per-field errors across a changing set of fields. It is the
// reusable building block forms and adapters compose: synchronous, owned by
// one logical form, and never a package-level singleton. It is not safe for
// concurrent use.
type Session struct {
	errors []FieldError
}

// New constructs an empty session.
func New() *Session {
	return &Session{}
}

// ValidateAll evaluates every field declared in set against the supplied
// values and replaces the entire error list with the fresh failures. The
// error list follows the set's declaration order.
func (s *Session) ValidateAll(values map[string]any, set *rules.Set) Result {
	fresh := make([]FieldError, 0, set.Len())
	for _, name := range set.Names() {
		rule, ok := set.Rule(name)
		if !ok {
			continue
		}
		if msg := rules.Evaluate(values[name], rule, set.Label(name)); msg != "" {
			fresh = append(fresh, FieldError{Field: name, Message: msg})
		}
	}
	s.errors = fresh
	return s.Result()
}

// ValidateOne evaluates a single field, removes any prior error recorded for
// it, stores the new failure if there is one, and returns the message.
func (s *Session) ValidateOne(name string, value any, rule rules.Rule, label string) string {
	msg := rules.Evaluate(value, rule, label)
	s.remove(name)
	if msg != "" {
		s.errors = append(s.errors, FieldError{Field: name, Message: msg})
	}
	return msg
}

// Record stores an externally produced failure for a field, replacing any
// prior entry. An empty message clears the field instead.
func (s *Session) Record(name, message string) {
	s.remove(name)
	if message != "" {
		s.errors = append(s.errors, FieldError{Field: name, Message: message})
	}
}

// Clear removes the errors for the named fields, or every error when called
// with no arguments.
func (s *Session) Clear(names ...string) {
	if len(names) == 0 {
		s.errors = nil
		return
	}
	for _, name := range names {
		s.remove(name)
	}
}

// Error returns the current message for a field, or "" when the field is
// clean.
func (s *Session) Error(name string) string {
	for _, fe := range s.errors {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// Result snapshots the current error state. The returned slice is a copy.
func (s *Session) Result() Result {
	errs := append([]FieldError(nil), s.errors...)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Valid reports whether the session currently holds no errors.
func (s *Session) Valid() bool {
	return len(s.errors) == 0
}

func (s *Session) remove(name string) {
	kept := s.errors[:0]
	for _, fe := range s.errors {
		if fe.Field != name {
			kept = append(kept, fe)
		}
	}
	s.errors = kept
}

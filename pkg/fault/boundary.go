package fault

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Fault is the structured record produced when a guarded span fails. Err is
// the recovered panic (wrapped) or the error the span returned; Stack is only
// populated for panics.
type Fault struct {
	Op    string
	Err   error
	Stack []byte
	At    time.Time
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f Fault) Unwrap() error {
	return f.Err
}

// Handler observes faults as they are captured. Handlers must not panic.
type Handler func(Fault)

// Recover runs fn and converts a panic or returned error into a Fault
// delivered to onFault. The fault's error is also returned so callers can
// branch on it; a nil return means the span completed cleanly.
func Recover(op string, fn func() error, onFault Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = capture(op, recoveredError(r), debug.Stack(), onFault)
		}
	}()
	if runErr := fn(); runErr != nil {
		return capture(op, runErr, nil, onFault)
	}
	return nil
}

// Value runs fn and returns its result, substituting fallback when the span
// panics or returns an error. The failure is reported through onFault; the
// caller always receives a usable value.
func Value[T any](op string, fallback T, fn func() (T, error), onFault Handler) (out T) {
	out = fallback
	defer func() {
		if r := recover(); r != nil {
			capture(op, recoveredError(r), debug.Stack(), onFault)
			out = fallback
		}
	}()
	result, err := fn()
	if err != nil {
		capture(op, err, nil, onFault)
		return fallback
	}
	return result
}

func capture(op string, err error, stack []byte, onFault Handler) error {
	fault := Fault{Op: op, Err: err, Stack: stack, At: time.Now()}
	if onFault != nil {
		onFault(fault)
	}
	return fault
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

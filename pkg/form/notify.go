package form

// Level classifies a notification for the sink that displays it.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives user-facing notifications from the form (submission
// failures, sanitization notices). It is an injected capability, not an
// ambient event bus: each form owns exactly the sink it was constructed with,
// and the default sink drops everything.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) {
	f(level, message)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Level, string) {}

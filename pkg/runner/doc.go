// Package runner drives a form definition through interactive terminal
// prompts. It is a thin consumer of the engine: every answer goes through the
// same rule evaluation, security screen and sanitize-on-blur path a UI-bound
// control would use, and the collected values only leave the runner after a
// full submit-time validation pass.
package runner

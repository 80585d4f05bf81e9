package orchestrator

import "errors"

var (
	// ErrRecursionLimit is the terminal error for a run that exhausted its
	// hop budget without reaching a direct answer.
	ErrRecursionLimit = errors.New("recursion limit exceeded")

	// ErrPersistence wraps store failures. A run that ends with this error
	// is not durably recorded and callers must not assume the history was
	// saved.
	ErrPersistence = errors.New("failed to persist session")
)

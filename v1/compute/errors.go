package compute

import "errors"

// Common compute errors
var (
	// ErrInvalidInput is returned when a request is empty or malformed.
	// It is surfaced to the caller directly and never triggers fallback.
	ErrInvalidInput = errors.New("compute: invalid input")

	// ErrNetworkUnavailable is returned on transport-level failure while
	// reaching the gateway.
	ErrNetworkUnavailable = errors.New("compute: network unavailable")

	// ErrTaskFailed is returned when the network reports an explicit task
	// failure.
	ErrTaskFailed = errors.New("compute: task failed")

	// ErrPollTimeout is returned when the poll budget is exhausted without
	// the task reaching a terminal status.
	ErrPollTimeout = errors.New("compute: poll timeout")
)

// IsInvalidInputError checks if the error is an invalid-input error.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNetworkUnavailableError checks if the error is a transport-level failure.
func IsNetworkUnavailableError(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable)
}

// IsTaskFailedError checks if the error is an explicit task failure.
func IsTaskFailedError(err error) bool {
	return errors.Is(err, ErrTaskFailed)
}

// IsPollTimeoutError checks if the error is a poll budget exhaustion.
func IsPollTimeoutError(err error) bool {
	return errors.Is(err, ErrPollTimeout)
}

// isFallbackTrigger reports whether the facade should substitute the local
// fallback embedder for this error. Invalid input and caller cancellation
// are the only failures that surface instead.
func isFallbackTrigger(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTaskFailed) ||
		errors.Is(err, ErrPollTimeout)
}

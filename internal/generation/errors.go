package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGeneratorUnavailable is returned when no generator is configured.
	// This is a user-correctable condition, distinct from call failures.
	ErrGeneratorUnavailable = errors.New("generator not configured")

	// ErrGenerationFailed is returned when the external generator call fails
	ErrGenerationFailed = errors.New("failed to generate task plan")

	// ErrUnparseable is returned when no valid JSON structure can be found
	// in the generator output
	ErrUnparseable = errors.New("no parseable task plan in generator output")

	// ErrInvalidPlan is returned when a parsed candidate is not an object
	// and therefore cannot be coerced into a task plan
	ErrInvalidPlan = errors.New("task plan candidate has invalid shape")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during plan generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// UnparseableError carries the original raw generator text for diagnostics
// when extraction fails. All parse failures funnel through this one type
// rather than raising ad-hoc errors per call site.
type UnparseableError struct {
	// Raw is the unmodified generator output that could not be parsed.
	Raw string
}

// Error implements the error interface for UnparseableError.
// The raw text is truncated so a misbehaving generator cannot flood logs.
func (e *UnparseableError) Error() string {
	raw := e.Raw
	if len(raw) > 200 {
		raw = raw[:200] + "..."
	}
	return fmt.Sprintf("%v: %q", ErrUnparseable, raw)
}

// Unwrap returns ErrUnparseable to support errors.Is checks.
func (e *UnparseableError) Unwrap() error {
	return ErrUnparseable
}

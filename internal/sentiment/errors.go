package sentiment

import (
	"fmt"
	"strings"
)

// TransportError means the provider could not be reached or refused the request.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: provider request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError means the provider answered but the answer is not a valid verdict.
type ValidationError struct {
	Provider string
	Problems []string
	Raw      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid verdict: %s", e.Provider, strings.Join(e.Problems, "; "))
}

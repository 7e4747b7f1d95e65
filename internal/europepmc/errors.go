package europepmc

import "fmt"

// Error represents a failed search for a single journal.
type Error struct {
	Journal string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("europe pmc search failed for %s: %s: %v", e.Journal, e.Message, e.Cause)
	}
	return fmt.Sprintf("europe pmc search failed for %s: %s", e.Journal, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError is returned when a destination lookup exhausts the owner
// type's hierarchy without finding a registration.
type NotFoundError struct {
	// Name is the requested destination name.
	Name string

	// TypeName is the display name of the type lookup started from.
	TypeName string

	// Available lists every destination visible for that type, so
	// callers can produce actionable diagnostics.
	Available []string
}

func (e *NotFoundError) Error() string {
	avail := append([]string(nil), e.Available...)
	sort.Strings(avail)
	return fmt.Sprintf(
		"couldn't find the destination [%s] for the given type [%s]; the following were available [%s]",
		e.Name, e.TypeName, strings.Join(avail, ", "),
	)
}

// IsNotFound returns the *NotFoundError in err's chain, if any.
func IsNotFound(err error) (*NotFoundError, bool) {
	var e *NotFoundError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// TriesExceededError is returned by the default pre-navigate hook when a
// destination could not be reached within the retry bound.
type TriesExceededError struct {
	// Name is the destination that kept failing.
	Name string

	// Cause is the last action error observed before the bound was hit,
	// if any. It does not change the error kind; it is chained purely
	// for diagnostics.
	Cause error
}

func (e *TriesExceededError) Error() string {
	return fmt.Sprintf("navigation failed to reach [%s] in the specified tries", e.Name)
}

func (e *TriesExceededError) Unwrap() error {
	return e.Cause
}

// IsTriesExceeded returns the *TriesExceededError in err's chain, if any.
func IsTriesExceeded(err error) (*TriesExceededError, bool) {
	var e *TriesExceededError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package exceptions

import (
	"fmt"
	"time"
)

// DateRangeError is the only failure surfaced to the caller of the aggregate
// call: the upstream feeds expose no historical or future query surface.
type DateRangeError struct {
	Requested time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("requested date %s is not today; the operator feeds only publish the current day", e.Requested.Format("2006-01-02"))
}

// SourceFetchError wraps a transport or decode failure for one operator. It is
// logged and converted into an empty contribution, never propagated past the
// adapter boundary.
type SourceFetchError struct {
	Operator string
	Err      error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("could not fetch %s flights: %v", e.Operator, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

// ParseFieldError marks a malformed field or document fragment. Handled at the
// smallest scope that can absorb it: a bad time yields a nil date, a row
// without a flight number is dropped.
type ParseFieldError struct {
	Field string
	Err   error
}

func (e *ParseFieldError) Error() string {
	return fmt.Sprintf("could not parse field %s: %v", e.Field, e.Err)
}

func (e *ParseFieldError) Unwrap() error {
	return e.Err
}

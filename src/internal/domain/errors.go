package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrConflict = errors.New("Operation conflicts with current state")
var ErrDuplicateCode = errors.New("Code already exists")
var ErrParentNotFound = errors.New("Parent not found")
var ErrEntryPosted = errors.New("Journal entry already posted")
var ErrYearClosed = errors.New("Fiscal year is closed")
var ErrNoOpenYear = errors.New("No open fiscal year covers the entry date")

// ValidationError collects field-level problems found before any write.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) OrNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

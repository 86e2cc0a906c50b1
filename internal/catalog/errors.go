package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCourseNotFound is matched by every NotFoundError.
var ErrCourseNotFound = errors.New("course not found")

// NotFoundError is returned by operations that require a single course to exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCourseNotFound
}

// DuplicateIDError reports a course id that appears more than once.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate course id %q", e.ID)
}

// DataFormatError reports a malformed catalog source. No catalog is produced
// when Load returns one.
type DataFormatError struct {
	Problems []string
}

func (e *DataFormatError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "malformed catalog"
	case 1:
		return "malformed catalog: " + e.Problems[0]
	default:
		return fmt.Sprintf("malformed catalog (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
	}
}

// newDataFormatError flattens validation errors into a DataFormatError.
func newDataFormatError(errs []error) *DataFormatError {
	problems := make([]string, 0, len(errs))
	for _, err := range errs {
		problems = append(problems, err.Error())
	}
	return &DataFormatError{Problems: problems}
}

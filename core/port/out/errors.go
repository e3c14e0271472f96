package out

import (
	"errors"
	"fmt"
)

// ErrDuplicate is matched by every DuplicateError.
var ErrDuplicate = errors.New("duplicate entry")

// DuplicateError reports a unique constraint violation on Field.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

package color

import "fmt"

// ValidationError reports an input that violates a constructor or
// generator contract: a channel outside its range, a non-positive
// color count, an unknown harmony type or temperature name.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

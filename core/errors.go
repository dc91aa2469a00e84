package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned before anything reaches the native SDK
	// when an argument fails validation.
	ErrInvalidParam = errors.New("invalid param")

	// ErrUnsupported is returned by getters the current platform's SDK
	// does not implement.
	ErrUnsupported = errors.New("not supported on this platform")
)

// ParamError names the operation and the argument that failed validation.
type ParamError struct {
	Op    string
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %s must be a non-empty string", e.Op, ErrInvalidParam, e.Param)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}

// IsInvalidParam reports whether err came from argument validation.
func IsInvalidParam(err error) bool {
	return errors.Is(err, ErrInvalidParam)
}

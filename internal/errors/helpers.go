package errors

import (
	"errors"
)

// As is a wrapper around errors.As for our Error type.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var custom *Error
	if errors.As(err, &custom) {
		return custom.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error.
func GetMeta(err error) map[string]any {
	var custom *Error
	if errors.As(err, &custom) {
		return custom.Meta
	}
	return nil
}

// IsInvalidArgument checks if an error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsFailedPrecondition checks if an error is a failed precondition error.
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool {
	return err != nil && GetCode(err) == CodeInternal
}

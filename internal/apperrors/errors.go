package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a negative or otherwise malformed monetary or quantity input.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrEmptyEntrySet indicates a weekly record submitted without any labour entries.
var ErrEmptyEntrySet = errors.New("weekly record must contain at least one entry")

// ErrForbidden indicates the caller's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrStageOutOfOrder indicates an approval attempted before its prerequisite stage.
var ErrStageOutOfOrder = errors.New("approval stage out of order")

// ErrNotApproved indicates a payment attempted against a unit that is not fully approved.
var ErrNotApproved = errors.New("payable unit is not approved")

// ErrOverpaymentRejected indicates a payment that would exceed the unit's final amount.
var ErrOverpaymentRejected = errors.New("payment exceeds outstanding balance")

// ErrUnauthorized indicates a bad deletion secret.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDuplicateIdentifier indicates a display number or payment id collision that was not resolved.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// ErrConflict indicates the record changed underneath the caller (version mismatch).
var ErrConflict = errors.New("concurrent modification")

// ErrHasDependents indicates a delete refused because dependent records still exist.
var ErrHasDependents = errors.New("record has dependent records")

// AppError carries an HTTP status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// clientErrors are the kinds caused by the caller's input or permissions.
var clientErrors = []error{
	ErrNotFound, ErrValidation, ErrDuplicate, ErrInvalidAmount, ErrEmptyEntrySet,
	ErrForbidden, ErrStageOutOfOrder, ErrNotApproved, ErrOverpaymentRejected,
	ErrUnauthorized, ErrConflict, ErrHasDependents,
}

// IsClientError reports whether err is one of the caller-caused kinds. These
// must be surfaced to the caller rather than retried.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

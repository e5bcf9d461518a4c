package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// generalError is reported as ErrGeneral and keeps the error it replaces.
type generalError struct {
	cause error
}

func (e generalError) Error() string {
	return ErrGeneral.Error()
}

func (e generalError) Is(target error) bool {
	return target == ErrGeneral
}

func (e generalError) Unwrap() error {
	return e.cause
}

// Cause returns the error that was replaced by ErrGeneral. Other errors are
// returned as they are.
func Cause(err error) error {
	var g generalError
	if errors.As(err, &g) {
		return g.cause
	}

	return err
}

// Envelope errors
var (
	ErrTitleEmpty        = errors.New("the title must not be empty")
	ErrBudgetNegative    = errors.New("the budget must be a number greater than or equal to zero")
	ErrInsufficientFunds = errors.New("insufficient funds in source envelope")
)

// Transaction errors
var (
	ErrAmountNotPositive = errors.New("the amount must be a number greater than zero")
	ErrEnvelopeIDMissing = errors.New("the envelopeId must be set")
)

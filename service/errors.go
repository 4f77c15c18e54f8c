package service

import "errors"

var (
	ErrMissingFields       = errors.New("please complete all fields")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrEmptyDescription    = errors.New("please describe the incident")
	ErrUnknownCategory     = errors.New("unknown incident category")
	ErrUnknownServiceType  = errors.New("unknown service category")
	ErrUnknownFilter       = errors.New("unknown payment filter")
	ErrEmptyPlate          = errors.New("please enter a plate")
	ErrServiceNotFound     = errors.New("service not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrReceiptNotAvailable = errors.New("receipt not available")
)

// ValidationError is a user-facing form error. Fields lists the offending
// inputs when known.
type ValidationError struct {
	Reason error
	Fields []string
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func invalid(reason error, fields ...string) error {
	return &ValidationError{Reason: reason, Fields: fields}
}

// IsValidation reports whether err is a user-facing validation error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

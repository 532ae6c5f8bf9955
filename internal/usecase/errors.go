package usecase

import "errors"

const (
	CodeLeadNotFound          = "LEAD_NOT_FOUND"
	CodeInvalidSortField      = "INVALID_SORT_FIELD"
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeLeadSourceUnavailable = "LEAD_SOURCE_UNAVAILABLE"
	CodeRenderFailed          = "RENDER_FAILED"
)

// DomainError is the caller's fault and maps to a 4xx.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps an infrastructure failure and maps to a 5xx.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

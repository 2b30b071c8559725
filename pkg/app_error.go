package pkg

import "fmt"

// AppError is the error shape handlers translate use-case failures into.
//
// Code is an internal, machine-friendly identifier (used in logs and metrics);
// only Message and Details reach the client.
type AppError struct {
	Code       string
	Message    string
	Details    any
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON envelope written for every failed request.
type HTTPError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy carrying client-visible details.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError never includes the wrapped error: internal causes stay in the logs.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Details: e.Details}
}

package error

import "net/http"

// GenericError lets handlers and the recovery middleware map typed errors to
// an HTTP status and a stable error code.
type GenericError interface {
	error
	ErrCode() string
	StatusCode() int
}

type ValidationError string

func (err ValidationError) Error() string {
	return string(err)
}

func (err ValidationError) ErrCode() string {
	return "VALIDATION_ERROR"
}

func (err ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

type VerificationError string

func (err VerificationError) Error() string {
	return string(err)
}

func (err VerificationError) ErrCode() string {
	return "VERIFICATION_FAILED"
}

func (err VerificationError) StatusCode() int {
	return http.StatusForbidden
}

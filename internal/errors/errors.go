package errors

import (
	"errors"
	"net/http"
)

// Business codes carried in the response envelope. Transport-level failures
// (validation, auth, rate limit) map to matching HTTP statuses; domain-rule
// failures are reported with HTTP 200 and a distinguishing code so existing
// clients keep working.
const (
	CodeSuccess          = 200
	CodeValidationFailed = 400
	CodeUnauthorized     = 401
	CodeForbidden        = 403

	CodeUserNotFound      = 1001
	CodeUserAlreadyExists = 1002
	CodePasswordIncorrect = 1003
	CodeUserDisabled      = 1004

	CodeVerificationCodeError  = 2001
	CodeVerificationSendFailed = 2004

	CodeTokenInvalid = 3001

	CodeRateLimitExceeded = 4003

	CodeBusinessError = 6001
)

// Error is the single error type the service layer returns. The HTTP boundary
// translates it into the response envelope exactly once.
type Error struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func New(httpStatus, code int, message string) *Error {
	return &Error{HTTPStatus: httpStatus, Code: code, Message: message}
}

// Business wraps a domain-rule violation. Reported with HTTP 200 plus a
// business code, never a transport error.
func Business(message string) *Error {
	return New(http.StatusOK, CodeBusinessError, message)
}

func BusinessCode(code int, message string) *Error {
	return New(http.StatusOK, code, message)
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, CodeValidationFailed, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

var (
	// ErrInvalidToken deliberately collapses malformed, expired and
	// badly-signed tokens into one rejection class.
	ErrInvalidToken = New(http.StatusUnauthorized, CodeTokenInvalid, "invalid token")

	ErrRateLimitExceeded = New(http.StatusTooManyRequests, CodeRateLimitExceeded, "verification code requested too frequently")

	ErrVerificationCodeError = BusinessCode(CodeVerificationCodeError, "verification code incorrect or expired")

	ErrUserDisabled = BusinessCode(CodeUserDisabled, "user disabled")

	// ErrEmailOrPasswordIncorrect is intentionally generic so the email
	// login path cannot be used to enumerate accounts.
	ErrEmailOrPasswordIncorrect = Business("email or password incorrect")

	ErrRegistrationDisabled = Business("username registration is disabled")
	ErrPasswordMismatch     = Business("passwords do not match")
	ErrUsernameTaken        = BusinessCode(CodeUserAlreadyExists, "username already exists")
	ErrEmailTaken           = BusinessCode(CodeUserAlreadyExists, "email already registered")
	ErrUserNotFound         = BusinessCode(CodeUserNotFound, "user not found")
	ErrPasswordIncorrect    = BusinessCode(CodePasswordIncorrect, "password incorrect")
	ErrLoginFailed          = Business("login failed")
	ErrRefreshFailed        = Business("refresh failed, please sign in again")
	ErrRegistrationFailed   = Business("registration failed, please try again later")
	ErrVerificationSend     = BusinessCode(CodeVerificationSendFailed, "failed to send verification code")
)

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

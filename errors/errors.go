package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

type ErrorCode string

const (
	ErrValidation             ErrorCode = "VALIDATION_ERROR"
	ErrMissingParameters      ErrorCode = "MISSING_PARAMETERS"
	ErrInvalidAmount          ErrorCode = "INVALID_AMOUNT"
	ErrInvalidTokenPair       ErrorCode = "INVALID_TOKEN_PAIR"
	ErrInvalidTransactionHash ErrorCode = "INVALID_TRANSACTION_HASH"
	ErrInvalidTimeout         ErrorCode = "INVALID_TIMEOUT"
	ErrTokenNotFound          ErrorCode = "TOKEN_NOT_FOUND"
	ErrPairNotSupported       ErrorCode = "PAIR_NOT_SUPPORTED"
	ErrNotFound               ErrorCode = "NOT_FOUND"
	ErrMissingAPIKey          ErrorCode = "MISSING_API_KEY"
	ErrInvalidAPIKey          ErrorCode = "INVALID_API_KEY"
	ErrRateLimitExceeded      ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrTimeout                ErrorCode = "TIMEOUT"
	ErrInternal               ErrorCode = "INTERNAL_ERROR"
)

// FieldError carries a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	HTTPCode  int          `json:"-"`
	Status    string       `json:"status"`
	Code      ErrorCode    `json:"code"`
	Message   string       `json:"message"`
	Details   []FieldError `json:"details,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	Internal  string       `json:"-"`
}

func (a AppError) Error() string {
	return fmt.Sprintf("%s: %s", a.Code, a.Message)
}

func (a AppError) Serialize(w http.ResponseWriter) {
	a.Status = "error"
	a.Timestamp = time.Now().UTC()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(a.HTTPCode)
	_ = json.NewEncoder(w).Encode(a)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// HandleBindError translates request binding and validation failures into
// the uniform error envelope. Fields carrying the dedicated format tags
// keep their dedicated machine codes.
func HandleBindError(err error) AppError {
	if errors.As(err, &AppError{}) {
		return AsAppError(err)
	}

	if v, ok := err.(validator.ValidationErrors); ok {
		details := make([]FieldError, 0, len(v))
		for _, fe := range v {
			details = append(details, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}

		return AppError{
			HTTPCode: http.StatusBadRequest,
			Code:     codeForViolation(v[0]),
			Message:  details[0].Message,
			Details:  details,
			Internal: err.Error(),
		}
	}

	if Is(err, io.EOF) {
		return NewValidationError("No request body")
	}

	vErr := NewValidationError("invalid request received")
	vErr.Internal = err.Error()

	return vErr
}

func codeForViolation(fe validator.FieldError) ErrorCode {
	switch fe.ActualTag() {
	case "required":
		return ErrMissingParameters
	case "txhash":
		return ErrInvalidTransactionHash
	case "decimal":
		return ErrInvalidAmount
	}
	if fe.Field() == "timeout" {
		return ErrInvalidTimeout
	}
	return ErrValidation
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "decimal":
		return fmt.Sprintf("%s must be an unsigned decimal number", fe.Field())
	case "txhash":
		return fmt.Sprintf("%s must be a 0x-prefixed 64 hex digit transaction hash", fe.Field())
	case "hexaddr":
		return fmt.Sprintf("%s must be a 0x-prefixed hex address", fe.Field())
	case "uintstr":
		return fmt.Sprintf("%s must be an unsigned integer string", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of values: (%s), value received: %v", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than (%s), value received: %v", fe.Field(), fe.Param(), fe.Value())
	default:
		msg := fmt.Sprintf("Validation failed on field { %s }, Condition: %s", fe.Field(), fe.ActualTag())
		if fe.Param() != "" {
			msg += fmt.Sprintf("{ %s }", fe.Param())
		}
		return msg
	}
}

func NewValidationError(msg string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrValidation,
		Message:  msg,
	}
}

func NewInvalidAmountError(msg string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrInvalidAmount,
		Message:  msg,
	}
}

func NewInvalidTokenPairError() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrInvalidTokenPair,
		Message:  "From and to tokens must be different",
	}
}

func NewInvalidTimeoutError() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrInvalidTimeout,
		Message:  "Timeout must be between 1 and 600 seconds",
	}
}

func NewTokenNotFoundError(symbol string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrTokenNotFound,
		Message:  fmt.Sprintf("Token not found or not supported: %s", symbol),
	}
}

func NewPairNotSupportedError(from, to string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrPairNotSupported,
		Message:  fmt.Sprintf("Trading pair not supported: %s/%s", from, to),
	}
}

func NewNotFoundError(msg string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrNotFound,
		Message:  msg,
	}
}

func NewMissingAPIKeyError() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrMissingAPIKey,
		Message:  "API key is required",
	}
}

func NewInvalidAPIKeyError() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrInvalidAPIKey,
		Message:  "Invalid API key",
	}
}

func NewRateLimitError() AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrRateLimitExceeded,
		Message:  "Too many requests from this IP, please try again later.",
	}
}

func NewTimeoutError(msg string) AppError {
	return AppError{
		HTTPCode: http.StatusRequestTimeout,
		Code:     ErrTimeout,
		Message:  msg,
	}
}

func NewFatalError(err error) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrInternal,
		Message:  "Oops! something happened on our end.",
		Internal: err.Error(),
	}
}

func NewUnknownError(err any) AppError {
	return NewFatalError(fmt.Errorf("%v", err))
}

func AsAppError(err error) AppError {
	apperr := new(AppError)
	if errors.As(err, apperr) {
		return *apperr
	}
	return NewFatalError(err)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession  = errors.New("no session")
	ErrValidation = errors.New("validation failed")

	// ErrSessionRejected - backend не принял токен для заявленной роли.
	ErrSessionRejected = errors.New("session rejected by backend")
)

// ValidationError - ошибка клиентской валидации формы. Возникает до любого сетевого вызова.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// BackendError - backend ответил не 2xx.
// Message - поле message из JSON-ответа, Body - сырой текст ответа.
type BackendError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// FailureMessage выбирает самое точное сообщение: JSON message, затем сырой текст ответа, затем fallback.
func FailureMessage(err error, fallback string) string {
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		return fallback
	}
	if backendErr.Message != "" {
		return backendErr.Message
	}
	if backendErr.Body != "" {
		return backendErr.Body
	}
	return fallback
}

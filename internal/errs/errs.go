// Package errs содержит таксономию ошибок клиента и сервера инвентаря.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation — некорректный ввод, обнаруженный до любого сетевого вызова.
	ErrValidation = errors.New("validation error")
	// ErrAuth — пустые или неверные учётные данные, отсутствие сохранённых данных.
	ErrAuth = errors.New("auth error")
	// ErrSessionExpired — сервер ответил 401 на авторизованный вызов.
	ErrSessionExpired = errors.New("session expired")
	// ErrTransport — ответ не получен (ошибка соединения).
	ErrTransport = errors.New("transport error")
	// ErrDecode — тело ответа не соответствует ожидаемой схеме.
	ErrDecode = errors.New("decode error")
	// ErrApplication — любой ответ не-2xx, кроме 401.
	ErrApplication = errors.New("application error")
)

// StatusError описывает ответ сервера с кодом не-2xx (кроме 401).
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

// Is позволяет проверять StatusError через errors.Is(err, ErrApplication).
func (e *StatusError) Is(target error) bool {
	return target == ErrApplication
}

// Validation оборачивает сообщение в ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

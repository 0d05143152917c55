package usecase

import (
	"errors"
	"fmt"
)

// usecaseの失敗はHTTPステータスつきで返し、handlerはそのまま写す。
// ここに無いerrorは500として扱う（内部情報は漏らさない）。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Package failure carries the HTTP status a service error should surface with.
// Anything that is not a *Failure maps to 500.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidMonthParam = New(http.StatusBadRequest, "month must use the YYYY-MM format")
	InvalidGoalParam  = New(http.StatusBadRequest, "goal must be a number between 0 and 100")
	EmptyImport       = New(http.StatusBadRequest, "file is empty or unreadable")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches another *Failure with the same code and message, so predefined
// failures can be checked with errors.Is after wrapping.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest turns a decoding or validation error into a 400. Nil stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func BadRequestf(format string, args ...any) error {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// NotFound reports a missing entity, e.g. NotFound("booking") reads "booking not found".
func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName+" not found")
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

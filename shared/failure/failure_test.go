package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"stayledger/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidMonthParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidGoalParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.EmptyImport.Code)
	assert.Equal(t, "file is empty or unreadable", failure.EmptyImport.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, message: "bad body"},
		{name: "bad request from string", err: failure.BadRequestFromString("no header"), code: http.StatusBadRequest, message: "no header"},
		{name: "bad request formatted", err: failure.BadRequestf("%d row(s) skipped", 3), code: http.StatusBadRequest, message: "3 row(s) skipped"},
		{name: "not found", err: failure.NotFound("booking"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("unit already exists"), code: http.StatusConflict, message: "unit already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("parsing month: %w", failure.InvalidMonthParam)

	assert.ErrorIs(t, wrapped, failure.InvalidMonthParam)
	assert.NotErrorIs(t, wrapped, failure.InvalidGoalParam)
	assert.ErrorIs(t, failure.NotFound("unit"), failure.New(http.StatusNotFound, "unit not found"))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: failure.NotFound("x"), expected: http.StatusNotFound},
		{name: "wrapped failure error", input: fmt.Errorf("loading: %w", failure.BadRequestFromString("x")), expected: http.StatusBadRequest},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

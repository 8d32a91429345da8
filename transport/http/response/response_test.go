package response_test

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		wantCode int
		wantBody string
	}{
		{
			name:     "data",
			write:    func(w http.ResponseWriter) { response.WithJSON(w, http.StatusCreated, map[string]int{"added": 2}) },
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"added":2}}`,
		},
		{
			name:     "message",
			write:    func(w http.ResponseWriter) { response.WithMessage(w, http.StatusOK, "OK") },
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK"}`,
		},
		{
			name:     "failure keeps its code",
			write:    func(w http.ResponseWriter) { response.WithError(w, failure.NotFound("booking")) },
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"booking not found"}`,
		},
		{
			name:     "plain error is internal",
			write:    func(w http.ResponseWriter) { response.WithError(w, errors.New("store down")) },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"store down"}`,
		},
		{
			name:     "unencodable payload",
			write:    func(w http.ResponseWriter) { response.WithJSON(w, http.StatusOK, math.Inf(1)) },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to encode response"}`,
		},
		{
			name:     "rate limited",
			write:    response.WithRequestLimitExceeded,
			wantCode: http.StatusTooManyRequests,
			wantBody: `{"message":"REQUEST LIMIT EXCEEDED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithText(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithText(rec, http.StatusOK, constant.ContentTypeCSV, "bookings_template.csv", "booking_id,guest_name\n")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeCSV, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="bookings_template.csv"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "booking_id,guest_name\n", rec.Body.String())
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newLimiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name           string
		count          int64
		cacheErr       error
		wantStatus     int
		wantRemaining  string
		wantHeadersSet bool
	}{
		{name: "first request", count: 1, wantStatus: http.StatusOK, wantRemaining: "1", wantHeadersSet: true},
		{name: "at the limit", count: 2, wantStatus: http.StatusOK, wantRemaining: "0", wantHeadersSet: true},
		{name: "over the limit", count: 3, wantStatus: http.StatusTooManyRequests},
		{name: "cache unavailable", cacheErr: errors.New("connection refused"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cacheMock := mocks.NewMockCache(ctrl)

			cacheMock.EXPECT().
				Incr(gomock.Any(), "ratelimit:10.0.0.1:test-agent", time.Minute).
				Return(tt.count, tt.cacheErr)

			m := NewAppMiddleware(otelMocks.NewOtel(), newLimiterConfig(true), cacheMock)

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			rec := httptest.NewRecorder()
			m.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantHeadersSet {
				assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
				assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
				assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
			} else {
				assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
			}

			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Contains(t, rec.Body.String(), constant.ResponseErrorRequestLimitExceeded)
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mocks.NewMockCache(ctrl)

	m := NewAppMiddleware(otelMocks.NewOtel(), newLimiterConfig(false), cacheMock)

	rec := httptest.NewRecorder()
	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClientIP(t *testing.T) {
	m := &appMiddleware{}

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{constant.RequestHeaderForwardedFor: "1.1.1.1, 2.2.2.2"}, want: "1.1.1.1"},
		{name: "single forwarded", headers: map[string]string{constant.RequestHeaderForwardedFor: " 3.3.3.3 "}, want: "3.3.3.3"},
		{name: "real ip", headers: map[string]string{constant.RequestHeaderRealIP: "4.4.4.4"}, want: "4.4.4.4"},
		{name: "remote addr without port", want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.want, m.getClientIP(req))
		})
	}
}

func TestTracing(t *testing.T) {
	tracer := otelMocks.NewOtel()
	cfg := &config.Config{}
	cfg.App.Name = "stayledger"

	m := NewAppMiddleware(tracer, cfg, nil)

	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	m.Tracing(failing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/units", nil))

	require.Equal(t, []string{"GET /v1/units"}, tracer.Spans())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	m.Tracing(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

	assert.Equal(t, []string{"GET /v1/units", "POST /v1/bookings"}, tracer.Spans())
}

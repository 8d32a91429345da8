package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"stayledger/config"
	"stayledger/infras/otel/mocks"
	metricsMocks "stayledger/internal/domains/metrics/mocks"
	"stayledger/internal/domains/metrics/model/dto"
	"stayledger/internal/handlers/metrics"
	"stayledger/shared/daterange"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*metricsMocks.MockMetrics, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := metricsMocks.NewMockMetrics(ctrl)

	cfg := &config.Config{}
	cfg.App.OccupancyGoal = 70

	handler := metrics.New(svc, cfg, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHandler_GetDashboard(t *testing.T) {
	december := daterange.MustParseMonth("2025-12")

	tests := []struct {
		name      string
		target    string
		setupMock func(svc *metricsMocks.MockMetrics)
		code      int
	}{
		{
			name:   "configured goal",
			target: "/metrics/2025-12/",
			setupMock: func(svc *metricsMocks.MockMetrics) {
				svc.EXPECT().Dashboard(gomock.Any(), december, 70.0).Return(dto.DashboardResponse{}, nil)
			},
			code: http.StatusOK,
		},
		{
			name:   "goal from query",
			target: "/metrics/2025-12/?goal=55.5",
			setupMock: func(svc *metricsMocks.MockMetrics) {
				svc.EXPECT().Dashboard(gomock.Any(), december, 55.5).Return(dto.DashboardResponse{}, nil)
			},
			code: http.StatusOK,
		},
		{
			name:      "bad goal",
			target:    "/metrics/2025-12/?goal=high",
			setupMock: func(_ *metricsMocks.MockMetrics) {},
			code:      http.StatusBadRequest,
		},
		{
			name:      "bad month",
			target:    "/metrics/december/",
			setupMock: func(_ *metricsMocks.MockMetrics) {},
			code:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec := get(router, tt.target)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_GetOccupancy(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Occupancy(gomock.Any(), "G3", daterange.MustParseMonth("2025-12")).
		Return(dto.OccupancyResponse{Unit: "G3", Occupancy: 22.58}, nil)

	rec := get(router, "/metrics/2025-12/occupancy/G3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"occupancy":22.58`)
}

func TestHandler_GetCalendar(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Calendar(gomock.Any(), daterange.MustParseMonth("2024-02")).
		Return(dto.CalendarResponse{Units: []dto.CalendarRow{}}, nil)

	rec := get(router, "/metrics/2024-02/calendar")

	assert.Equal(t, http.StatusOK, rec.Code)
}

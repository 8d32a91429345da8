package metrics

import (
	"net/http"
	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/internal/domains/metrics/service"
	"stayledger/shared"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Metrics
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Metrics, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/metrics/{month}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Get("/occupancy/{unit}", handler.GetOccupancy)
		routerGroup.Get("/calendar", handler.GetCalendar)
	})
}

// GetDashboard returns the financial figures and per-unit occupancy of a month.
// @Summary Monthly dashboard
// @Tags Metrics
// @Produce json
// @Param month path string true "YYYY-MM"
// @Param goal query number false "Occupancy goal in percent, defaults to the configured goal"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/metrics/{month} [get]
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	month, err := monthFromPath(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	goal := handler.cfg.App.OccupancyGoal

	if raw := request.URL.Query().Get(constant.RequestParamGoal); raw != "" {
		parsed := shared.ConvertStringToFloat(raw)
		if parsed == nil {
			response.WithError(writer, failure.InvalidGoalParam)

			return
		}

		goal = *parsed
	}

	dashboard, err := handler.service.Dashboard(ctx, month, goal)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("month", month.String()).Msg("failed to compute dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dashboard)
}

// GetOccupancy returns the occupancy of one unit for a month.
// @Summary Unit occupancy
// @Tags Metrics
// @Produce json
// @Param month path string true "YYYY-MM"
// @Param unit path string true "Unit name"
// @Success 200 {object} response.Data[dto.OccupancyResponse]
// @Failure 400 {object} response.Error
// @Router /v1/metrics/{month}/occupancy/{unit} [get]
func (handler *Handler) GetOccupancy(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	month, err := monthFromPath(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	unit := chi.URLParam(request, constant.RequestParamUnit)

	occupancy, err := handler.service.Occupancy(ctx, unit, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("unit", unit).Msg("failed to compute occupancy")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, occupancy)
}

// GetCalendar returns the daily occupancy grid of every unit.
// @Summary Occupancy calendar
// @Tags Metrics
// @Produce json
// @Param month path string true "YYYY-MM"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Router /v1/metrics/{month}/calendar [get]
func (handler *Handler) GetCalendar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	month, err := monthFromPath(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	calendar, err := handler.service.Calendar(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, calendar)
}

func monthFromPath(request *http.Request) (daterange.Month, error) {
	month, err := daterange.ParseMonth(chi.URLParam(request, constant.RequestParamMonth))
	if err != nil {
		return month, failure.InvalidMonthParam
	}

	return month, nil
}

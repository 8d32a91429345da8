package unit

import (
	"net/http"
	"stayledger/infras/otel"
	"stayledger/internal/domains/unit/model/dto"
	"stayledger/internal/domains/unit/service"
	"stayledger/shared/constant"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Unit
	otel    otel.Otel
}

func New(service service.Unit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/units", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUnits)
		routerGroup.Post("/", handler.CreateUnit)
		routerGroup.Patch("/{id}", handler.UpdateUnit)
	})
}

// GetUnits lists every unit definition.
// @Summary Get units
// @Tags Unit
// @Produce json
// @Success 200 {object} response.Data[dto.GetUnitsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/units [get]
func (handler *Handler) GetUnits(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnits")
	defer scope.End()

	units, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get units")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, units)
}

// CreateUnit adds a unit definition.
// @Summary Create a unit
// @Tags Unit
// @Accept json
// @Produce json
// @Param request body dto.CreateUnitRequest true "Create Unit Request"
// @Success 201 {object} response.Data[model.UnitDefinition]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/units [post]
func (handler *Handler) CreateUnit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUnit")
	defer scope.End()

	req := dto.CreateUnitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	unit, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create unit")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, unit)
}

// UpdateUnit changes the provided fields of a unit.
// @Summary Update a unit
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit id"
// @Param request body dto.UpdateUnitRequest true "Update Unit Request"
// @Success 200 {object} response.Data[model.UnitDefinition]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/units/{id} [patch]
func (handler *Handler) UpdateUnit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUnit")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateUnitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	unit, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update unit")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, unit)
}

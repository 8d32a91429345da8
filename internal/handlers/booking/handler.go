package booking

import (
	"io"
	"net/http"
	"stayledger/infras/otel"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/domains/booking/service"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const templateFilename = "bookings_template.csv"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/import/preview", handler.PreviewImport)
		routerGroup.Post("/import", handler.Import)
		routerGroup.Get("/template", handler.GetTemplate)
		routerGroup.Post("/reset", handler.Reset)
		routerGroup.Post("/{id}/addons", handler.AddAddOn)
		routerGroup.Patch("/{id}/addons/{addonID}", handler.UpdateAddOnState)
		routerGroup.Delete("/{id}/addons/{addonID}", handler.RemoveAddOn)
	})
}

// GetBookings lists the booking ledger.
// @Summary Get bookings
// @Description Retrieve every booking record sorted by check-in, optionally filtered.
// @Tags Booking
// @Produce json
// @Param guest query string false "Case-insensitive guest name substring"
// @Param unit query string false "Exact unit name"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, all records when omitted"
// @Param sort_dir query string false "Check-in order, ASC or DESC"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{
		Guest: strings.TrimSpace(request.URL.Query().Get(constant.RequestParamGuest)),
		Unit:  strings.TrimSpace(request.URL.Query().Get(constant.RequestParamUnit)),
	}
	req.FromRequest(request, false)

	bookings, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// CreateBooking records a manual booking, one record per selected unit.
// @Summary Create a booking
// @Description Amount and paid are combined totals split evenly across the units.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(writer, http.StatusCreated, created)
}

// PreviewImport parses an export without saving it.
// @Summary Preview an import
// @Description Accepts a JSON body {"text": "..."}, a text/csv body or a multipart file field named "file".
// @Tags Booking
// @Accept json,text/csv,multipart/form-data
// @Produce json
// @Success 200 {object} response.Data[dto.ImportPreviewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/import/preview [post]
func (handler *Handler) PreviewImport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewImport")
	defer scope.End()

	text, err := readImportText(writer, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read import")

		response.WithError(writer, err)

		return
	}

	preview, err := handler.service.Preview(ctx, text)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, preview)
}

// Import parses an export and appends the bookings not seen before.
// @Summary Import bookings
// @Description Accepts the same bodies as the preview. Rows already present (same reference and unit) are skipped.
// @Tags Booking
// @Accept json,text/csv,multipart/form-data
// @Produce json
// @Success 200 {object} response.Data[dto.ImportResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/import [post]
func (handler *Handler) Import(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	text, err := readImportText(writer, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read import")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Import(ctx, text)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(result.Message)

	response.WithJSON(writer, http.StatusOK, result)
}

// GetTemplate downloads the blank import template.
// @Summary Import template
// @Tags Booking
// @Produce text/csv
// @Success 200 {string} string
// @Router /v1/bookings/template [get]
func (handler *Handler) GetTemplate(writer http.ResponseWriter, _ *http.Request) {
	response.WithText(writer, http.StatusOK, constant.ContentTypeCSV, templateFilename, handler.service.Template()+"\n")
}

// Reset replaces bookings and units with the bundled sample data.
// @Summary Reset to sample data
// @Description Expenses are kept.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.ResetResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reset [post]
func (handler *Handler) Reset(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reset")
	defer scope.End()

	res, err := handler.service.Reset(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddAddOn attaches an add-on to a booking.
// @Summary Add an add-on
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking internal id"
// @Param request body dto.AddAddOnRequest true "Add-on"
// @Success 201 {object} response.Data[model.AddOn]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/addons [post]
func (handler *Handler) AddAddOn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddAddOn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.AddAddOnRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	addOn, err := handler.service.AddAddOn(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to add add-on")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, addOn)
}

// UpdateAddOnState moves an add-on between forecasted, pre-sold and actual.
// @Summary Update add-on status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking internal id"
// @Param addonID path string true "Add-on id"
// @Param request body dto.UpdateAddOnStateRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/addons/{addonID} [patch]
func (handler *Handler) UpdateAddOnState(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddOnState")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	addOnID := chi.URLParam(request, constant.RequestParamAddOnID)
	req := dto.UpdateAddOnStateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateAddOnState(ctx, id, addOnID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("addon", addOnID).Msg("failed to update add-on")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Add-on updated successfully")
}

// RemoveAddOn deletes an add-on from a booking.
// @Summary Remove an add-on
// @Tags Booking
// @Produce json
// @Param id path string true "Booking internal id"
// @Param addonID path string true "Add-on id"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/addons/{addonID} [delete]
func (handler *Handler) RemoveAddOn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveAddOn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	addOnID := chi.URLParam(request, constant.RequestParamAddOnID)

	if err := handler.service.RemoveAddOn(ctx, id, addOnID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("addon", addOnID).Msg("failed to remove add-on")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Add-on removed successfully")
}

// readImportText extracts the export text from a JSON, multipart or raw body.
// Every body is capped at RequestMaxMemory, whatever its content type.
func readImportText(writer http.ResponseWriter, request *http.Request) (string, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)

	contentType := request.Header.Get(constant.RequestHeaderContentType)

	switch {
	case strings.HasPrefix(contentType, constant.ContentTypeMultipartFormData):
		if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return "", failure.BadRequest(err) //nolint:wrapcheck
		}

		file, _, err := request.FormFile(constant.FormFile)
		if err != nil {
			return "", failure.BadRequest(err) //nolint:wrapcheck
		}
		defer file.Close()

		return readAll(file)
	case strings.HasPrefix(contentType, constant.ContentTypeJSON):
		req := dto.ImportRequest{}
		if err := validator.Validate(request.Body, &req); err != nil {
			return "", err //nolint:wrapcheck
		}

		return req.Text, nil
	default:
		return readAll(request.Body)
	}
}

func readAll(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", failure.BadRequest(err) //nolint:wrapcheck
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", failure.EmptyImport
	}

	return string(data), nil
}

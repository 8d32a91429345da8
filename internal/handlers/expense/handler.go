package expense

import (
	"net/http"
	"stayledger/infras/otel"
	"stayledger/internal/domains/expense/model"
	"stayledger/internal/domains/expense/model/dto"
	"stayledger/internal/domains/expense/service"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Expense
	otel    otel.Otel
}

func New(service service.Expense, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/expenses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetExpenses)
		routerGroup.Post("/", handler.CreateExpense)
		routerGroup.Patch("/base/{id}", handler.UpdateBaseExpense)
		routerGroup.Delete("/{kind}/{id}", handler.DeleteExpense)
	})
}

// GetExpenses lists base expenses and the monthly expenses of a month.
// @Summary Get expenses
// @Tags Expense
// @Produce json
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Data[dto.GetExpensesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/expenses [get]
func (handler *Handler) GetExpenses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenses")
	defer scope.End()

	month, err := monthFromQuery(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	expenses, err := handler.service.List(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expenses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, expenses)
}

// CreateExpense records a recurring or one-off expense.
// @Summary Create an expense
// @Description One-off expenses are pinned to the month query parameter.
// @Tags Expense
// @Accept json
// @Produce json
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Param request body dto.CreateExpenseRequest true "Create Expense Request"
// @Success 201 {object} response.Data[model.BaseExpense]
// @Failure 400 {object} response.Error
// @Router /v1/expenses [post]
func (handler *Handler) CreateExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	month, err := monthFromQuery(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.CreateExpenseRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	expense, err := handler.service.Create(ctx, month, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create expense")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, expense)
}

// UpdateBaseExpense changes a recurring expense.
// @Summary Update a base expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Expense id"
// @Param request body dto.UpdateBaseExpenseRequest true "Update Base Expense Request"
// @Success 200 {object} response.Data[model.BaseExpense]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/expenses/base/{id} [patch]
func (handler *Handler) UpdateBaseExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBaseExpense")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateBaseExpenseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	expense, err := handler.service.UpdateBase(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update base expense")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, expense)
}

// DeleteExpense removes a base or monthly expense.
// @Summary Delete an expense
// @Tags Expense
// @Produce json
// @Param kind path string true "base or monthly"
// @Param id path string true "Expense id"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/expenses/{kind}/{id} [delete]
func (handler *Handler) DeleteExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExpense")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	kind, ok := model.ParseKind(chi.URLParam(request, constant.RequestParamKind))
	if !ok {
		response.WithError(writer, failure.BadRequestFromString("kind must be base or monthly"))

		return
	}

	if err := handler.service.Delete(ctx, kind, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete expense")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Expense deleted successfully")
}

func monthFromQuery(request *http.Request) (daterange.Month, error) {
	raw := request.URL.Query().Get(constant.RequestParamMonth)
	if raw == "" {
		return timezone.CurrentMonth(), nil
	}

	month, err := daterange.ParseMonth(raw)
	if err != nil {
		return month, failure.InvalidMonthParam
	}

	return month, nil
}

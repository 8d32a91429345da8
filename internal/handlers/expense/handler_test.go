package expense_test

import (
	"net/http"
	"net/http/httptest"
	"stayledger/infras/otel/mocks"
	expenseMocks "stayledger/internal/domains/expense/mocks"
	"stayledger/internal/domains/expense/model"
	"stayledger/internal/domains/expense/model/dto"
	"stayledger/internal/handlers/expense"
	"stayledger/shared/daterange"
	"stayledger/shared/timezone"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*expenseMocks.MockExpenseService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := expenseMocks.NewMockExpenseService(ctrl)

	handler := expense.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestHandler_GetExpenses(t *testing.T) {
	t.Run("explicit month", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().List(gomock.Any(), daterange.MustParseMonth("2025-12")).Return(dto.GetExpensesResponse{}, nil)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/expenses/?month=2025-12", "").Code)
	})

	t.Run("defaults to current month", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().List(gomock.Any(), timezone.CurrentMonth()).Return(dto.GetExpensesResponse{}, nil)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/expenses/", "").Code)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, router := setup(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/expenses/?month=12-2025", "").Code)
	})
}

func TestHandler_CreateExpense(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Create(gomock.Any(), daterange.MustParseMonth("2025-12"), gomock.Any()).
		Return(model.MonthlyExpense{ID: "m1"}, nil)

	rec := serve(router, http.MethodPost, "/expenses/?month=2025-12", `{"name":"Plumber","amount":1200}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isRecurring":false`)
}

func TestHandler_UpdateBaseExpense(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().UpdateBase(gomock.Any(), "b1", gomock.Any()).Return(model.BaseExpense{ID: "b1", Active: false}, nil)

	rec := serve(router, http.MethodPatch, "/expenses/base/b1", `{"active":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteExpense(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Delete(gomock.Any(), model.KindMonthly, "m1").Return(nil)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/expenses/monthly/m1", "").Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, router := setup(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodDelete, "/expenses/weekly/m1", "").Code)
	})
}

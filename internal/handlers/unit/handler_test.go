package unit_test

import (
	"net/http"
	"net/http/httptest"
	"stayledger/infras/otel/mocks"
	unitMocks "stayledger/internal/domains/unit/mocks"
	"stayledger/internal/domains/unit/model"
	"stayledger/internal/domains/unit/model/dto"
	"stayledger/internal/handlers/unit"
	"stayledger/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*unitMocks.MockUnitService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := unitMocks.NewMockUnitService(ctrl)

	handler := unit.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestHandler_GetUnits(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().List(gomock.Any()).Return(dto.GetUnitsResponse{
		Units:     []model.UnitDefinition{{ID: "u1", Name: "G1", Type: model.TypeEntireUnit}},
		TotalData: 1,
	}, nil)

	rec := serve(router, http.MethodGet, "/units/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"Entire Unit"`)
}

func TestHandler_CreateUnit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateUnitRequest) (model.UnitDefinition, error) {
				assert.Equal(t, model.TypeCapsule, req.Type)
				require.NotNil(t, req.IncludeInOccupancy)
				assert.False(t, *req.IncludeInOccupancy)

				return model.UnitDefinition{ID: "u9", Name: req.Name}, nil
			})

		rec := serve(router, http.MethodPost, "/units/", `{"name":"Pod 1","type":"capsule","includeInOccupancy":false}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		_, router := setup(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/units/", `{}`).Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.UnitDefinition{}, failure.Conflict("exists"))

		assert.Equal(t, http.StatusConflict, serve(router, http.MethodPost, "/units/", `{"name":"G1"}`).Code)
	})
}

func TestHandler_UpdateUnit(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req dto.UpdateUnitRequest) (model.UnitDefinition, error) {
			require.NotNil(t, req.MaxGuests)
			assert.Equal(t, 6, *req.MaxGuests)
			assert.Nil(t, req.Name)

			return model.UnitDefinition{ID: "u1", MaxGuests: 6}, nil
		})

	rec := serve(router, http.MethodPatch, "/units/u1", `{"maxGuests":6}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

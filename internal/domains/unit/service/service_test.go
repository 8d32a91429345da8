package service_test

import (
	"context"
	"errors"
	"net/http"
	"stayledger/infras/otel/mocks"
	unitMocks "stayledger/internal/domains/unit/mocks"
	"stayledger/internal/domains/unit/model"
	"stayledger/internal/domains/unit/model/dto"
	"stayledger/internal/domains/unit/service"
	cacheMocks "stayledger/shared/cache/mocks"
	"stayledger/shared/failure"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*unitMocks.MockUnit, service.Unit) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := unitMocks.NewMockUnit(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, service.New(mockRepo, mockCache, mocks.NewOtel())
}

func stored() []model.UnitDefinition {
	return []model.UnitDefinition{
		{ID: "u1", Name: "G1", Type: model.TypeEntireUnit, MaxGuests: 4, BaseNightlyRate: decimal.NewFromInt(5000), IncludeInOccupancy: true},
		{ID: "u2", Name: "G2", Type: model.TypeEntireUnit, MaxGuests: 4, BaseNightlyRate: decimal.NewFromInt(5000), IncludeInOccupancy: true},
	}
}

func TestUnitService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *unitMocks.MockUnit)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns stored units",
			setupMock: func(repo *unitMocks.MockUnit) {
				repo.EXPECT().Load(gomock.Any()).Return(stored(), nil)
			},
			wantLen: 2,
		},
		{
			name: "nil becomes empty",
			setupMock: func(repo *unitMocks.MockUnit) {
				repo.EXPECT().Load(gomock.Any()).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func(repo *unitMocks.MockUnit) {
				repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("store down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)
			tt.setupMock(repo)

			res, err := svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res.Units)
			assert.Len(t, res.Units, tt.wantLen)
			assert.Equal(t, tt.wantLen, res.TotalData)
		})
	}
}

func TestUnitService_Create(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Load(gomock.Any()).Return(stored(), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Len(3)).Return(nil)

	unit, err := svc.Create(context.Background(), dto.CreateUnitRequest{
		Name:            " Loft ",
		BaseNightlyRate: decimal.RequireFromString("4200.555"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, unit.ID)
	assert.Equal(t, "Loft", unit.Name)
	assert.Equal(t, model.TypeEntireUnit, unit.Type)
	assert.Equal(t, model.DefaultMaxGuests, unit.MaxGuests)
	assert.Equal(t, "4200.56", unit.BaseNightlyRate.String())
	assert.True(t, unit.IncludeInOccupancy)
}

func TestUnitService_Create_Duplicate(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Load(gomock.Any()).Return(stored(), nil)

	_, err := svc.Create(context.Background(), dto.CreateUnitRequest{Name: "g1"})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestUnitService_Update(t *testing.T) {
	name := "Garden 1"
	include := false
	guests := 6

	repo, svc := setup(t)

	repo.EXPECT().Load(gomock.Any()).Return(stored(), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, units []model.UnitDefinition) error {
			assert.Equal(t, "Garden 1", units[0].Name)
			assert.Equal(t, "G2", units[1].Name)

			return nil
		})

	unit, err := svc.Update(context.Background(), "u1", dto.UpdateUnitRequest{
		Name:               &name,
		MaxGuests:          &guests,
		IncludeInOccupancy: &include,
	})
	require.NoError(t, err)

	assert.Equal(t, "Garden 1", unit.Name)
	assert.Equal(t, 6, unit.MaxGuests)
	assert.False(t, unit.IncludeInOccupancy)
	assert.Equal(t, "5000", unit.BaseNightlyRate.String())
}

func TestUnitService_Update_Errors(t *testing.T) {
	taken := "G2"
	blank := "  "

	tests := []struct {
		name string
		id   string
		req  dto.UpdateUnitRequest
		code int
	}{
		{name: "unknown id", id: "nope", req: dto.UpdateUnitRequest{}, code: http.StatusNotFound},
		{name: "name taken", id: "u1", req: dto.UpdateUnitRequest{Name: &taken}, code: http.StatusConflict},
		{name: "blank name", id: "u1", req: dto.UpdateUnitRequest{Name: &blank}, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)
			repo.EXPECT().Load(gomock.Any()).Return(stored(), nil)

			_, err := svc.Update(context.Background(), tt.id, tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

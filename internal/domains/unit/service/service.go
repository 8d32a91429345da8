package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Unit=MockUnitService

import (
	"context"
	"fmt"
	"stayledger/infras/otel"
	"stayledger/internal/domains/unit/model"
	"stayledger/internal/domains/unit/model/dto"
	"stayledger/internal/domains/unit/repository"
	"stayledger/shared"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const msgDuplicateUnit = "a unit named %q already exists"

type Unit interface {
	List(ctx context.Context) (dto.GetUnitsResponse, error)
	Create(ctx context.Context, req dto.CreateUnitRequest) (model.UnitDefinition, error)
	Update(ctx context.Context, id string, req dto.UpdateUnitRequest) (model.UnitDefinition, error)
}

type serviceImpl struct {
	repo  repository.Unit
	cache cache.Cache
	otel  otel.Otel

	mu sync.Mutex
}

func New(repo repository.Unit, cache cache.Cache, otel otel.Otel) Unit {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetUnitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnitList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	units, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load units")

		return res, fmt.Errorf("failed to load units: %w", err)
	}

	res.FromModels(units)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUnitRequest) (res model.UnitDefinition, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnitCreate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unit := req.ToModel()

	s.mu.Lock()
	defer s.mu.Unlock()

	units, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load units")

		return res, fmt.Errorf("failed to load units: %w", err)
	}

	if indexByName(units, unit.Name, "") >= 0 {
		return res, failure.Conflict(fmt.Sprintf(msgDuplicateUnit, unit.Name)) // nolint:wrapcheck
	}

	if err = s.repo.Save(ctx, append(units, unit)); err != nil {
		log.Error().Err(err).Msg("failed to create unit")

		return res, fmt.Errorf("failed to create unit: %w", err)
	}

	s.invalidate(ctx)

	return unit, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateUnitRequest) (res model.UnitDefinition, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnitUpdate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	units, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load units")

		return res, fmt.Errorf("failed to load units: %w", err)
	}

	idx := -1

	for i := range units {
		if units[i].ID == id {
			idx = i

			break
		}
	}

	if idx < 0 {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updated := units[idx]
	req.Apply(&updated)

	if updated.Name == "" {
		return res, failure.BadRequestFromString("name must not be empty") // nolint:wrapcheck
	}

	if indexByName(units, updated.Name, id) >= 0 {
		return res, failure.Conflict(fmt.Sprintf(msgDuplicateUnit, updated.Name)) // nolint:wrapcheck
	}

	units[idx] = updated

	if err = s.repo.Save(ctx, units); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update unit")

		return res, fmt.Errorf("failed to update unit: %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheMetricsPrefix)
}

// indexByName finds a unit with the same name, case-insensitively, ignoring skipID.
func indexByName(units []model.UnitDefinition, name, skipID string) int {
	for i, unit := range units {
		if unit.ID != skipID && strings.EqualFold(unit.Name, name) {
			return i
		}
	}

	return -1
}

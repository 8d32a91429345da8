package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Expense=MockExpenseService

import (
	"context"
	"fmt"
	"stayledger/infras/otel"
	"stayledger/internal/domains/expense/model"
	"stayledger/internal/domains/expense/model/dto"
	"stayledger/internal/domains/expense/repository"
	"stayledger/shared"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"sync"

	"github.com/rs/zerolog/log"
)

type Expense interface {
	List(ctx context.Context, month daterange.Month) (dto.GetExpensesResponse, error)
	Create(ctx context.Context, month daterange.Month, req dto.CreateExpenseRequest) (model.Expense, error)
	UpdateBase(ctx context.Context, id string, req dto.UpdateBaseExpenseRequest) (model.BaseExpense, error)
	Delete(ctx context.Context, kind model.Kind, id string) error
}

type serviceImpl struct {
	repo  repository.Expense
	cache cache.Cache
	otel  otel.Otel

	mu sync.Mutex
}

func New(repo repository.Expense, cache cache.Cache, otel otel.Otel) Expense {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, month daterange.Month) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpenseList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	base, monthly, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(month, base, monthly)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, month daterange.Month, req dto.CreateExpenseRequest) (res model.Expense, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpenseCreate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.IsRecurring {
		expense := req.ToBase()

		base, err := s.repo.LoadBase(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load base expenses")

			return nil, fmt.Errorf("failed to load base expenses: %w", err)
		}

		if err = s.repo.SaveBase(ctx, append(base, expense)); err != nil {
			log.Error().Err(err).Msg("failed to create base expense")

			return nil, fmt.Errorf("failed to create base expense: %w", err)
		}

		s.invalidate(ctx)

		return expense, nil
	}

	if month.IsZero() {
		return nil, failure.InvalidMonthParam
	}

	expense := req.ToMonthly(month)

	monthly, err := s.repo.LoadMonthly(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load monthly expenses")

		return nil, fmt.Errorf("failed to load monthly expenses: %w", err)
	}

	if err = s.repo.SaveMonthly(ctx, append(monthly, expense)); err != nil {
		log.Error().Err(err).Msg("failed to create monthly expense")

		return nil, fmt.Errorf("failed to create monthly expense: %w", err)
	}

	s.invalidate(ctx)

	return expense, nil
}

func (s *serviceImpl) UpdateBase(ctx context.Context, id string, req dto.UpdateBaseExpenseRequest) (res model.BaseExpense, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpenseUpdateBase")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	base, err := s.repo.LoadBase(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load base expenses")

		return res, fmt.Errorf("failed to load base expenses: %w", err)
	}

	for i := range base {
		if base[i].ID != id {
			continue
		}

		req.Apply(&base[i])

		if base[i].Name == "" {
			return res, failure.BadRequestFromString("name must not be empty") // nolint:wrapcheck
		}

		if err = s.repo.SaveBase(ctx, base); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to update base expense")

			return res, fmt.Errorf("failed to update base expense: %w", err)
		}

		s.invalidate(ctx)

		return base[i], nil
	}

	return res, failure.NotFound(model.EntityBase) // nolint:wrapcheck
}

func (s *serviceImpl) Delete(ctx context.Context, kind model.Kind, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpenseDelete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case model.KindBase:
		base, err := s.repo.LoadBase(ctx)
		if err != nil {
			return fmt.Errorf("failed to load base expenses: %w", err)
		}

		kept, found := without(base, id)
		if !found {
			return failure.NotFound(model.EntityBase) // nolint:wrapcheck
		}

		if err = s.repo.SaveBase(ctx, kept); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to delete base expense")

			return fmt.Errorf("failed to delete base expense: %w", err)
		}
	case model.KindMonthly:
		monthly, err := s.repo.LoadMonthly(ctx)
		if err != nil {
			return fmt.Errorf("failed to load monthly expenses: %w", err)
		}

		kept, found := without(monthly, id)
		if !found {
			return failure.NotFound(model.EntityMonthly) // nolint:wrapcheck
		}

		if err = s.repo.SaveMonthly(ctx, kept); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to delete monthly expense")

			return fmt.Errorf("failed to delete monthly expense: %w", err)
		}
	default:
		return failure.BadRequestf("unknown expense kind %q", kind) // nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) load(ctx context.Context) ([]model.BaseExpense, []model.MonthlyExpense, error) {
	base, err := s.repo.LoadBase(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load base expenses")

		return nil, nil, fmt.Errorf("failed to load base expenses: %w", err)
	}

	monthly, err := s.repo.LoadMonthly(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load monthly expenses")

		return nil, nil, fmt.Errorf("failed to load monthly expenses: %w", err)
	}

	return base, monthly, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheMetricsPrefix)
}

func without[T model.Expense](expenses []T, id string) ([]T, bool) {
	kept := make([]T, 0, len(expenses))
	found := false

	for _, e := range expenses {
		if e.ExpenseID() == id {
			found = true

			continue
		}

		kept = append(kept, e)
	}

	return kept, found
}

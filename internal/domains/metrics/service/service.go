package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"stayledger/config"
	"stayledger/infras/otel"
	bookingModel "stayledger/internal/domains/booking/model"
	bookingRepo "stayledger/internal/domains/booking/repository"
	expenseModel "stayledger/internal/domains/expense/model"
	expenseRepo "stayledger/internal/domains/expense/repository"
	"stayledger/internal/domains/metrics/calculator"
	"stayledger/internal/domains/metrics/model/dto"
	unitModel "stayledger/internal/domains/unit/model"
	unitRepo "stayledger/internal/domains/unit/repository"
	"stayledger/shared"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/shared/money"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheKeyDashboard = "dashboard"
	cacheKeyCalendar  = "calendar"
	cacheKeyOccupancy = "occupancy"
)

type Metrics interface {
	Dashboard(ctx context.Context, month daterange.Month, goal float64) (dto.DashboardResponse, error)
	Occupancy(ctx context.Context, unit string, month daterange.Month) (dto.OccupancyResponse, error)
	Calendar(ctx context.Context, month daterange.Month) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	unitRepo    unitRepo.Unit
	expenseRepo expenseRepo.Expense
	cfg         *config.Config
	cache       cache.Cache
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	unitRepo unitRepo.Unit,
	expenseRepo expenseRepo.Expense,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Metrics {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		unitRepo:    unitRepo,
		expenseRepo: expenseRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context, month daterange.Month, goal float64) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if month.IsZero() {
		return res, failure.InvalidMonthParam
	}

	if goal < 0 || goal > 100 {
		return res, failure.InvalidGoalParam
	}

	cacheKey := shared.BuildCacheKey(constant.CacheMetricsPrefix, cacheKeyDashboard, month.String(),
		strconv.FormatFloat(goal, 'f', -1, 64))

	if s.fromCache(ctx, cacheKey, &res) {
		return res, nil
	}

	bookings, units, err := s.loadLedger(ctx)
	if err != nil {
		return res, err
	}

	base, err := s.expenseRepo.LoadBase(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load base expenses")

		return res, fmt.Errorf("failed to load base expenses: %w", err)
	}

	monthly, err := s.expenseRepo.LoadMonthly(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load monthly expenses")

		return res, fmt.Errorf("failed to load monthly expenses: %w", err)
	}

	fixed := expenseModel.FixedTotal(expenseModel.Combine(base, monthly), month)

	res.Metrics = calculator.Compute(bookings, month, fixed)
	res.BreakEvenMet = res.Metrics.BreakEvenMet()
	res.OccupancyGoal = goal
	res.Units = make([]dto.UnitStats, 0, len(units))

	occupancies := make([]float64, 0, len(units))

	for _, unit := range units {
		if !unit.IncludeInOccupancy {
			continue
		}

		stats := unitStats(unit, month, bookings)
		stats.GoalMet = stats.Occupancy >= goal

		res.Units = append(res.Units, stats)
		occupancies = append(occupancies, stats.Occupancy)
	}

	res.AverageOccupancy = calculator.Average(occupancies)

	s.toCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context, unit string, month daterange.Month) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if month.IsZero() {
		return res, failure.InvalidMonthParam
	}

	cacheKey := shared.BuildCacheKey(constant.CacheMetricsPrefix, cacheKeyOccupancy, month.String(), unit)

	if s.fromCache(ctx, cacheKey, &res) {
		return res, nil
	}

	bookings, err := s.bookingRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	days := calculator.OccupiedDays(unit, month, bookings)

	res = dto.OccupancyResponse{
		Unit:         unit,
		Month:        month.String(),
		Occupancy:    calculator.Occupancy(unit, month, bookings),
		OccupiedDays: make([]string, 0, len(days)),
		DaysInMonth:  month.Days(),
	}

	for _, day := range days {
		res.OccupiedDays = append(res.OccupiedDays, day.String())
	}

	s.toCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, month daterange.Month) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if month.IsZero() {
		return res, failure.InvalidMonthParam
	}

	cacheKey := shared.BuildCacheKey(constant.CacheMetricsPrefix, cacheKeyCalendar, month.String())

	if s.fromCache(ctx, cacheKey, &res) {
		return res, nil
	}

	bookings, units, err := s.loadLedger(ctx)
	if err != nil {
		return res, err
	}

	res.Month = month
	res.Units = make([]dto.CalendarRow, 0, len(units))

	days := daterange.Days(month.First(), month.Next())

	for _, unit := range units {
		row := dto.CalendarRow{
			Unit:      unit.Name,
			Occupancy: calculator.Occupancy(unit.Name, month, bookings),
			Days:      make([]dto.CalendarDay, 0, len(days)),
		}

		for _, day := range days {
			row.Days = append(row.Days, dto.CalendarDay{
				Date:     day,
				Occupied: calculator.IsOccupied(unit.Name, day, bookings),
			})
		}

		res.Units = append(res.Units, row)
	}

	s.toCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) loadLedger(ctx context.Context) ([]bookingModel.BookingRecord, []unitModel.UnitDefinition, error) {
	bookings, err := s.bookingRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	units, err := s.unitRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load units")

		return nil, nil, fmt.Errorf("failed to load units: %w", err)
	}

	return bookings, units, nil
}

// fromCache fills value from the cache. Misses and cache errors both read as a miss.
func (s *serviceImpl) fromCache(ctx context.Context, key string, value any) bool {
	if s.cfg.Cache.TTL <= 0 {
		return false
	}

	err := s.cache.Get(ctx, key, value)
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read metrics cache")
	}

	return false
}

func (s *serviceImpl) toCache(ctx context.Context, key string, value any) {
	if s.cfg.Cache.TTL <= 0 {
		return
	}

	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save metrics cache")
	}
}

// unitStats sums room revenue of the unit's bookings checking in during month.
func unitStats(unit unitModel.UnitDefinition, month daterange.Month, bookings []bookingModel.BookingRecord) dto.UnitStats {
	projected, realized := decimal.Zero, decimal.Zero
	count := 0

	for _, booking := range bookings {
		if booking.Unit != unit.Name || !month.Contains(booking.CheckIn) {
			continue
		}

		count++
		projected = projected.Add(booking.Amount)
		realized = realized.Add(booking.Paid)
	}

	return dto.UnitStats{
		Unit:             unit.Name,
		Type:             unit.Type,
		Bookings:         count,
		ProjectedRevenue: money.Round(projected),
		RealizedRevenue:  money.Round(realized),
		Occupancy:        calculator.Occupancy(unit.Name, month, bookings),
	}
}

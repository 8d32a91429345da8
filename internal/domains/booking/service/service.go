package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"sort"
	"stayledger/config"
	"stayledger/infras/kafka"
	"stayledger/infras/otel"
	"stayledger/internal/domains/booking/importer"
	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/domains/booking/repository"
	"stayledger/internal/domains/booking/seed"
	unitModel "stayledger/internal/domains/unit/model"
	unitRepo "stayledger/internal/domains/unit/repository"
	"stayledger/shared"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	sharedDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	extendedStayKeyword = "extended stay"

	msgImportEmpty        = "No valid bookings found in the file."
	msgImportMalformed    = "No valid bookings found: %d row(s) could not be read, first error: %s"
	msgExtendedStay       = "Extended stays are handled by the channel manager and must be imported as bookings"
	entityAddOn           = "add-on"
	otelAttrBookingsCount = "bookings.count"
)

type Booking interface {
	List(ctx context.Context, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.GetBookingsResponse, error)
	Preview(ctx context.Context, text string) (dto.ImportPreviewResponse, error)
	Import(ctx context.Context, text string) (dto.ImportResponse, error)
	Template() string
	Reset(ctx context.Context) (dto.ResetResponse, error)
	Bootstrap(ctx context.Context) error
	AddAddOn(ctx context.Context, bookingID string, req dto.AddAddOnRequest) (model.AddOn, error)
	UpdateAddOnState(ctx context.Context, bookingID, addOnID string, req dto.UpdateAddOnStateRequest) error
	RemoveAddOn(ctx context.Context, bookingID, addOnID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	unitRepo  unitRepo.Unit
	cfg       *config.Config
	cache     cache.Cache
	otel      otel.Otel
	publisher kafka.Publisher

	// serialises load-modify-save cycles on the booking collection
	mu sync.Mutex
}

func New(repo repository.Booking, unitRepo unitRepo.Unit, cfg *config.Config, cache cache.Cache, otel otel.Otel, publisher kafka.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		unitRepo:  unitRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	filtered := make([]model.BookingRecord, 0, len(bookings))
	for _, booking := range bookings {
		if req.Match(booking) {
			filtered = append(filtered, booking)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if req.Descending() {
			return filtered[j].CheckIn.Before(filtered[i].CheckIn)
		}

		return filtered[i].CheckIn.Before(filtered[j].CheckIn)
	})

	res.FromModels(sharedDto.Paginate(filtered, req.QueryParams))
	res.TotalData = len(filtered)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := req.ToModels()
	if err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	if err = s.repo.Save(ctx, append(bookings, records...)); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterChange(ctx, model.EventCreated, records)

	res.FromModels(records)

	return res, nil
}

func (s *serviceImpl) Preview(ctx context.Context, text string) (res dto.ImportPreviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()

	result := importer.Parse(text)

	scope.SetAttributes(map[string]any{
		"import.status":       string(result.Status()),
		otelAttrBookingsCount: len(result.Records),
	})

	res.FromResult(result)

	return res, nil
}

func (s *serviceImpl) Import(ctx context.Context, text string) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result := importer.Parse(text)

	switch result.Status() {
	case importer.StatusNoHeader:
		return res, failure.BadRequestFromString(importer.ErrMissingHeader) // nolint:wrapcheck
	case importer.StatusEmpty:
		return res, failure.BadRequestFromString(msgImportEmpty) // nolint:wrapcheck
	case importer.StatusMalformed:
		return res, failure.BadRequestf(msgImportMalformed, len(result.Errors), result.Errors[0]) // nolint:wrapcheck
	case importer.StatusReady:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	merged, added := importer.Merge(bookings, result.Records)

	scope.SetAttribute(otelAttrBookingsCount, added)

	if added > 0 {
		if err = s.repo.Save(ctx, merged); err != nil {
			log.Error().Err(err).Msg("failed to save imported bookings")

			return res, fmt.Errorf("failed to save imported bookings: %w", err)
		}

		s.afterChange(ctx, model.EventImported, merged[len(bookings):])
	}

	log.Info().Int("parsed", len(result.Records)).Int("added", added).Msg("bookings imported")

	return dto.NewImportResponse(added, len(result.Records), result.Errors), nil
}

func (s *serviceImpl) Template() string {
	return importer.Template()
}

func (s *serviceImpl) Reset(ctx context.Context) (res dto.ResetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, units, err := s.seed(ctx)
	if err != nil {
		return res, err
	}

	s.afterChange(ctx, model.EventReset, bookings)

	return dto.ResetResponse{Bookings: len(bookings), Units: len(units)}, nil
}

// Bootstrap seeds an empty ledger and fills in units for bookings that have none.
func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	if len(bookings) == 0 {
		if !s.cfg.App.SeedOnEmpty {
			log.Info().Msg("booking ledger is empty, seeding disabled")

			return nil
		}

		seeded, _, err := s.seed(ctx)
		if err != nil {
			return err
		}

		log.Info().Int("bookings", len(seeded)).Msg("booking ledger seeded")

		return nil
	}

	units, err := s.unitRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}

	if len(units) == 0 {
		if err = s.unitRepo.Save(ctx, unitModel.InferFromBookings(bookings)); err != nil {
			return fmt.Errorf("failed to save inferred units: %w", err)
		}
	}

	return nil
}

// seed replaces bookings and units with the embedded seed export. Expenses are untouched.
func (s *serviceImpl) seed(ctx context.Context) ([]model.BookingRecord, []unitModel.UnitDefinition, error) {
	bookings := seed.Bookings()
	units := unitModel.InferFromBookings(bookings)

	if err := s.repo.Save(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to save seed bookings")

		return nil, nil, fmt.Errorf("failed to save seed bookings: %w", err)
	}

	if err := s.unitRepo.Save(ctx, units); err != nil {
		log.Error().Err(err).Msg("failed to save seed units")

		return nil, nil, fmt.Errorf("failed to save seed units: %w", err)
	}

	return bookings, units, nil
}

func (s *serviceImpl) AddAddOn(ctx context.Context, bookingID string, req dto.AddAddOnRequest) (res model.AddOn, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddAddOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.Contains(strings.ToLower(req.Name), extendedStayKeyword) {
		return res, failure.BadRequestFromString(msgExtendedStay) // nolint:wrapcheck
	}

	addOn := req.ToModel(timezone.Now())

	err = s.updateBooking(ctx, bookingID, func(booking *model.BookingRecord) error {
		booking.AddOns = append(booking.AddOns, addOn)

		return nil
	})
	if err != nil {
		return res, err
	}

	return addOn, nil
}

func (s *serviceImpl) UpdateAddOnState(ctx context.Context, bookingID, addOnID string, req dto.UpdateAddOnStateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAddOnState")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.updateBooking(ctx, bookingID, func(booking *model.BookingRecord) error {
		idx := booking.AddOnIndex(addOnID)
		if idx < 0 {
			return failure.NotFound(entityAddOn) // nolint:wrapcheck
		}

		booking.AddOns[idx].State = req.State

		return nil
	})
}

func (s *serviceImpl) RemoveAddOn(ctx context.Context, bookingID, addOnID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveAddOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.updateBooking(ctx, bookingID, func(booking *model.BookingRecord) error {
		idx := booking.AddOnIndex(addOnID)
		if idx < 0 {
			return failure.NotFound(entityAddOn) // nolint:wrapcheck
		}

		booking.AddOns = append(booking.AddOns[:idx], booking.AddOns[idx+1:]...)

		return nil
	})
}

// updateBooking applies mutate to a copy of the booking with the given internal id and
// writes the collection back.
func (s *serviceImpl) updateBooking(ctx context.Context, bookingID string, mutate func(*model.BookingRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return fmt.Errorf("failed to load bookings: %w", err)
	}

	idx := -1

	for i := range bookings {
		if bookings[i].ID == bookingID {
			idx = i

			break
		}
	}

	if idx < 0 {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updated := bookings[idx].Clone()
	if err = mutate(&updated); err != nil {
		return err
	}

	bookings[idx] = updated

	if err = s.repo.Save(ctx, bookings); err != nil {
		log.Error().Err(err).Str("id", bookingID).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheMetricsPrefix)

	return nil
}

// afterChange drops cached metrics before returning, then announces the change in the background.
func (s *serviceImpl) afterChange(ctx context.Context, eventType model.EventType, records []model.BookingRecord) {
	event := model.Event{
		Type:       eventType,
		References: model.References(records),
		Count:      len(records),
		OccurredAt: timezone.Now(),
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheMetricsPrefix)

	go func() {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), kafka.Message{Key: string(eventType), Value: event}); err != nil {
			log.Error().Err(err).Str("event", string(eventType)).Msg("failed to publish booking event")
		}
	}()
}

//go:build wireinject
// +build wireinject

package di

import (
	"stayledger/config"
	"stayledger/infras/kafka"
	"stayledger/infras/otel"
	"stayledger/shared/cache"
	"stayledger/shared/store"
	"stayledger/transport/http"
	"stayledger/transport/http/middleware"
	"stayledger/transport/http/router"

	bookingRepository "stayledger/internal/domains/booking/repository"
	bookingService "stayledger/internal/domains/booking/service"
	bookingHandler "stayledger/internal/handlers/booking"

	unitRepository "stayledger/internal/domains/unit/repository"
	unitService "stayledger/internal/domains/unit/service"
	unitHandler "stayledger/internal/handlers/unit"

	expenseRepository "stayledger/internal/domains/expense/repository"
	expenseService "stayledger/internal/domains/expense/service"
	expenseHandler "stayledger/internal/handlers/expense"

	metricsService "stayledger/internal/domains/metrics/service"
	metricsHandler "stayledger/internal/handlers/metrics"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	store.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var unitDomain = wire.NewSet(
	unitRepository.New,
	unitService.New,
)

var expenseDomain = wire.NewSet(
	expenseRepository.New,
	expenseService.New,
)

var metricsDomain = wire.NewSet(
	metricsService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	unitDomain,
	expenseDomain,
	metricsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	unitHandler.New,
	expenseHandler.New,
	metricsHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

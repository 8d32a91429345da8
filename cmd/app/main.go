package main

import (
	"context"
	"os"
	"stayledger/config"
	"stayledger/di"
	"stayledger/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg, os.Stdout)

	app := di.InitializeService()

	if err := app.Booking.Bootstrap(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap the booking ledger")
	}

	app.HTTP.Serve()
}

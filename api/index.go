package handler

import (
	"context"
	"net/http"
	"os"
	"stayledger/config"
	"stayledger/di"
	"stayledger/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entrypoint. The container is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get(), os.Stdout)

		app = di.InitializeService()

		if err := app.Booking.Bootstrap(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to bootstrap the booking ledger")
		}
	})

	app.HTTP.ServeHTTP(w, r)
}

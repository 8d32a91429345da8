package di

import (
	bookingService "stayledger/internal/domains/booking/service"
	"stayledger/transport/http"
)

// App is the wired HTTP server plus the booking service that bootstraps the ledger at start-up.
type App struct {
	HTTP    *http.HTTP
	Booking bookingService.Booking
}

// Package seed holds the reservation export loaded into an empty ledger and on reset.
package seed

import (
	_ "embed"
	"stayledger/internal/domains/booking/importer"
	"stayledger/internal/domains/booking/model"
)

//go:embed seed.csv
var data string

// CSV returns the raw seed export.
func CSV() string {
	return data
}

// Bookings parses the seed export into fresh records.
func Bookings() []model.BookingRecord {
	return importer.Parse(data).Records
}

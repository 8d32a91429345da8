package model

import (
	"stayledger/shared/daterange"
	"stayledger/shared/money"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StoreKey   = "pc_bookings"
	EntityName = "booking"
)

// BookingRecord is one unit-stay commitment. Records created from a single multi-unit
// reservation share Reference but never ID.
type BookingRecord struct {
	ID        string          `json:"internal_id"`
	Reference string          `json:"booking_reference"`
	GuestName string          `json:"guest_name"`
	Unit      string          `json:"unit"`
	Platform  Platform        `json:"platform"`
	Guests    int             `json:"guests"`
	CheckIn   daterange.Date  `json:"check_in"`
	CheckOut  daterange.Date  `json:"check_out"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      decimal.Decimal `json:"paid"`
	Notes     string          `json:"notes,omitempty"`
	AddOns    []AddOn         `json:"add_ons"`
}

// Nights is the number of occupied nights, check-out excluded.
func (b BookingRecord) Nights() int {
	return len(daterange.Days(b.CheckIn, b.CheckOut))
}

// Outstanding is the unpaid part of the room amount.
func (b BookingRecord) Outstanding() decimal.Decimal {
	return money.Round(b.Amount.Sub(b.Paid))
}

// Signature identifies a reservation line across imports.
func (b BookingRecord) Signature() string {
	return strings.ToLower(b.Reference + "|" + b.Unit)
}

// AddOnIndex returns the position of the add-on with the given id, or -1.
func (b BookingRecord) AddOnIndex(id string) int {
	for i, addOn := range b.AddOns {
		if addOn.ID == id {
			return i
		}
	}

	return -1
}

// Clone copies the record including its add-on slice so callers can mutate it
// without touching the snapshot it came from.
func (b BookingRecord) Clone() BookingRecord {
	out := b
	out.AddOns = make([]AddOn, len(b.AddOns))
	copy(out.AddOns, b.AddOns)

	return out
}

type AddOn struct {
	ID        string          `json:"id"`
	Category  AddOnCategory   `json:"category"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	State     AddOnState      `json:"status"`
	CreatedAt time.Time       `json:"date"`
}

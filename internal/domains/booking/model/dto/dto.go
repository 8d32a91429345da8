package dto

import (
	"fmt"
	"stayledger/internal/domains/booking/importer"
	"stayledger/internal/domains/booking/model"
	"stayledger/shared/daterange"
	sharedDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"stayledger/shared/money"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ReferencePrefix = "REF-"
	referenceLength = 8

	MessageNoNewBookings = "No new bookings found."
)

type CreateBookingRequest struct {
	Reference string          `json:"booking_reference" validate:"omitempty,max=64"`
	GuestName string          `json:"guest_name"        validate:"required,max=100"`
	Units     []string        `json:"units"             validate:"required,min=1,dive,required"`
	Platform  model.Platform  `json:"platform"          validate:"omitempty,enum"`
	Guests    int             `json:"guests"            validate:"gte=0"`
	CheckIn   string          `json:"check_in"          validate:"required,date"`
	CheckOut  string          `json:"check_out"         validate:"required,date"`
	Amount    decimal.Decimal `json:"amount"            validate:"gte=0"`
	Paid      decimal.Decimal `json:"paid"              validate:"gte=0"`
	Notes     string          `json:"notes"             validate:"omitempty,max=500"`
}

// ToModels produces one record per selected unit. Amount and paid are combined totals
// and are split evenly across the units.
func (c *CreateBookingRequest) ToModels() ([]model.BookingRecord, error) {
	checkIn, err := daterange.ParseDate(c.CheckIn)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkOut, err := daterange.ParseDate(c.CheckOut)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return nil, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	reference := strings.TrimSpace(c.Reference)
	if reference == "" {
		reference = NewReference()
	}

	platform := c.Platform
	if platform == "" {
		platform = model.PlatformDirect
	}

	guests := c.Guests
	if guests < 1 {
		guests = 1
	}

	units := distinct(c.Units)
	if len(units) == 0 {
		return nil, failure.BadRequestFromString("units is required") //nolint:wrapcheck
	}

	amount := money.Split(c.Amount, len(units))
	paid := money.Split(c.Paid, len(units))

	records := make([]model.BookingRecord, 0, len(units))
	for _, unit := range units {
		records = append(records, model.BookingRecord{
			ID:        uuid.NewString(),
			Reference: reference,
			GuestName: strings.TrimSpace(c.GuestName),
			Unit:      unit,
			Platform:  platform,
			Guests:    guests,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Amount:    amount,
			Paid:      paid,
			Notes:     c.Notes,
			AddOns:    []model.AddOn{},
		})
	}

	return records, nil
}

// NewReference generates a manual booking reference such as REF-1A2B3C4D.
func NewReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")

	return ReferencePrefix + strings.ToUpper(hex[:referenceLength])
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok || v == "" {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

type ListBookingsRequest struct {
	sharedDto.QueryParams

	Guest string
	Unit  string
}

// Match applies the list filters: guest is a case-insensitive substring, unit is exact.
func (l ListBookingsRequest) Match(record model.BookingRecord) bool {
	if l.Guest != "" && !strings.Contains(strings.ToLower(record.GuestName), strings.ToLower(l.Guest)) {
		return false
	}

	return l.Unit == "" || record.Unit == l.Unit
}

type ImportRequest struct {
	Text string `json:"text" validate:"required"`
}

type BookingResponse struct {
	model.BookingRecord
	Nights      int             `json:"nights"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

func (r *BookingResponse) FromModel(record model.BookingRecord) {
	r.BookingRecord = record
	r.Nights = record.Nights()
	r.Outstanding = record.Outstanding()
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingRecord) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ImportPreviewResponse struct {
	Status      importer.Status   `json:"status"`
	HeaderFound bool              `json:"header_found"`
	HeaderLine  int               `json:"header_line,omitempty"`
	Errors      []string          `json:"errors"`
	Bookings    []BookingResponse `json:"bookings"`
}

func (r *ImportPreviewResponse) FromResult(result importer.Result) {
	r.Status = result.Status()
	r.HeaderFound = result.HeaderFound
	r.HeaderLine = result.HeaderLine

	r.Errors = result.Errors
	if r.Errors == nil {
		r.Errors = []string{}
	}

	r.Bookings = make([]BookingResponse, len(result.Records))
	for i, record := range result.Records {
		r.Bookings[i].FromModel(record)
	}
}

type ImportResponse struct {
	Added   int      `json:"added"`
	Parsed  int      `json:"parsed"`
	Errors  []string `json:"errors"`
	Message string   `json:"message"`
}

func NewImportResponse(added, parsed int, errs []string) ImportResponse {
	if errs == nil {
		errs = []string{}
	}

	message := MessageNoNewBookings
	if added > 0 {
		message = fmt.Sprintf("Appended %d new bookings.", added)
	}

	return ImportResponse{Added: added, Parsed: parsed, Errors: errs, Message: message}
}

type ResetResponse struct {
	Bookings int `json:"bookings"`
	Units    int `json:"units"`
}

type AddAddOnRequest struct {
	Category model.AddOnCategory `json:"category" validate:"required,enum"`
	Name     string              `json:"name"     validate:"required,max=100"`
	Amount   decimal.Decimal     `json:"amount"   validate:"gte=0"`
	State    model.AddOnState    `json:"status"   validate:"omitempty,enum"`
}

func (a *AddAddOnRequest) ToModel(now time.Time) model.AddOn {
	state := a.State
	if state == "" {
		state = model.StateForecasted
	}

	return model.AddOn{
		ID:        uuid.NewString(),
		Category:  a.Category,
		Name:      strings.TrimSpace(a.Name),
		Amount:    money.Round(a.Amount),
		State:     state,
		CreatedAt: now,
	}
}

type UpdateAddOnStateRequest struct {
	State model.AddOnState `json:"status" validate:"required,enum"`
}

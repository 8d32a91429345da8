// Package importer turns pasted or uploaded reservation exports into booking records
// and merges them into an existing collection.
package importer

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"stayledger/internal/domains/booking/model"
	"stayledger/shared/daterange"
	"stayledger/shared/money"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ColumnBookingID   = "booking_id"
	ColumnGuestName   = "guest_name"
	ColumnPlatform    = "platform"
	ColumnUnit        = "unit"
	ColumnCheckIn     = "check_in"
	ColumnCheckOut    = "check_out"
	ColumnTotalAmount = "total_amount"
	ColumnPaidAmount  = "paid_amount"
	ColumnGuests      = "guests"

	PlaceholderPrefix = "GEN-"
	UnknownGuest      = "Unknown"

	ErrMissingHeader = "CSV missing required headers: booking_id, guest_name, unit"

	bom = "\ufeff"
)

var (
	headerKeys = []string{ColumnBookingID, ColumnGuestName, ColumnUnit}

	templateColumns = []string{
		ColumnBookingID, ColumnGuestName, ColumnPlatform, ColumnUnit, ColumnCheckIn,
		ColumnCheckOut, ColumnTotalAmount, ColumnPaidAmount, ColumnGuests,
	}

	lineBreak = regexp.MustCompile(`\r?\n`)
)

type platformRule struct {
	keyword  string
	platform model.Platform
}

// Evaluated in order, first match wins.
var platformRules = []platformRule{
	{keyword: "airbnb", platform: model.PlatformAirbnb},
	{keyword: "booking", platform: model.PlatformBookingCom},
	{keyword: "front", platform: model.PlatformDirect},
	{keyword: "web", platform: model.PlatformWebsite},
	{keyword: "agoda", platform: model.PlatformAgoda},
	{keyword: "ical", platform: model.PlatformICal},
}

type Status string

const (
	// StatusNoHeader: no line carried the required columns; nothing was read.
	StatusNoHeader Status = "no_header"
	// StatusEmpty: header found but the file had no usable rows and no row errors.
	StatusEmpty Status = "empty"
	// StatusMalformed: no usable rows, and at least one row error.
	StatusMalformed Status = "malformed"
	StatusReady     Status = "ready"
)

type Result struct {
	Records     []model.BookingRecord
	Errors      []string
	HeaderFound bool
	HeaderLine  int
}

func (r Result) Status() Status {
	switch {
	case !r.HeaderFound:
		return StatusNoHeader
	case len(r.Records) > 0:
		return StatusReady
	case len(r.Errors) == 0:
		return StatusEmpty
	default:
		return StatusMalformed
	}
}

type row struct {
	reference string
	guestName string
	unit      string
	platform  model.Platform
	guests    int
	checkIn   daterange.Date
	checkOut  daterange.Date
	amount    decimal.Decimal
	paid      decimal.Decimal
}

// Template is the blank export: the header line and no data rows.
func Template() string {
	return strings.Join(templateColumns, ",")
}

// ClassifyPlatform maps a free-text channel name onto a Platform.
func ClassifyPlatform(value string) model.Platform {
	lower := strings.ToLower(value)

	for _, rule := range platformRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.platform
		}
	}

	return model.PlatformDirect
}

// Parse reads delimited reservation text. The header may sit on any line; rows before
// it are ignored. Rows sharing a booking reference become sibling records whose
// amounts are split when the export repeated one combined total on every line.
func Parse(text string) Result {
	lines := lineBreak.Split(strings.TrimPrefix(text, bom), -1)

	header, headerIdx := findHeader(lines)
	if header == nil {
		return Result{Errors: []string{ErrMissingHeader}}
	}

	result := Result{HeaderFound: true, HeaderLine: headerIdx + 1}
	rows := make([]row, 0, len(lines)-headerIdx)

	for i := headerIdx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		r, ok, err := parseRow(header, splitFields(line))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", i+1, err))

			continue
		}

		if ok {
			rows = append(rows, r)
		}
	}

	result.Records = group(rows)

	return result
}

func findHeader(lines []string) (map[string]int, int) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitFields(line)
		index := make(map[string]int, len(fields))

		// a repeated column name resolves to its last occurrence
		for idx, field := range fields {
			index[strings.ToLower(field)] = idx
		}

		if hasAll(index, headerKeys) {
			return index, i
		}
	}

	return nil, -1
}

func hasAll(index map[string]int, keys []string) bool {
	for _, key := range keys {
		if _, ok := index[key]; !ok {
			return false
		}
	}

	return true
}

// splitFields reads one comma separated line, honouring quoted commas when the line is
// well formed and falling back to a plain split otherwise.
func splitFields(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	fields, err := reader.Read()
	if err != nil {
		fields = strings.Split(line, ",")
	}

	for i, field := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(field), `"`)
	}

	return fields
}

func parseRow(header map[string]int, fields []string) (row, bool, error) {
	get := func(column string) string {
		idx, ok := header[column]
		if !ok || idx >= len(fields) {
			return ""
		}

		return fields[idx]
	}

	unit, checkInRaw, checkOutRaw := get(ColumnUnit), get(ColumnCheckIn), get(ColumnCheckOut)
	if unit == "" || checkInRaw == "" || checkOutRaw == "" {
		return row{}, false, nil
	}

	checkIn, err := daterange.ParseDate(checkInRaw)
	if err != nil {
		return row{}, false, fmt.Errorf("check_in: %w", err)
	}

	checkOut, err := daterange.ParseDate(checkOutRaw)
	if err != nil {
		return row{}, false, fmt.Errorf("check_out: %w", err)
	}

	if !checkIn.Before(checkOut) {
		return row{}, false, fmt.Errorf("check_out %s must be after check_in %s", checkOut, checkIn)
	}

	reference := get(ColumnBookingID)
	if reference == "" {
		reference = PlaceholderPrefix + uuid.NewString()
	}

	guestName := get(ColumnGuestName)
	if guestName == "" {
		guestName = UnknownGuest
	}

	guests, err := strconv.Atoi(get(ColumnGuests))
	if err != nil || guests < 1 {
		guests = 1
	}

	return row{
		reference: reference,
		guestName: guestName,
		unit:      unit,
		platform:  ClassifyPlatform(get(ColumnPlatform)),
		guests:    guests,
		checkIn:   checkIn,
		checkOut:  checkOut,
		amount:    money.Parse(get(ColumnTotalAmount)),
		paid:      money.Parse(get(ColumnPaidAmount)),
	}, true, nil
}

func group(rows []row) []model.BookingRecord {
	order := make([]string, 0, len(rows))
	groups := make(map[string][]row, len(rows))

	for _, r := range rows {
		if _, ok := groups[r.reference]; !ok {
			order = append(order, r.reference)
		}

		groups[r.reference] = append(groups[r.reference], r)
	}

	records := make([]model.BookingRecord, 0, len(rows))

	for _, reference := range order {
		members := groups[reference]

		amountShare, splitAmount := sharedSplit(members, func(r row) decimal.Decimal { return r.amount })
		paidShare, splitPaid := sharedSplit(members, func(r row) decimal.Decimal { return r.paid })

		for _, r := range members {
			record := model.BookingRecord{
				ID:        uuid.NewString(),
				Reference: r.reference,
				GuestName: r.guestName,
				Unit:      r.unit,
				Platform:  r.platform,
				Guests:    r.guests,
				CheckIn:   r.checkIn,
				CheckOut:  r.checkOut,
				Amount:    r.amount,
				Paid:      r.paid,
				AddOns:    []model.AddOn{},
			}

			if splitAmount {
				record.Amount = amountShare
			}

			if splitPaid {
				record.Paid = paidShare
			}

			records = append(records, record)
		}
	}

	return records
}

// sharedSplit detects a combined total repeated on every line of a group. When all
// members carry the same positive value the per-unit share is returned. Differing
// values are treated as per-unit totals and left alone.
func sharedSplit(members []row, value func(row) decimal.Decimal) (decimal.Decimal, bool) {
	if len(members) < 2 {
		return decimal.Zero, false
	}

	first := value(members[0])
	if !first.IsPositive() {
		return decimal.Zero, false
	}

	for _, m := range members[1:] {
		if !money.NearlyEqual(value(m), first) {
			return decimal.Zero, false
		}
	}

	return money.Split(first, len(members)), true
}

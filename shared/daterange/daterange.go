// Package daterange holds calendar helpers for nightly-stay arithmetic.
//
// A Date is a plain calendar day with no time-of-day semantics. A Month is a
// "YYYY-MM" selector. Stay intervals are always half open: the check-in day is
// occupied, the check-out day is not.
package daterange

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Date is a calendar day stored as UTC midnight.
type Date struct {
	t time.Time
}

// NewDate builds a Date, normalising overflowing values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{t: t}, nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}

	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if raw == "" {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Month selects one calendar month.
type Month struct {
	year  int
	month time.Month
}

// ParseMonth parses a YYYY-MM key.
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", value, err)
	}

	return Month{year: t.Year(), month: t.Month()}, nil
}

// MustParseMonth is ParseMonth for literals known to be valid.
func MustParseMonth(value string) Month {
	m, err := ParseMonth(value)
	if err != nil {
		panic(err)
	}

	return m
}

// MonthOf returns the month a date falls in.
func MonthOf(d Date) Month {
	return Month{year: d.Year(), month: d.Month()}
}

func (m Month) Year() int { return m.year }

func (m Month) Month() time.Month { return m.month }

func (m Month) IsZero() bool { return m.year == 0 && m.month == 0 }

// First is the first day of the month.
func (m Month) First() Date { return NewDate(m.year, m.month, 1) }

// Next is the first day of the following month, the exclusive end of the window.
func (m Month) Next() Date { return NewDate(m.year, m.month+1, 1) }

// Days is the number of calendar days in the month, 0 for the zero Month.
func (m Month) Days() int { return DaysInMonth(m.year, int(m.month)) }

// Contains reports whether d falls inside the month.
func (m Month) Contains(d Date) bool {
	return !d.IsZero() && d.Year() == m.year && d.Month() == m.month
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}

	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Month) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("month must be a string: %w", err)
	}

	parsed, err := ParseMonth(raw)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// DaysInMonth returns the number of days in month (1-12) of year, leap years included.
// Out of range months yield 0.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Days enumerates every day in [start, end). It is empty when end is not after start.
func Days(start, end Date) []Date {
	if !start.Before(end) {
		return nil
	}

	days := make([]Date, 0, int(end.t.Sub(start.t).Hours()/24))
	for d := start; d.Before(end); d = d.AddDays(1) {
		days = append(days, d)
	}

	return days
}

// Clamp intersects [start, end) with the month window [First, Next).
// ok is false when the intersection is empty.
func (m Month) Clamp(start, end Date) (from, to Date, ok bool) {
	from, to = start, end

	if first := m.First(); from.Before(first) {
		from = first
	}

	if next := m.Next(); to.After(next) {
		to = next
	}

	return from, to, from.Before(to)
}

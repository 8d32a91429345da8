package calculator

import (
	"sort"
	"stayledger/internal/domains/booking/model"
	"stayledger/shared/daterange"
)

// IsOccupied reports whether any booking for unit covers the night of day.
// Check-out day itself is free.
func IsOccupied(unit string, day daterange.Date, bookings []model.BookingRecord) bool {
	for _, booking := range bookings {
		if booking.Unit != unit {
			continue
		}

		if !day.Before(booking.CheckIn) && day.Before(booking.CheckOut) {
			return true
		}
	}

	return false
}

// OccupiedDays returns the sorted distinct nights of month on which unit is booked.
// Overlapping bookings count a night once.
func OccupiedDays(unit string, month daterange.Month, bookings []model.BookingRecord) []daterange.Date {
	if month.Days() == 0 {
		return nil
	}

	seen := make(map[string]daterange.Date)

	for _, booking := range bookings {
		if booking.Unit != unit {
			continue
		}

		from, to, ok := month.Clamp(booking.CheckIn, booking.CheckOut)
		if !ok {
			continue
		}

		for _, day := range daterange.Days(from, to) {
			seen[day.String()] = day
		}
	}

	days := make([]daterange.Date, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	return days
}

// Occupancy is the percentage of nights in month on which unit is booked, in [0, 100].
func Occupancy(unit string, month daterange.Month, bookings []model.BookingRecord) float64 {
	total := month.Days()
	if total == 0 {
		return 0
	}

	return float64(len(OccupiedDays(unit, month, bookings))) / float64(total) * 100
}

// Average is the mean of values, 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

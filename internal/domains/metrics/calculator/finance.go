// Package calculator derives monthly financial and occupancy figures from booking
// records. Every function is pure and leaves its inputs untouched.
package calculator

import (
	"stayledger/internal/domains/booking/model"
	"stayledger/shared/daterange"
	"stayledger/shared/money"

	"github.com/shopspring/decimal"
)

// Cost incurred by every completed island hopping trip.
var (
	LaborCostPerTrip = decimal.NewFromInt(600)
	FuelCostPerTrip  = decimal.NewFromInt(2000)
)

type Metrics struct {
	Month            daterange.Month `json:"month"`
	BaseRevenue      decimal.Decimal `json:"base_revenue"`
	CashReceived     decimal.Decimal `json:"cash_received"`
	ExpectedRevenue  decimal.Decimal `json:"expected_revenue"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
	FixedExpenses    decimal.Decimal `json:"fixed_expenses"`
	VariableCosts    decimal.Decimal `json:"variable_costs"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetCashPosition  decimal.Decimal `json:"net_cash_position"`
	IslandHopTrips   int             `json:"island_hop_trips"`
	Bookings         int             `json:"bookings"`
}

// BreakEvenMet reports whether cash covers every expense for the month.
func (m Metrics) BreakEvenMet() bool {
	return !m.NetCashPosition.IsNegative()
}

// Compute aggregates the bookings checking in during month. Cash received counts paid
// room amounts and completed add-ons, expected revenue adds pre-sold add-ons to room
// revenue, and potential revenue adds every add-on regardless of state. Pass-through
// categories are left out of all three.
func Compute(bookings []model.BookingRecord, month daterange.Month, fixedExpenseTotal decimal.Decimal) Metrics {
	var (
		base, paid, actual, preSold, all decimal.Decimal
		trips, count                     int
	)

	for _, booking := range bookings {
		if !month.Contains(booking.CheckIn) {
			continue
		}

		count++
		base = base.Add(booking.Amount)
		paid = paid.Add(booking.Paid)

		for _, addOn := range booking.AddOns {
			if !addOn.Category.ProfitGenerating() {
				continue
			}

			switch addOn.State {
			case model.StateActual:
				actual = actual.Add(addOn.Amount)
				all = all.Add(addOn.Amount)

				if addOn.Category == model.CategoryIslandHopping {
					trips++
				}
			case model.StatePreSold:
				preSold = preSold.Add(addOn.Amount)
				all = all.Add(addOn.Amount)
			case model.StateForecasted:
				all = all.Add(addOn.Amount)
			case model.StateUnknown:
				// unrecognized states are in no revenue tier
			}
		}
	}

	fixed := money.Round(fixedExpenseTotal)
	variable := money.Round(LaborCostPerTrip.Add(FuelCostPerTrip).Mul(decimal.NewFromInt(int64(trips))))
	cash := money.Round(paid.Add(actual))
	total := fixed.Add(variable)

	return Metrics{
		Month:            month,
		BaseRevenue:      money.Round(base),
		CashReceived:     cash,
		ExpectedRevenue:  money.Round(base.Add(preSold)),
		PotentialRevenue: money.Round(base.Add(all)),
		FixedExpenses:    fixed,
		VariableCosts:    variable,
		TotalExpenses:    total,
		NetCashPosition:  cash.Sub(total),
		IslandHopTrips:   trips,
		Bookings:         count,
	}
}

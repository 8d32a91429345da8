package dto

import (
	"stayledger/internal/domains/metrics/calculator"
	unitModel "stayledger/internal/domains/unit/model"
	"stayledger/shared/daterange"

	"github.com/shopspring/decimal"
)

type UnitStats struct {
	Unit             string             `json:"unit"`
	Type             unitModel.UnitType `json:"type"`
	Bookings         int                `json:"bookings"`
	ProjectedRevenue decimal.Decimal    `json:"projected_revenue"`
	RealizedRevenue  decimal.Decimal    `json:"realized_revenue"`
	Occupancy        float64            `json:"occupancy"`
	GoalMet          bool               `json:"goal_met"`
}

type DashboardResponse struct {
	calculator.Metrics
	BreakEvenMet     bool        `json:"break_even_met"`
	OccupancyGoal    float64     `json:"occupancy_goal"`
	AverageOccupancy float64     `json:"average_occupancy"`
	Units            []UnitStats `json:"units"`
}

type OccupancyResponse struct {
	Unit         string   `json:"unit"`
	Month        string   `json:"month"`
	Occupancy    float64  `json:"occupancy"`
	OccupiedDays []string `json:"occupied_days"`
	DaysInMonth  int      `json:"days_in_month"`
}

type CalendarDay struct {
	Date     daterange.Date `json:"date"`
	Occupied bool           `json:"occupied"`
}

type CalendarRow struct {
	Unit      string        `json:"unit"`
	Occupancy float64       `json:"occupancy"`
	Days      []CalendarDay `json:"days"`
}

type CalendarResponse struct {
	Month daterange.Month `json:"month"`
	Units []CalendarRow   `json:"units"`
}

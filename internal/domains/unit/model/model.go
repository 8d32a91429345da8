package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"stayledger/internal/domains/booking/model"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StoreKey   = "pc_units"
	EntityName = "unit"

	DefaultMaxGuests = 4
)

var DefaultNightlyRate = decimal.NewFromInt(5000)

type UnitType string

const (
	TypePrivateRoom   UnitType = "Private Room"
	TypeEntireUnit    UnitType = "Entire Unit"
	TypeDormBedMixed  UnitType = "Dorm Bed (Mixed)"
	TypeDormBedFemale UnitType = "Dorm Bed (Female)"
	TypeDormBedMale   UnitType = "Dorm Bed (Male)"
	TypeCapsule       UnitType = "Capsule"
	TypeOther         UnitType = "Other"
)

var unitTypes = []UnitType{
	TypePrivateRoom, TypeEntireUnit, TypeDormBedMixed, TypeDormBedFemale, TypeDormBedMale, TypeCapsule, TypeOther,
}

func ParseUnitType(value string) UnitType {
	for _, t := range unitTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(value)) {
			return t
		}
	}

	return TypeOther
}

func (t UnitType) IsValid() bool {
	return slices.Contains(unitTypes, t)
}

func (t *UnitType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unit type must be a string: %w", err)
	}

	*t = ParseUnitType(raw)

	return nil
}

// UnitDefinition describes a rentable unit. Name is matched against BookingRecord.Unit.
type UnitDefinition struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               UnitType        `json:"type"`
	MaxGuests          int             `json:"maxGuests"`
	BaseNightlyRate    decimal.Decimal `json:"baseNightlyRate"`
	IncludeInOccupancy bool            `json:"includeInOccupancy"`
}

// InferFromBookings builds one default unit per distinct unit name, sorted by name.
func InferFromBookings(bookings []model.BookingRecord) []UnitDefinition {
	names := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		if booking.Unit != "" {
			names[booking.Unit] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}

	sort.Strings(sorted)

	units := make([]UnitDefinition, 0, len(sorted))
	for _, name := range sorted {
		units = append(units, UnitDefinition{
			ID:                 uuid.NewString(),
			Name:               name,
			Type:               TypeEntireUnit,
			MaxGuests:          DefaultMaxGuests,
			BaseNightlyRate:    DefaultNightlyRate,
			IncludeInOccupancy: true,
		})
	}

	return units
}

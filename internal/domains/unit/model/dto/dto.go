package dto

import (
	"stayledger/internal/domains/unit/model"
	"stayledger/shared/money"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateUnitRequest struct {
	Name               string          `json:"name"               validate:"required,max=64"`
	Type               model.UnitType  `json:"type"               validate:"omitempty,enum"`
	MaxGuests          int             `json:"maxGuests"          validate:"gte=0"`
	BaseNightlyRate    decimal.Decimal `json:"baseNightlyRate"    validate:"gte=0"`
	IncludeInOccupancy *bool           `json:"includeInOccupancy"`
}

func (c *CreateUnitRequest) ToModel() model.UnitDefinition {
	unit := model.UnitDefinition{
		ID:                 uuid.NewString(),
		Name:               strings.TrimSpace(c.Name),
		Type:               c.Type,
		MaxGuests:          c.MaxGuests,
		BaseNightlyRate:    money.Round(c.BaseNightlyRate),
		IncludeInOccupancy: true,
	}

	if unit.Type == "" {
		unit.Type = model.TypeEntireUnit
	}

	if unit.MaxGuests < 1 {
		unit.MaxGuests = model.DefaultMaxGuests
	}

	if c.IncludeInOccupancy != nil {
		unit.IncludeInOccupancy = *c.IncludeInOccupancy
	}

	return unit
}

// UpdateUnitRequest carries a partial update; nil fields are left unchanged.
type UpdateUnitRequest struct {
	Name               *string          `json:"name"               validate:"omitempty,min=1,max=64"`
	Type               *model.UnitType  `json:"type"               validate:"omitempty,enum"`
	MaxGuests          *int             `json:"maxGuests"          validate:"omitempty,gte=1"`
	BaseNightlyRate    *decimal.Decimal `json:"baseNightlyRate"    validate:"omitempty,gte=0"`
	IncludeInOccupancy *bool            `json:"includeInOccupancy"`
}

func (u *UpdateUnitRequest) Apply(unit *model.UnitDefinition) {
	if u.Name != nil {
		unit.Name = strings.TrimSpace(*u.Name)
	}

	if u.Type != nil {
		unit.Type = *u.Type
	}

	if u.MaxGuests != nil {
		unit.MaxGuests = *u.MaxGuests
	}

	if u.BaseNightlyRate != nil {
		unit.BaseNightlyRate = money.Round(*u.BaseNightlyRate)
	}

	if u.IncludeInOccupancy != nil {
		unit.IncludeInOccupancy = *u.IncludeInOccupancy
	}
}

type GetUnitsResponse struct {
	Units     []model.UnitDefinition `json:"units"`
	TotalData int                    `json:"total_data"`
}

func (r *GetUnitsResponse) FromModels(units []model.UnitDefinition) {
	r.Units = units
	if r.Units == nil {
		r.Units = []model.UnitDefinition{}
	}

	r.TotalData = len(r.Units)
}

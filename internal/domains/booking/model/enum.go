package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type Platform string

const (
	PlatformDirect     Platform = "Direct"
	PlatformAirbnb     Platform = "Airbnb"
	PlatformBookingCom Platform = "Booking.com"
	PlatformAgoda      Platform = "Agoda"
	PlatformICal       Platform = "iCal"
	PlatformWebsite    Platform = "Website"
	// PlatformUnknown keeps persisted records with an unrecognised channel loadable.
	PlatformUnknown Platform = "Unknown"
)

var platforms = []Platform{PlatformDirect, PlatformAirbnb, PlatformBookingCom, PlatformAgoda, PlatformICal, PlatformWebsite}

// ParsePlatform matches the canonical names case-insensitively.
func ParsePlatform(value string) Platform {
	for _, p := range platforms {
		if strings.EqualFold(string(p), strings.TrimSpace(value)) {
			return p
		}
	}

	return PlatformUnknown
}

func (p Platform) IsValid() bool {
	return slices.Contains(platforms, p)
}

func (p *Platform) UnmarshalJSON(data []byte) error {
	raw, err := unquote(data)
	if err != nil {
		return err
	}

	*p = ParsePlatform(raw)

	return nil
}

type AddOnCategory string

const (
	CategoryTours          AddOnCategory = "Tours"
	CategoryIslandHopping  AddOnCategory = "Island Hopping"
	CategoryFoodBeverage   AddOnCategory = "Food & Beverage"
	CategoryTransportation AddOnCategory = "Transportation"
	CategoryOther          AddOnCategory = "Other"
)

var categories = []AddOnCategory{CategoryTours, CategoryIslandHopping, CategoryFoodBeverage, CategoryTransportation, CategoryOther}

func ParseAddOnCategory(value string) AddOnCategory {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(value)) {
			return c
		}
	}

	return CategoryOther
}

// ProfitGenerating is false for pass-through categories, which never count as revenue.
func (c AddOnCategory) ProfitGenerating() bool {
	return c != CategoryTransportation
}

func (c AddOnCategory) IsValid() bool {
	return slices.Contains(categories, c)
}

func (c *AddOnCategory) UnmarshalJSON(data []byte) error {
	raw, err := unquote(data)
	if err != nil {
		return err
	}

	*c = ParseAddOnCategory(raw)

	return nil
}

// AddOnState moves freely between values; there is no enforced ordering.
type AddOnState string

const (
	StateForecasted AddOnState = "forecasted"
	StatePreSold    AddOnState = "pre_sold"
	StateActual     AddOnState = "actual"
	StateUnknown    AddOnState = "unknown"
)

var states = []AddOnState{StateForecasted, StatePreSold, StateActual}

func ParseAddOnState(value string) AddOnState {
	for _, s := range states {
		if strings.EqualFold(string(s), strings.TrimSpace(value)) {
			return s
		}
	}

	return StateUnknown
}

func (s AddOnState) IsValid() bool {
	return slices.Contains(states, s)
}

func (s *AddOnState) UnmarshalJSON(data []byte) error {
	raw, err := unquote(data)
	if err != nil {
		return err
	}

	*s = ParseAddOnState(raw)

	return nil
}

func unquote(data []byte) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("enum value must be a string: %w", err)
	}

	return raw, nil
}

package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"stayledger/shared/daterange"
	"stayledger/shared/money"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	BaseStoreKey    = "expenses:base"
	MonthlyStoreKey = "expenses:monthly"

	EntityBase    = "base expense"
	EntityMonthly = "monthly expense"
)

type Kind string

const (
	KindBase    Kind = "base"
	KindMonthly Kind = "monthly"
)

func ParseKind(value string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindBase:
		return KindBase, true
	case KindMonthly:
		return KindMonthly, true
	default:
		return "", false
	}
}

type Category string

const (
	CategoryLabor                Category = "Labor"
	CategoryFuel                 Category = "Fuel"
	CategoryFoodBeverage         Category = "Food & Beverage"
	CategoryProfessionalServices Category = "Professional Services"
	CategoryCleaningSupplies     Category = "Cleaning & Supplies"
	CategoryRepairsMaintenance   Category = "Repairs & Maintenance"
	CategoryUtilitiesTelecom     Category = "Utilities / Telecom"
	CategoryOther                Category = "Other"
)

var categories = []Category{
	CategoryLabor, CategoryFuel, CategoryFoodBeverage, CategoryProfessionalServices,
	CategoryCleaningSupplies, CategoryRepairsMaintenance, CategoryUtilitiesTelecom, CategoryOther,
}

func ParseCategory(value string) Category {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(value)) {
			return c
		}
	}

	return CategoryOther
}

func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("expense category must be a string: %w", err)
	}

	*c = ParseCategory(raw)

	return nil
}

// Expense is either a recurring BaseExpense or a one-month MonthlyExpense.
type Expense interface {
	ExpenseID() string
	ExpenseKind() Kind
	// AppliesTo reports whether the expense is charged in month.
	AppliesTo(month daterange.Month) bool
	Cost() decimal.Decimal
}

type BaseExpense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Active   bool            `json:"active"`
}

func (e BaseExpense) ExpenseID() string                { return e.ID }
func (e BaseExpense) ExpenseKind() Kind                { return KindBase }
func (e BaseExpense) AppliesTo(_ daterange.Month) bool { return e.Active }
func (e BaseExpense) Cost() decimal.Decimal            { return e.Amount }

func (e BaseExpense) MarshalJSON() ([]byte, error) {
	type alias BaseExpense

	return json.Marshal(struct {
		alias
		IsRecurring bool `json:"isRecurring"`
	}{alias: alias(e), IsRecurring: true})
}

type MonthlyExpense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    daterange.Month `json:"month"`
}

func (e MonthlyExpense) ExpenseID() string                    { return e.ID }
func (e MonthlyExpense) ExpenseKind() Kind                    { return KindMonthly }
func (e MonthlyExpense) AppliesTo(month daterange.Month) bool { return e.Month == month }
func (e MonthlyExpense) Cost() decimal.Decimal                { return e.Amount }

func (e MonthlyExpense) MarshalJSON() ([]byte, error) {
	type alias MonthlyExpense

	return json.Marshal(struct {
		alias
		IsRecurring bool `json:"isRecurring"`
	}{alias: alias(e), IsRecurring: false})
}

// Combine lists every expense of both kinds as one slice.
func Combine(base []BaseExpense, monthly []MonthlyExpense) []Expense {
	expenses := make([]Expense, 0, len(base)+len(monthly))
	for _, e := range base {
		expenses = append(expenses, e)
	}

	for _, e := range monthly {
		expenses = append(expenses, e)
	}

	return expenses
}

// FixedTotal sums every expense charged in month.
func FixedTotal(expenses []Expense, month daterange.Month) decimal.Decimal {
	total := decimal.Zero

	for _, e := range expenses {
		if e.AppliesTo(month) {
			total = total.Add(e.Cost())
		}
	}

	return money.Round(total)
}

// ForMonth filters monthly expenses down to those pinned to month.
func ForMonth(monthly []MonthlyExpense, month daterange.Month) []MonthlyExpense {
	out := make([]MonthlyExpense, 0, len(monthly))

	for _, e := range monthly {
		if e.Month == month {
			out = append(out, e)
		}
	}

	return out
}

package dto

import (
	"stayledger/internal/domains/expense/model"
	"stayledger/shared/daterange"
	"stayledger/shared/money"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Category    model.Category  `json:"category"    validate:"omitempty,enum"`
	Amount      decimal.Decimal `json:"amount"      validate:"gte=0"`
	IsRecurring bool            `json:"isRecurring"`
}

func (c *CreateExpenseRequest) category() model.Category {
	if c.Category == "" {
		return model.CategoryOther
	}

	return c.Category
}

// ToBase builds a recurring expense, active from creation.
func (c *CreateExpenseRequest) ToBase() model.BaseExpense {
	return model.BaseExpense{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.Name),
		Category: c.category(),
		Amount:   money.Round(c.Amount),
		Active:   true,
	}
}

// ToMonthly builds a one-off expense pinned to month.
func (c *CreateExpenseRequest) ToMonthly(month daterange.Month) model.MonthlyExpense {
	return model.MonthlyExpense{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.Name),
		Category: c.category(),
		Amount:   money.Round(c.Amount),
		Month:    month,
	}
}

// UpdateBaseExpenseRequest carries a partial update; nil fields are left unchanged.
type UpdateBaseExpenseRequest struct {
	Name     *string          `json:"name"     validate:"omitempty,min=1,max=100"`
	Category *model.Category  `json:"category" validate:"omitempty,enum"`
	Amount   *decimal.Decimal `json:"amount"   validate:"omitempty,gte=0"`
	Active   *bool            `json:"active"`
}

func (u *UpdateBaseExpenseRequest) Apply(expense *model.BaseExpense) {
	if u.Name != nil {
		expense.Name = strings.TrimSpace(*u.Name)
	}

	if u.Category != nil {
		expense.Category = *u.Category
	}

	if u.Amount != nil {
		expense.Amount = money.Round(*u.Amount)
	}

	if u.Active != nil {
		expense.Active = *u.Active
	}
}

type GetExpensesResponse struct {
	Month      daterange.Month        `json:"month"`
	Base       []model.BaseExpense    `json:"base"`
	Monthly    []model.MonthlyExpense `json:"monthly"`
	FixedTotal decimal.Decimal        `json:"fixed_total"`
}

func (r *GetExpensesResponse) FromModels(month daterange.Month, base []model.BaseExpense, monthly []model.MonthlyExpense) {
	r.Month = month

	r.Base = base
	if r.Base == nil {
		r.Base = []model.BaseExpense{}
	}

	r.Monthly = model.ForMonth(monthly, month)
	r.FixedTotal = model.FixedTotal(model.Combine(r.Base, r.Monthly), month)
}

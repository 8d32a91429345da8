package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayledger/infras/otel"
	"stayledger/internal/domains/expense/model"
	gRepo "stayledger/shared/repository"
	"stayledger/shared/store"
)

type Expense interface {
	LoadBase(ctx context.Context) ([]model.BaseExpense, error)
	SaveBase(ctx context.Context, expenses []model.BaseExpense) error
	LoadMonthly(ctx context.Context) ([]model.MonthlyExpense, error)
	SaveMonthly(ctx context.Context, expenses []model.MonthlyExpense) error
}

type repositoryImpl struct {
	base    gRepo.Collection[model.BaseExpense]
	monthly gRepo.Collection[model.MonthlyExpense]
}

func New(st store.Store, otel otel.Otel) Expense {
	return &repositoryImpl{
		base:    gRepo.NewCollection[model.BaseExpense](model.EntityBase, model.BaseStoreKey, st, otel),
		monthly: gRepo.NewCollection[model.MonthlyExpense](model.EntityMonthly, model.MonthlyStoreKey, st, otel),
	}
}

func (r *repositoryImpl) LoadBase(ctx context.Context) ([]model.BaseExpense, error) {
	return r.base.Load(ctx)
}

func (r *repositoryImpl) SaveBase(ctx context.Context, expenses []model.BaseExpense) error {
	return r.base.Save(ctx, expenses)
}

func (r *repositoryImpl) LoadMonthly(ctx context.Context) ([]model.MonthlyExpense, error) {
	return r.monthly.Load(ctx)
}

func (r *repositoryImpl) SaveMonthly(ctx context.Context, expenses []model.MonthlyExpense) error {
	return r.monthly.Save(ctx, expenses)
}

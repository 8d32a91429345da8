package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayledger/infras/otel"
	"stayledger/internal/domains/unit/model"
	gRepo "stayledger/shared/repository"
	"stayledger/shared/store"
)

type Unit interface {
	Load(ctx context.Context) ([]model.UnitDefinition, error)
	Save(ctx context.Context, units []model.UnitDefinition) error
}

type repositoryImpl struct {
	gRepo.Collection[model.UnitDefinition]
}

func New(st store.Store, otel otel.Otel) Unit {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.UnitDefinition](model.EntityName, model.StoreKey, st, otel),
	}
}

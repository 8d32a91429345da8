package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayledger/infras/otel"
	"stayledger/internal/domains/booking/model"
	gRepo "stayledger/shared/repository"
	"stayledger/shared/store"
)

type Booking interface {
	Load(ctx context.Context) ([]model.BookingRecord, error)
	Save(ctx context.Context, bookings []model.BookingRecord) error
}

type repositoryImpl struct {
	gRepo.Collection[model.BookingRecord]
}

func New(st store.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.BookingRecord](model.EntityName, model.StoreKey, st, otel),
	}
}

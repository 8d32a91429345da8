// Package repository maps a store key onto a typed collection. The whole collection is
// read and written as one JSON array.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stayledger/infras/otel"
	"stayledger/shared/constant"
	"stayledger/shared/store"

	"github.com/rs/zerolog/log"
)

type Collection[T any] struct {
	store   store.Store
	otel    otel.Otel
	key     string
	entitas string
}

func NewCollection[T any](entitasName, key string, st store.Store, otl otel.Otel) Collection[T] {
	return Collection[T]{
		store:   st,
		otel:    otl,
		key:     key,
		entitas: entitasName,
	}
}

// Load returns the stored items, an empty slice when nothing was saved yet.
func (c *Collection[T]) Load(ctx context.Context) (items []T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.load", constant.OtelRepositoryScopeName, c.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err := c.store.Load(ctx, c.key)
	if errors.Is(err, store.ErrNotFound) {
		return []T{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msgf("failed to load %s collection", c.entitas)

		return nil, fmt.Errorf("failed to load %s collection: %w", c.entitas, err)
	}

	if err = json.Unmarshal(data, &items); err != nil {
		log.Error().Err(err).Str("key", c.key).Msgf("failed to decode %s collection", c.entitas)

		return nil, fmt.Errorf("failed to decode %s collection: %w", c.entitas, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save replaces the stored collection with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.save", constant.OtelRepositoryScopeName, c.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if items == nil {
		items = []T{}
	}

	scope.SetAttribute("collection.size", len(items))

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", c.entitas, err)
	}

	if err = c.store.Save(ctx, c.key, data); err != nil {
		log.Error().Err(err).Str("key", c.key).Msgf("failed to save %s collection", c.entitas)

		return fmt.Errorf("failed to save %s collection: %w", c.entitas, err)
	}

	return nil
}

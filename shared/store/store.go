// Package store persists whole JSON snapshots under string keys. Every backend writes
// the full value on Save; there are no partial updates.
package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/infras/redis"
	"stayledger/infras/s3"
	"stayledger/shared/constant"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("store: key not found")

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// New selects the backend named in config. Unknown names fall back to redis.
func New(cfg *config.Config, ot otel.Otel) Store {
	var backend Store

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		backend = NewMemory()
	case config.StoreBackendPostgres:
		db := postgres.New(cfg)
		if db == nil {
			log.Fatal().Msg("Failed to open snapshot database")
		}

		backend = NewPostgres(db)
	case config.StoreBackendS3:
		backend = NewS3(s3.New(cfg, ot))
	default:
		backend = NewRedis(redis.New(cfg))
	}

	log.Info().Str("backend", cfg.Store.Backend).Str("prefix", cfg.Store.KeyPrefix).Msg("Snapshot store initialized")

	return Instrument(WithPrefix(backend, cfg.Store.KeyPrefix), ot)
}

type prefixed struct {
	next   Store
	prefix string
}

// WithPrefix namespaces every key. An empty prefix returns next unchanged.
func WithPrefix(next Store, prefix string) Store {
	if prefix == constant.Empty {
		return next
	}

	return &prefixed{next: next, prefix: prefix}
}

func (p *prefixed) Load(ctx context.Context, key string) ([]byte, error) {
	return p.next.Load(ctx, p.prefix+key)
}

func (p *prefixed) Save(ctx context.Context, key string, value []byte) error {
	return p.next.Save(ctx, p.prefix+key, value)
}

type instrumented struct {
	next Store
	otel otel.Otel
}

// Instrument opens a span around every call.
func Instrument(next Store, ot otel.Otel) Store {
	return &instrumented{next: next, otel: ot}
}

func (i *instrumented) Load(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer func() {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceIfError(err)
		}
	}()

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	value, err = i.next.Load(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return value, err
}

func (i *instrumented) Save(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelStoreKeyAttribute: key,
		"store.bytes":                  len(value),
	})

	if err = i.next.Save(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

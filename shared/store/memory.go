package store

import (
	"bytes"
	"context"

	"github.com/patrickmn/go-cache"
)

type memoryStore struct {
	items *cache.Cache
}

// NewMemory keeps snapshots in process. Values never expire.
func NewMemory() Store {
	return &memoryStore{items: cache.New(cache.NoExpiration, 0)}
}

func (m *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	value, ok := m.items.Get(key)
	if !ok {
		return nil, ErrNotFound
	}

	data, _ := value.([]byte)

	return bytes.Clone(data), nil
}

func (m *memoryStore) Save(_ context.Context, key string, value []byte) error {
	m.items.Set(key, bytes.Clone(value), cache.NoExpiration)

	return nil
}

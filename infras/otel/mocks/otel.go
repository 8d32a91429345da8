package mocks

import (
	"context"
	"stayledger/infras/otel"
	"sync"
)

// Otel is an in-memory tracer that remembers every scope it opened.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope(spanName)

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans lists the span names opened so far, in order.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	names := make([]string, 0, len(o.scopes))
	for _, scope := range o.scopes {
		names = append(names, scope.Name)
	}

	return names
}

func NewOtel() *Otel {
	return &Otel{}
}

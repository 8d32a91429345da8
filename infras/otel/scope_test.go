package otel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

type month string

func (m month) String() string { return string(m) }

func TestToAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "G1", want: attribute.StringValue("G1")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(9), want: attribute.Int64Value(9)},
		{name: "float", value: 22.58, want: attribute.Float64Value(22.58)},
		{name: "decimal", value: decimal.RequireFromString("3333.33"), want: attribute.Float64Value(3333.33)},
		{name: "time", value: time.Date(2025, 12, 20, 8, 0, 0, 0, time.UTC), want: attribute.StringValue("2025-12-20T08:00:00Z")},
		{name: "strings", value: []string{"a", "b"}, want: attribute.StringSliceValue([]string{"a", "b"})},
		{name: "stringer", value: month("2025-12"), want: attribute.StringValue("2025-12")},
		{name: "fallback", value: struct{ N int }{N: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

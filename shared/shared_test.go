package shared_test

import (
	"context"
	"errors"
	"stayledger/shared"
	cacheMocks "stayledger/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "metrics", expected: "metrics"},
		{name: "with parts", prefix: "metrics:dashboard", parts: []string{"2025-12", "70"}, expected: "metrics:dashboard:2025-12:70"},
		{name: "empty parts skipped", prefix: "bookings", parts: []string{"", "G1"}, expected: "bookings:G1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "metrics").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "calendar").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "metrics")
	shared.InvalidateCaches(context.Background(), mockCache, "calendar")
}

func TestConvertStringToFloat(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToFloat(""))
	assert.Nil(t, shared.ConvertStringToFloat("seventy"))

	value := shared.ConvertStringToFloat(" 72.5 ")
	if assert.NotNil(t, value) {
		assert.InDelta(t, 72.5, *value, 0.0001)
	}
}

package shared

import (
	"context"
	"stayledger/shared/cache"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and the non-empty parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for _, part := range parts {
		if part == "" {
			continue
		}

		builder.WriteString(cacheKeySeparator)
		builder.WriteString(part)
	}

	return builder.String()
}

// InvalidateCaches clears every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}

// ConvertStringToFloat parses an optional numeric query value.
func ConvertStringToFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return nil
	}

	return &parsed
}

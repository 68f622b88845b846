package domain

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when an upload id has no live session
// (unknown id or expired TTL).
var ErrSessionNotFound = errors.New("session not found")

// Cache stores JSON-encoded values under a TTL. Sessions and computed
// reports go through it; an expired entry is simply a miss.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Segmenter splits text into candidate terms. Implementations must
// handle mixed CJK/Latin input where word boundaries are not
// whitespace-delimited.
type Segmenter interface {
	Segment(text string) []string
}

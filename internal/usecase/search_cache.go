package usecase

import (
	"context"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Generational stores report a value that changes on every mutation. Listing
// cache keys include it so a result computed from an older snapshot is never
// served after a write.
type Generational interface {
	Generation() uint64
}

package pagecache

import (
	"context"
	"time"
)

// PageCache stores rendered pages as opaque blobs with a TTL.
// There is no invalidation hook on writes: entries go stale until they expire or Clear is called.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, page []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}

package ports

import "context"

// CatalogCache stores the last known-good catalog payload. Save must appear
// atomic to a concurrent Read; Read returns domain.ErrCacheMiss for a
// missing or unreadable record.
type CatalogCache interface {
	Save(ctx context.Context, payload []byte) error
	Read(ctx context.Context) ([]byte, error)
}

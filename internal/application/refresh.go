package application

import (
	"context"
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// CatalogResult is what the presentation layer renders after a refresh.
type CatalogResult struct {
	Catalog   domain.Catalog
	FromCache bool
	// Offline mirrors FromCache for the currently visible catalog and
	// drives the persistent offline indicator.
	Offline bool
	Token   uint64
}

// RefreshCatalog fetches the live catalog, falling back to the cached
// payload when the service is unreachable. Only the cache-less failure is
// an error; a cache hit degrades to offline mode instead.
func (c *Coordinator) RefreshCatalog(ctx context.Context) (CatalogResult, error) {
	var result CatalogResult
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = c.refresh(ctx)
		return err
	})
	return result, err
}

func (c *Coordinator) refresh(ctx context.Context) (CatalogResult, error) {
	token := c.refreshSeq.Add(1)

	c.mu.Lock()
	userID := 0
	orgID := 0
	if c.profile != nil {
		userID = c.profile.UserID
		orgID = c.profile.PrimaryOrgID()
	}
	c.mu.Unlock()

	entries, err := c.fetchLive(ctx, userID, orgID)
	if err == nil {
		return c.commitRefresh(token, domain.NewCatalog(entries), false), nil
	}
	if ctx.Err() != nil {
		return CatalogResult{}, ctx.Err()
	}

	cached, cacheErr := c.cache.Read(ctx)
	if cacheErr == nil {
		if entries, parseErr := c.api.ParseEntries(cached); parseErr == nil {
			return c.commitRefresh(token, domain.NewCatalog(entries), true), nil
		}
	}

	return CatalogResult{}, fmt.Errorf("refresh catalog: %w", err)
}

// fetchLive fetches and parses the charts, merges the per-user library when
// an identity with org context exists, and saves the raw payload on
// success. The cache write is best effort and never blocks the success
// path.
func (c *Coordinator) fetchLive(ctx context.Context, userID, orgID int) ([]domain.Entry, error) {
	payload, err := c.api.FetchCharts(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := c.api.ParseEntries(payload)
	if err != nil {
		return nil, err
	}

	if userID > 0 && orgID > 0 {
		library, err := c.api.FetchLibrary(ctx, userID, orgID)
		if err != nil {
			return nil, err
		}
		entries = domain.MergeLibrary(entries, library)
	}

	_ = c.cache.Save(ctx, payload)
	return entries, nil
}

// commitRefresh applies a completed refresh under the last-writer-wins
// rule: a result whose token is older than one already applied is
// discarded, and the caller sees the newer visible state instead.
func (c *Coordinator) commitRefresh(token uint64, catalog domain.Catalog, fromCache bool) CatalogResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token > c.appliedSeq {
		c.appliedSeq = token
		c.catalog = catalog
		c.offline = fromCache
		c.phase = PhaseReady
	}

	return CatalogResult{
		Catalog:   c.catalog,
		FromCache: c.offline,
		Offline:   c.offline,
		Token:     c.appliedSeq,
	}
}

// internal/page/service.go
//
// Cached page-lookup service.
//
// Context
// -------
// SEO pages are crawled in bursts, so the raw ByURL query sits behind a
// small read-through layer: an LRU of immutable Record snapshots plus a
// singleflight group that collapses concurrent lookups for the same URL
// into one query.  Every database call carries a bounded timeout; the
// resolver treats any failure here as a miss and falls through to the
// static tiers, keeping pages up even when the database is not.
//
// Notes
// -----
// • Cache entries are value snapshots with TTL expiry, never mutated in
//   place (see internal/cache).
// • Misses are not negatively cached; a page publish should be visible on
//   the next request, not after a TTL.

package page

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/singleflight"

	"github.com/wasatchbuilt/siteengine/internal/cache"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// Defaults for the read-through layer.
const (
	DefaultTimeout  = 750 * time.Millisecond
	DefaultCacheCap = 1024
	DefaultCacheTTL = 5 * time.Minute
)

// Service answers page lookups through the snapshot cache.
type Service struct {
	db      *sqlx.DB
	cache   *cache.LRU
	sfg     singleflight.Group
	timeout time.Duration
}

// NewService wires the cache and timeout around a content database pool.
// A zero timeout selects DefaultTimeout.
func NewService(db *sqlx.DB, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		db:      db,
		cache:   cache.New(DefaultCacheCap, DefaultCacheTTL),
		timeout: timeout,
	}
}

// ByURL returns the published page snapshot for the URL pair, ErrNotFound
// on a miss, or the underlying query error (timeout included) otherwise.
func (s *Service) ByURL(ctx context.Context, citySlug, serviceSlug string) (*Record, error) {
	key := slug.Make(citySlug) + "|" + slug.Make(serviceSlug)

	if v, ok := s.cache.Get(key); ok {
		return v.(*Record), nil
	}

	v, err, _ := s.sfg.Do(key, func() (any, error) {
		qctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		rec, err := ByURL(qctx, s.db, citySlug, serviceSlug)
		if err != nil {
			return nil, err
		}
		s.cache.Add(key, rec)
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}

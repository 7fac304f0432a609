// internal/resolve/resolver.go
//
// Tiered content resolution for landing-page requests.
//
// Context
// -------
// Every page request names a (city, service) pair.  Content for that pair
// can live in three places, in strict priority order:
//
//   1. The page database — editor-authored overrides, authoritative when
//      present.
//   2. The landing-page catalog + curated content store — the static tier
//      that covers the full city × service grid.
//   3. Nowhere — in which case the fuzzy matcher proposes alternatives.
//
// Workflow
// --------
// Resolve walks the tiers:
//
//	DB lookup ── hit ──→ compose (DB fields override static fallbacks)
//	   │ miss/error
//	Catalog index ── hit ──→ compose from static tiers
//	   │ miss
//	Fuzzy matcher ──→ NOT_FOUND carrying ranked suggestions
//
// A database error or timeout is logged, counted, and treated as a miss:
// SEO pages must stay up when the database is not.  A confident fuzzy
// match never silently serves different content than the URL names; the
// page layer decides between a “did you mean” page and a 404.
//
// Notes
// -----
// • Absence is a normal branch, not an error.  Resolve returns an error
//   only when the resolver itself is unusable (nil index).
// • The resolver holds only immutable collaborators and is safe for
//   concurrent use.

package resolve

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/match"
	"github.com/wasatchbuilt/siteengine/internal/metrics"
	"github.com/wasatchbuilt/siteengine/internal/page"
)

// Source names the tier a resolved page came from.
type Source string

const (
	SourceDatabase Source = "database"
	SourceCatalog  Source = "catalog"
)

// ErrNoIndex is returned when the resolver was built without a catalog.
var ErrNoIndex = errors.New("resolve: catalog index not configured")

// Lookup abstracts the database page tier.  page.Service satisfies it.
type Lookup interface {
	ByURL(ctx context.Context, citySlug, serviceSlug string) (*page.Record, error)
}

// Resolution is the outcome of one request: either a composed page or a
// not-found carrying zero or more suggestions.
type Resolution struct {
	Found       bool
	Page        *PageContent
	Suggestions []match.Suggestion
}

// Resolver wires the tiers together.  Construct with New; all fields are
// read-only afterwards.
type Resolver struct {
	idx     *catalog.Index
	store   *content.Store
	matcher *match.Matcher
	lookup  Lookup // nil disables the database tier
	log     *zap.SugaredLogger
}

// New builds a Resolver.  store may be nil (no curated fallback content),
// lookup may be nil (static-only deployment), log may be nil (global
// logger).
func New(idx *catalog.Index, store *content.Store, matcher *match.Matcher, lookup Lookup, log *zap.SugaredLogger) *Resolver {
	if matcher == nil {
		matcher = match.New(0)
	}
	if log == nil {
		log = zap.S()
	}
	return &Resolver{idx: idx, store: store, matcher: matcher, lookup: lookup, log: log}
}

// Resolve maps raw request slugs to renderable page content.
func (r *Resolver) Resolve(ctx context.Context, citySlugRaw, serviceSlugRaw string) (*Resolution, error) {
	if r.idx == nil {
		return nil, ErrNoIndex
	}

	// Tier 1: database.
	if r.lookup != nil {
		rec, err := r.lookup.ByURL(ctx, citySlugRaw, serviceSlugRaw)
		switch {
		case err == nil:
			metrics.ResolveDBHitTotal.Inc()
			pc := r.compose(citySlugRaw, serviceSlugRaw, rec)
			return &Resolution{Found: true, Page: pc}, nil
		case errors.Is(err, page.ErrNotFound):
			// normal miss, fall through
		default:
			metrics.ResolveDBErrorTotal.Inc()
			r.log.Warnw("page lookup failed, falling back to static tier",
				"city", citySlugRaw, "service", serviceSlugRaw, "err", err)
		}
	}

	// Tier 2: catalog index.
	if _, ok := r.idx.FindByURL(citySlugRaw, serviceSlugRaw); ok {
		metrics.ResolveCatalogHitTotal.Inc()
		pc := r.compose(citySlugRaw, serviceSlugRaw, nil)
		return &Resolution{Found: true, Page: pc}, nil
	}

	// Tier 3: fuzzy suggestions.
	res := r.matcher.ClosestMatches(citySlugRaw, serviceSlugRaw, r.idx)
	if len(res.Suggestions) > 0 {
		metrics.ResolveSuggestTotal.Inc()
	} else {
		metrics.ResolveNotFoundTotal.Inc()
	}
	return &Resolution{Found: false, Suggestions: res.Suggestions}, nil
}

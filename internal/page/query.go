// internal/page/query.go
//
// Page-table query helpers.
//
// Context
// -------
// Read-only access to the **page** table for the resolution pipeline.
// Exactly one parameterised SELECT per helper; drafts (NULL published_at)
// are excluded at SQL level so callers never see them.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB connected to the content database.
//  2. ByURL executes one SELECT with the normalized slug pair.
//  3. The row is scanned into `page.Record`, which mirrors the current
//     schema.
//  4. A missing row maps to ErrNotFound; every other error is returned
//     verbatim so the caller can wrap or log it.
//
// Notes
// -----
//   - Column list matches the fields in `Record`; update both together.

package page

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// ErrNotFound is returned when no published page exists for the URL pair.
var ErrNotFound = errors.New("page not found")

// ByURL fetches the published page row for a (city, service) pair.  Both
// slugs are folded with slug.Make so request casing never misses a row.
func ByURL(ctx context.Context, db *sqlx.DB, citySlug, serviceSlug string) (*Record, error) {
	const q = `
        SELECT id, city_slug, service_slug, seo_title, meta_description, h1,
               hero_text, description, sections_json, features_json,
               testimonials_json, faq_json, city_description, cta_text,
               price_range, published_at, created_at, updated_at
        FROM   page
        WHERE  city_slug    = ?
          AND  service_slug = ?
          AND  published_at IS NOT NULL
        LIMIT  1`

	var rec Record
	err := db.GetContext(ctx, &rec, q, slug.Make(citySlug), slug.Make(serviceSlug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

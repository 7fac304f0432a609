// internal/page/model.go
//
// `page` table row model.
//
// Context
// -------
// The `Record` struct mirrors one row in the persistent **page** table:
// database-authored landing-page content that, when present, overrides the
// static fallbacks for a (city, service) URL.  Editors fill in only the
// fields they want to override, so every content column is nullable.
//
// Schema reference (2026-07-14)
//
//	CREATE TABLE page (
//	    id               INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    city_slug        VARCHAR(128)  NOT NULL,
//	    service_slug     VARCHAR(128)  NOT NULL,
//	    seo_title        VARCHAR(256)  NULL,
//	    meta_description VARCHAR(512)  NULL,
//	    h1               VARCHAR(256)  NULL,
//	    hero_text        TEXT          NULL,
//	    description      MEDIUMTEXT    NULL,
//	    sections_json    MEDIUMTEXT    NULL,
//	    features_json    TEXT          NULL,
//	    testimonials_json TEXT         NULL,
//	    faq_json         MEDIUMTEXT    NULL,
//	    city_description TEXT          NULL,
//	    cta_text         VARCHAR(512)  NULL,
//	    price_range      VARCHAR(64)   NULL,
//	    published_at     TIMESTAMP     NULL,
//	    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    UNIQUE KEY uq_page_url (city_slug, service_slug)
//	);
//
// Notes
// -----
//   - Nullable text columns are `*string`; callers must nil-check before use.
//   - The *_json columns hold raw JSON blobs rendered client-side; this
//     layer never parses them.
//   - `PublishedAt` NULL means draft; queries exclude drafts at SQL level.
//   - This struct contains no behaviour—pure data model for sqlx scans.
package page

import "time"

// Record mirrors one row in the `page` table.
type Record struct {
	ID          uint64 `db:"id"`
	CitySlug    string `db:"city_slug"`
	ServiceSlug string `db:"service_slug"`

	SEOTitle         *string `db:"seo_title"`
	MetaDescription  *string `db:"meta_description"`
	H1               *string `db:"h1"`
	HeroText         *string `db:"hero_text"`
	Description      *string `db:"description"`
	SectionsJSON     *string `db:"sections_json"`
	FeaturesJSON     *string `db:"features_json"`
	TestimonialsJSON *string `db:"testimonials_json"`
	FAQJSON          *string `db:"faq_json"`
	CityDescription  *string `db:"city_description"`
	CTAText          *string `db:"cta_text"`
	PriceRange       *string `db:"price_range"`

	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// internal/lead/lead.go
//
// Lead capture types and validation.
//
// Context
// -------
//   - A Lead is one quote request submitted from a service page.  The
//     originating page's city and service slugs ride along so sales can
//     see which landing page converted.
//   - The attribution block (device, browser, geo hints) is filled
//     server-side from the request-info middleware, never from the
//     client payload, which is why those fields are json:"-".
//   - Validation uses go-playground/validator struct tags; HTTP handlers
//     surface rule violations as a 422 with field names.
package lead

import (
	"github.com/go-playground/validator/v10"
)

// Lead is one inbound quote request.
type Lead struct {
	Name        string `db:"name"         json:"name"         validate:"required,min=2,max=120"`
	Email       string `db:"email"        json:"email"        validate:"required,email"`
	Phone       string `db:"phone"        json:"phone"        validate:"omitempty,min=7,max=32"`
	CitySlug    string `db:"city_slug"    json:"city_slug"    validate:"omitempty,max=80"`
	ServiceSlug string `db:"service_slug" json:"service_slug" validate:"omitempty,max=80"`
	Message     string `db:"message"      json:"message"      validate:"omitempty,max=4000"`

	// Attribution, server-filled.
	UADevice  string `db:"ua_device"  json:"-" validate:"max=40"`
	UABrowser string `db:"ua_browser" json:"-" validate:"max=80"`
	GeoCity   string `db:"geo_city"   json:"-" validate:"max=80"`
	GeoRegion string `db:"geo_region" json:"-" validate:"max=80"`
}

var v = validator.New()

// Validate reports the first rule violation, or nil when the lead is
// acceptable.
func Validate(l *Lead) error { return v.Struct(l) }

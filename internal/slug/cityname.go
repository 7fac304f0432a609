// internal/slug/cityname.go
//
// City slug → display name mapping.
//
// Context
// -------
// Landing-page URLs carry city slugs like "salt-lake-city-ut".  Rendered
// copy needs "Salt Lake City".  The service area is a fixed set of Wasatch
// Front cities, so the common cases live in a lookup table; anything the
// table misses goes through a generic transform (strip the state suffix,
// dashes → spaces, title-case each word) so a new CSV row never renders a
// raw slug.
//
// Notes
// -----
// • The table is read-only after init; safe for concurrent readers.
// • Title-casing is ASCII-only on purpose, matching Normalize.

package slug

import "strings"

// cityNames maps known city slugs to their display names.  Keep in sync
// with the service-area rows in the catalog CSV.
var cityNames = map[string]string{
	"salt-lake-city-ut":     "Salt Lake City",
	"west-valley-city-ut":   "West Valley City",
	"west-jordan-ut":        "West Jordan",
	"south-jordan-ut":       "South Jordan",
	"sandy-ut":              "Sandy",
	"draper-ut":             "Draper",
	"murray-ut":             "Murray",
	"midvale-ut":            "Midvale",
	"taylorsville-ut":       "Taylorsville",
	"millcreek-ut":          "Millcreek",
	"holladay-ut":           "Holladay",
	"cottonwood-heights-ut": "Cottonwood Heights",
	"riverton-ut":           "Riverton",
	"herriman-ut":           "Herriman",
	"bluffdale-ut":          "Bluffdale",
	"lehi-ut":               "Lehi",
	"american-fork-ut":      "American Fork",
	"orem-ut":               "Orem",
	"provo-ut":              "Provo",
	"bountiful-ut":          "Bountiful",
}

// CityDisplayName resolves a city slug to a human-readable name.  Unknown
// slugs fall back to a generic transform instead of failing.
func CityDisplayName(citySlug string) string {
	key := Make(citySlug)
	if name, ok := cityNames[key]; ok {
		return name
	}

	trimmed := strings.TrimSuffix(key, "-ut")
	words := strings.Split(trimmed, "-")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord upper-cases the first ASCII letter of w.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	if w[0] >= 'a' && w[0] <= 'z' {
		return string(w[0]-'a'+'A') + w[1:]
	}
	return w
}

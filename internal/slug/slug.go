// internal/slug/slug.go
//
// Slug helpers.
//
// • Normalize(s) ─ folds free-text city/service identifiers into comparable
//   tokens: lower-case, runs of non-[a-z0-9] become one space, trimmed.
// • Make(s)      ─ converts arbitrary text into a URL-safe slug restricted
//   to ASCII a-z, 0-9 and “-”.
//
// Rules (Normalize)
// -----------------
// 1. Lower-case everything.
// 2. Convert any run of non-[a-z0-9] characters to one space.  That strips
//    dashes, underscores, punctuation, and non-ASCII.
// 3. Trim leading / trailing whitespace.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s) for any
// input.  The catalog index and the fuzzy matcher both key on its output,
// so "Kitchen Remodeling", "kitchen-remodeling", and "kitchen_remodeling"
// all collapse to the same string.
//
// Notes
// -----
// • No Unicode transliteration; the site is English-only.
// • Never errors; the empty string is a valid output.

package slug

import "strings"

// Normalize folds an identifier into a comparable lower-case token string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		default:
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Make converts title → lower-kebab ASCII, e.g. "Deck & Patio!" →
// "deck-patio".  Empty results fall back to "item".
func Make(title string) string {
	norm := Normalize(title)
	if norm == "" {
		return "item"
	}
	out := strings.ReplaceAll(norm, " ", "-")
	if len(out) > 100 {
		out = out[:100]
		out = strings.TrimRight(out, "-")
	}
	return out
}

// Tokens splits a normalized identifier into its word tokens.  Callers that
// already hold Normalize output may split directly; this helper normalizes
// first so raw input is safe.
func Tokens(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Split(norm, " ")
}

// TitleWords renders an identifier as display text: "kitchen-remodeling"
// → "Kitchen Remodeling".
func TitleWords(s string) string {
	words := Tokens(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

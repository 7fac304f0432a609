// internal/slug/slug_test.go
//
// Unit-tests for the slug helpers.
//
// Context
// -------
// Normalize is the comparison key for the whole resolution pipeline, so
// these tests pin its folding rules and its idempotence.  CityDisplayName
// is exercised for both table hits and the generic fallback transform.

package slug

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"kitchen-remodeling", "kitchen remodeling"},
		{"Kitchen_Remodeling!", "kitchen remodeling"},
		{"  Basement   Finishing  ", "basement finishing"},
		{"DECK & PATIO", "deck patio"},
		{"---", ""},
		{"", ""},
		{"salt-lake-city-ut", "salt lake city ut"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Kitchen Remodeling", "deck---patio", "", "a", "Sítio 9",
		"salt-lake-city-ut", "  spaces  everywhere  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q → %q", in, once, twice)
		}
	}
}

func TestMake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Kitchen Remodeling", "kitchen-remodeling"},
		{"Deck & Patio!", "deck-patio"},
		{"", "item"},
		{"!!!", "item"},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("kitchen-remodeling")
	if len(got) != 2 || got[0] != "kitchen" || got[1] != "remodeling" {
		t.Fatalf("Tokens: got %#v", got)
	}
	if got := Tokens("---"); got != nil {
		t.Fatalf("Tokens on empty normalization: got %#v, want nil", got)
	}
}

func TestTitleWords(t *testing.T) {
	cases := []struct{ in, want string }{
		{"kitchen-remodeling", "Kitchen Remodeling"},
		{"deck construction", "Deck Construction"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TitleWords(c.in); got != c.want {
			t.Errorf("TitleWords(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCityDisplayName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"salt-lake-city-ut", "Salt Lake City"},
		{"draper-ut", "Draper"},
		{"Sandy-UT", "Sandy"},                   // table hit after slug folding
		{"eagle-mountain-ut", "Eagle Mountain"}, // fallback transform
		{"heber-city", "Heber City"},            // no -ut suffix
	}
	for _, c := range cases {
		if got := CityDisplayName(c.in); got != c.want {
			t.Errorf("CityDisplayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

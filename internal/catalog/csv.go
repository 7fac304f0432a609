// internal/catalog/csv.go
//
// CSV catalog loader.
//
// Context
// -------
// The landing-page catalog ships as a flat CSV export (one row per
// city × service page).  `LoadCSV` reads the whole file into []Record at
// boot; the file is small (low thousands of rows) so streaming is not
// worth the complexity.
//
// Workflow
// --------
//  1. Read the header row and map column name → position, so column order
//     in the export can change without breaking the loader.
//  2. Scan each data row into a Record.  The two identity columns
//     (city_slug, keyword) are required; everything else may be blank.
//  3. Rows missing identity columns are skipped with a warning rather than
//     failing the whole load—one bad row must not take the site down.
//
// Notes
// -----
// • Row order of the file is preserved; the Index treats it as catalog
//   order for ties and related-content selection.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// required identity columns; the loader refuses files without them.
var requiredColumns = []string{"city_slug", "keyword"}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV parses catalog rows from r.  The first row must be a header.
func LoadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated; cells default empty

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("catalog: header missing column %q", name)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("catalog: row %d: %w", line, err)
		}

		rec := Record{
			CitySlug:        cell(row, "city_slug"),
			Keyword:         cell(row, "keyword"),
			Category:        cell(row, "category"),
			URLPath:         cell(row, "url_path"),
			SEOTitle:        cell(row, "seo_title"),
			MetaDescription: cell(row, "meta_description"),
			H1:              cell(row, "h1"),
			JSONLD:          cell(row, "json_ld"),
			InternalLinks:   cell(row, "internal_links"),
		}
		if rec.CitySlug == "" || rec.Keyword == "" {
			zap.S().Warnw("catalog row skipped, missing identity",
				"line", line, "city_slug", rec.CitySlug, "keyword", rec.Keyword)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// internal/content/loader.go
//
// YAML content catalog loader.
//
// Context
// -------
// Every curated service entry is declared in its own YAML file under a
// content directory (production: `content/services/`).  At boot we parse
// every “*.yaml” in that directory, validate structural rules, and build
// the immutable Store.  Keeping entries in flat files lets copywriters
// edit long-form text without touching Go source.
//
// Workflow
// --------
//  1. LoadDir lists the directory and visits files in sorted name order;
//     that order becomes catalog order, so file names are prefixed with a
//     two-digit position (e.g. “01-kitchen-remodeling.yaml”).
//  2. Each file is parsed into an Entry via LoadEntry.
//  3. Structural rules: slug is required and must be unique across the
//     catalog; a duplicate fails the load, because silently shadowing
//     hand-written content is worse than failing fast at boot.
//
// Notes
// -----
// • Unknown YAML keys are rejected (yaml.v3 KnownFields) so typos in a
//   content file surface at boot, not as silently missing copy.

package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadEntry parses a single YAML file into an Entry.
func LoadEntry(path string) (Entry, error) {
	var e Entry

	f, err := os.Open(path)
	if err != nil {
		return e, fmt.Errorf("content: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil {
		return e, fmt.Errorf("content: parse %s: %w", path, err)
	}

	if e.Slug == "" {
		return e, fmt.Errorf("content: %s: missing slug", path)
	}
	return e, nil
}

// LoadDir parses every *.yaml under dir into an ordered entry list.  File
// name sort order defines catalog order.
func LoadDir(dir string) ([]Entry, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: read dir %s: %w", dir, err)
	}

	var files []string
	for _, de := range names {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".yaml") {
			continue
		}
		files = append(files, de.Name())
	}
	sort.Strings(files)

	entries := make([]Entry, 0, len(files))
	seen := make(map[string]string, len(files)) // slug → file
	for _, name := range files {
		e, err := LoadEntry(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[e.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate slug %q in %s (first seen in %s)",
				e.Slug, name, prev)
		}
		seen[e.Slug] = name
		entries = append(entries, e)
	}
	return entries, nil
}

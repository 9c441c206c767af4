// Package catalog loads suggestion lists from disk and watches them for
// changes.
package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/internal/log"
)

// ErrEmptyCatalog is returned when a file yields no suggestions.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Parse decodes a suggestion list. Files ending in .yaml or .yml hold a
// YAML sequence of strings; anything else is one suggestion per line, with
// blank lines and lines starting with '#' skipped.
func Parse(name string, data []byte) ([]string, error) {
	var items []string
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			items = append(items, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}
	}
	items = clean(items)
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyCatalog)
	}
	return items, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*autocomplete.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	items, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatCatalog, "catalog loaded", "path", path, "items", len(items))
	return autocomplete.NewCatalog(items), nil
}

// clean drops empty and multi-line entries, keeping order.
func clean(items []string) []string {
	out := items[:0]
	for _, s := range items {
		if s == "" || strings.ContainsAny(s, "\r\n") {
			continue
		}
		out = append(out, s)
	}
	return out
}

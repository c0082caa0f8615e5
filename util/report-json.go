package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// CountJSON is a count with its percentage of the category total.
type CountJSON struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryJSON is the JSON form of CategoryStats.
type CategoryJSON struct {
	Total     int       `json:"total"`
	Unique    int       `json:"unique"`
	Duplicate CountJSON `json:"duplicate"`
}

// EntriesJSON adds empty and obsolete counts to the entries category.
type EntriesJSON struct {
	CategoryJSON
	Empty    CountJSON `json:"empty"`
	Obsolete CountJSON `json:"obsolete"`
}

// CatalogStatsJSON is the JSON form of CatalogStats.
type CatalogStatsJSON struct {
	Path         string               `json:"path"`
	Language     string               `json:"language"`
	LanguageName string               `json:"language_name,omitempty"`
	Comments     CategoryJSON         `json:"comments"`
	Headers      CategoryJSON         `json:"headers"`
	Entries      EntriesJSON          `json:"entries"`
	Flags        map[string]CountJSON `json:"flags"`
}

func newCountJSON(individual, total int) CountJSON {
	return CountJSON{Count: individual, Percentage: Percentage(individual, total)}
}

func newCategoryJSON(c CategoryStats) CategoryJSON {
	return CategoryJSON{
		Total:     c.Total,
		Unique:    c.Unique,
		Duplicate: newCountJSON(c.Duplicate, c.Total),
	}
}

// NewCatalogStatsJSON converts stats to the JSON form.
func NewCatalogStatsJSON(s *CatalogStats) CatalogStatsJSON {
	out := CatalogStatsJSON{
		Path:     s.Path,
		Language: s.Language,
		Comments: newCategoryJSON(s.Comments),
		Headers:  newCategoryJSON(s.Headers),
		Entries: EntriesJSON{
			CategoryJSON: newCategoryJSON(s.Entries),
			Empty:        newCountJSON(s.Empty, s.Entries.Total),
			Obsolete:     newCountJSON(s.Obsolete, s.Entries.Total),
		},
		Flags: make(map[string]CountJSON, len(s.Flags)),
	}
	if name, err := GetPrettyLocaleName(s.Language); err == nil {
		out.LanguageName = name
	}
	for name, n := range s.Flags {
		out.Flags[name] = newCountJSON(n, s.Entries.Total)
	}
	return out
}

// JSONRenderer writes statistics of all catalogs as one JSON array.
type JSONRenderer struct {
	Out io.Writer
}

// Render writes the JSON array to v.Out.
func (v *JSONRenderer) Render(stats []*CatalogStats) error {
	out := make([]CatalogStatsJSON, 0, len(stats))
	for _, s := range stats {
		out = append(out, NewCatalogStatsJSON(s))
	}
	enc := json.NewEncoder(v.Out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode stats JSON: %w", err)
	}
	return nil
}

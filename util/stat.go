package util

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// PotLanguage is the language tag of catalogs without a "Language" header.
const PotLanguage = "pot"

// CategoryStats holds totals and uniqueness of one category
// (comments, headers or entries).
type CategoryStats struct {
	Total     int `json:"total"`
	Unique    int `json:"unique"`
	Duplicate int `json:"duplicate"` // Total - Unique
}

func newCategoryStats(total, unique int) CategoryStats {
	return CategoryStats{
		Total:     total,
		Unique:    unique,
		Duplicate: total - unique,
	}
}

// CatalogStats holds statistics for one catalog.
type CatalogStats struct {
	Path     string
	Language string

	Comments CategoryStats
	Headers  CategoryStats
	Entries  CategoryStats

	Empty    int            // Entries with no translation, or only blank forms
	Obsolete int            // Obsolete entries (#~ format)
	Flags    map[string]int // Number of entries carrying each flag
}

// FlagNames returns flag names of the stats in sorted order.
func (s *CatalogStats) FlagNames() []string {
	names := make([]string, 0, len(s.Flags))
	for name := range s.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogLanguage returns the "Language" header of the catalog, or
// PotLanguage for templates.
func CatalogLanguage(c *Catalog) string {
	if lang := strings.TrimSpace(c.Header("Language")); lang != "" {
		return lang
	}
	return PotLanguage
}

// CountCatalogStats aggregates statistics of a parsed catalog.
//
// Headers are counted by raw occurrence: a key defined twice in the header
// entry adds one to Headers.Duplicate.
func CountCatalogStats(c *Catalog) *CatalogStats {
	stats := &CatalogStats{
		Language: CatalogLanguage(c),
		Flags:    map[string]int{},
	}

	comments := make(map[string]struct{}, len(c.Comments))
	for _, comment := range c.Comments {
		comments[comment] = struct{}{}
	}
	stats.Comments = newCategoryStats(len(c.Comments), len(comments))

	headerTotal := len(c.HeaderFields)
	if headerTotal < len(c.Headers) {
		// Headers set directly, without raw fields
		headerTotal = len(c.Headers)
	}
	stats.Headers = newCategoryStats(headerTotal, len(c.Headers))

	ids := make(map[string]struct{}, len(c.Entries))
	for _, e := range c.Entries {
		ids[e.MsgID] = struct{}{}
		if e.IsEmpty() {
			stats.Empty++
		}
		if e.Obsolete {
			stats.Obsolete++
		}
		for flag := range e.Flags {
			stats.Flags[flag]++
		}
	}
	stats.Entries = newCategoryStats(len(c.Entries), len(ids))

	return stats
}

// Percentage returns individual/total in percent, rounded to two decimal
// places. A zero total is treated as 1, so Percentage(0, 0) is 0.
func Percentage(individual, total int) float64 {
	if total == 0 {
		total = 1
	}
	return math.Round(float64(individual)/float64(total)*100*100) / 100
}

// FormatPercentage formats p without trailing zeros, e.g. 50, 33.33, 12.5.
func FormatPercentage(p float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", p), "0"), ".")
}

// FormatStatLine formats stats in one line. Only non-zero categories
// other than the entry total are shown.
func FormatStatLine(stats *CatalogStats) string {
	var parts []string

	if stats.Entries.Total == 1 {
		parts = append(parts, "1 entry")
	} else {
		parts = append(parts, fmt.Sprintf("%d entries", stats.Entries.Total))
	}
	if stats.Entries.Duplicate > 0 {
		if stats.Entries.Duplicate == 1 {
			parts = append(parts, "1 duplicate")
		} else {
			parts = append(parts, fmt.Sprintf("%d duplicates", stats.Entries.Duplicate))
		}
	}
	if stats.Empty > 0 {
		parts = append(parts, fmt.Sprintf("%d empty", stats.Empty))
	}
	if stats.Obsolete > 0 {
		parts = append(parts, fmt.Sprintf("%d obsolete", stats.Obsolete))
	}
	for _, name := range stats.FlagNames() {
		parts = append(parts, fmt.Sprintf("%d %s", stats.Flags[name], name))
	}
	return strings.Join(parts, ", ") + ".\n"
}

// Package util provides catalog file selection utilities.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// PoDir is the directory of catalogs in a project.
const PoDir = "po"

// FindCatalogFiles returns PO and POT files in the po directory of
// workDir, sorted by name. Templates come after translations.
func FindCatalogFiles(workDir string) ([]string, error) {
	dir := filepath.Join(workDir, PoDir)
	if !IsDir(dir) {
		return nil, fmt.Errorf("no %s directory in %s", PoDir, workDir)
	}
	var result []string
	for _, pattern := range []string{"*.po", "*.pot"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		result = append(result, matches...)
	}
	log.Debugf("found %d catalogs in %s", len(result), dir)
	return result, nil
}

// ReadCatalogFile loads a catalog into memory. Directories become null
// items, which pass the pipeline without statistics.
func ReadCatalogFile(name string) (*CatalogFile, error) {
	if IsDir(name) {
		return &CatalogFile{Path: name}, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return &CatalogFile{Path: name, Contents: data}, nil
}

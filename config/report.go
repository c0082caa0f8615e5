// Package config provides configuration structures and loading for the
// statistics report.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the configuration file in the top
	// directory of a repository.
	ConfigFile = "po-stats.yaml"
	// UserConfigFile is the name of the configuration file in the home
	// directory.
	UserConfigFile = ".po-stats.yaml"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ReportConfig holds the report configuration. Pointer fields are nil
// when not set, so that a repository file only overrides what it sets.
type ReportConfig struct {
	Format    string              `yaml:"format"`
	Expand    *bool               `yaml:"expand"`
	ShowFlags *bool               `yaml:"show_flags"`
	ColWidths []int               `yaml:"col_widths"`
	Styles    map[string][]string `yaml:"styles"`
}

// IsExpand returns true if the table should have separators between rows.
func (c *ReportConfig) IsExpand() bool {
	return c.Expand != nil && *c.Expand
}

// IsShowFlags returns true if per-flag rows should be shown.
func (c *ReportConfig) IsShowFlags() bool {
	return c.ShowFlags != nil && *c.ShowFlags
}

// Validate checks the configuration.
func (c *ReportConfig) Validate() error {
	switch c.Format {
	case "", FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unknown format '%s', should be '%s' or '%s'",
			c.Format, FormatTable, FormatJSON)
	}
	if len(c.ColWidths) > 4 {
		return fmt.Errorf("col_widths has %d columns, at most 4 are allowed", len(c.ColWidths))
	}
	for i, w := range c.ColWidths {
		if w < 0 {
			return fmt.Errorf("col_widths[%d] is negative: %d", i, w)
		}
	}
	for name, attrs := range c.Styles {
		if len(attrs) == 0 {
			return fmt.Errorf("style '%s' has no attributes", name)
		}
	}
	return nil
}

// loadConfigFromFile reads a YAML configuration file.
func loadConfigFromFile(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg ReportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs returns base overridden by every field set in override.
func mergeConfigs(base, override *ReportConfig) *ReportConfig {
	merged := *base
	merged.Styles = make(map[string][]string, len(base.Styles)+len(override.Styles))
	for name, attrs := range base.Styles {
		merged.Styles[name] = attrs
	}
	for name, attrs := range override.Styles {
		merged.Styles[name] = attrs
	}
	if override.Format != "" {
		merged.Format = override.Format
	}
	if override.Expand != nil {
		merged.Expand = override.Expand
	}
	if override.ShowFlags != nil {
		merged.ShowFlags = override.ShowFlags
	}
	if len(override.ColWidths) > 0 {
		merged.ColWidths = override.ColWidths
	}
	return &merged
}

// loadOptional loads path into cfg, ignoring a missing file.
func loadOptional(cfg *ReportConfig, path string) (*ReportConfig, error) {
	loaded, err := loadConfigFromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	log.Debugf("load report config from %s", path)
	return mergeConfigs(cfg, loaded), nil
}

// LoadReportConfig loads the report configuration. With configFile set,
// only that file is read and it must exist. Otherwise ~/.po-stats.yaml is
// read and then po-stats.yaml in workDir overrides it; both are optional.
func LoadReportConfig(configFile, workDir string) (*ReportConfig, error) {
	var (
		cfg = &ReportConfig{}
		err error
	)

	if configFile != "" {
		cfg, err = loadConfigFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if home, herr := os.UserHomeDir(); herr == nil {
			if cfg, err = loadOptional(cfg, filepath.Join(home, UserConfigFile)); err != nil {
				return nil, err
			}
		}
		if workDir != "" {
			if cfg, err = loadOptional(cfg, filepath.Join(workDir, ConfigFile)); err != nil {
				return nil, err
			}
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bad config: %w", err)
	}
	return cfg, nil
}

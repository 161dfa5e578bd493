// Package config provides configuration management for the treecomp CLI.
// It handles loading and parsing of the YAML config file and maps the
// values onto the filesystem completer.
package config

import (
	"github.com/atinylittleshell/treecomp/pkg/fscomplete"
)

// Config holds all CLI configuration read from the config file.
type Config struct {
	// CaseInsensitive folds case in all segment comparisons.
	CaseInsensitive bool `yaml:"case_insensitive"`

	// MapDashUnderscore lets a typed '-' match a '_' in entry names.
	MapDashUnderscore bool `yaml:"map_dash_underscore"`

	// ExpandIntermediateSegments allows short intermediate segments to
	// match by prefix, bounded by ExpandMaxLen.
	ExpandIntermediateSegments bool `yaml:"expand_intermediate_segments"`
	ExpandMaxLen               int  `yaml:"expand_max_len"`

	// ExcludeHidden drops dot-entries from filesystem completions.
	ExcludeHidden bool `yaml:"exclude_hidden"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ExpandMaxLen: 2,
		LogLevel:     "info",
	}
}

// FilesystemConfig maps the configuration onto the filesystem completer.
func (c *Config) FilesystemConfig() fscomplete.Config {
	return fscomplete.Config{
		CaseInsensitive:                  c.CaseInsensitive,
		MapDashUnderscore:                c.MapDashUnderscore,
		ExpandIntermediateSegments:       c.ExpandIntermediateSegments,
		ExpandIntermediateSegmentsMaxLen: c.ExpandMaxLen,
		ExcludeHidden:                    c.ExcludeHidden,
	}
}

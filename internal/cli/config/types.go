// Package config provides configuration management for the periodic CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and functionality. The shared ExportConfig is
// re-exported here via a type alias for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/periodic/internal/config"
)

// ExportConfig is an alias for the shared export configuration.
// This allows CLI code to use config.ExportConfig without importing internal/config.
type ExportConfig = sharedcfg.ExportConfig

// Config holds all CLI configuration options.
type Config struct {
	Elements      string       `koanf:"elements"`
	Groups        string       `koanf:"groups"`
	RequireGroups bool         `koanf:"require_groups"`
	OutputDir     string       `koanf:"output_dir"`
	OutputFormat  string       `koanf:"output"`
	Verbose       bool         `koanf:"verbose"`
	HistoryFile   string       `koanf:"history_file"`
	Export        ExportConfig `koanf:"export"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultElementsFile = sharedcfg.DefaultElementsFile
	DefaultGroupsFile   = sharedcfg.DefaultGroupsFile
	DefaultOutputDir    = sharedcfg.DefaultOutputDir
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// EnvPrefix is the prefix of environment variables read by the loader.
const EnvPrefix = "PERIODIC_"

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"auto", "text", "markdown", "json"}

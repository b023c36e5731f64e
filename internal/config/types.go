// Package config provides shared configuration types for periodic.
// This package is decoupled from CLI concerns; the CLI layer embeds these
// types and adds flag and environment handling on top.
package config

import "github.com/leapstack-labs/periodic/internal/export"

// ExportConfig overrides the artifact file name per export format.
// Empty fields fall back to the format's default file name.
type ExportConfig struct {
	HTMLFile     string `koanf:"html_file" json:"html_file,omitempty"`
	JSONFile     string `koanf:"json_file" json:"json_file,omitempty"`
	MarkdownFile string `koanf:"markdown_file" json:"markdown_file,omitempty"`
}

// FileName returns the configured artifact name for format,
// or the format's default when none is configured.
func (c ExportConfig) FileName(format export.Format) string {
	var name string
	switch format {
	case export.FormatHTML:
		name = c.HTMLFile
	case export.FormatJSON:
		name = c.JSONFile
	case export.FormatMarkdown:
		name = c.MarkdownFile
	}
	if name == "" {
		return format.DefaultFileName()
	}
	return name
}

// ProjectConfig holds the dataset locations of a project.
// This is a subset of the full CLI Config.
type ProjectConfig struct {
	Elements  string       `koanf:"elements" json:"elements"`
	Groups    string       `koanf:"groups" json:"groups"`
	OutputDir string       `koanf:"output_dir" json:"output_dir"`
	Export    ExportConfig `koanf:"export" json:"export"`
}

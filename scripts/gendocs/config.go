package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/periodic/internal/cli/config"
	"github.com/leapstack-labs/periodic/internal/export"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "dataset", "output", "export"
}

// getConfigSchema returns the configuration schema definition.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "elements", Type: "string", Default: config.DefaultElementsFile, Description: "Element dataset (CSV or JSON array of objects)", Category: "dataset"},
		{Name: "groups", Type: "string", Default: config.DefaultGroupsFile, Description: "Group dataset (JSON or YAML list of groups)", Category: "dataset"},
		{Name: "require_groups", Type: "bool", Default: "false", Description: "Fail instead of warning when the group dataset is missing", Category: "dataset"},

		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output mode: auto, text, markdown, json", Category: "output"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Enable debug logging on stderr", Category: "output"},
		{Name: "history_file", Type: "string", Description: "History file for the interactive menu and SQL REPL", Category: "output"},

		{Name: "output_dir", Type: "string", Default: config.DefaultOutputDir, Description: "Directory export artifacts are written to", Category: "export"},
		{Name: "export.html_file", Type: "string", Default: export.FormatHTML.DefaultFileName(), Description: "File name of the HTML table export", Category: "export"},
		{Name: "export.json_file", Type: "string", Default: export.FormatJSON.DefaultFileName(), Description: "File name of the JSON export", Category: "export"},
		{Name: "export.markdown_file", Type: "string", Default: export.FormatMarkdown.DefaultFileName(), Description: "File name of the Markdown overview export", Category: "export"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "periodic configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("periodic reads %s from the project root, found by searching upward from the working directory. "+
		"Relative paths in the file are resolved against the directory that holds it.", InlineCode("periodic.yaml")))

	fields := getConfigSchema()
	sections := []struct {
		category string
		title    string
	}{
		{"dataset", "Datasets"},
		{"output", "Output"},
		{"export", "Export"},
	}

	headers := []string{"Field", "Type", "Default", "Description"}
	for _, sec := range sections {
		w.Header(2, sec.title)
		var rows [][]string
		for _, f := range fields {
			if f.Category != sec.category {
				continue
			}
			defVal := f.Default
			if defVal == "" {
				defVal = "-"
			}
			rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
		}
		w.Table(headers, rows)
	}

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		fmt.Sprintf("Environment variables (%s prefix, %s maps to %s)", InlineCode(config.EnvPrefix), InlineCode(config.EnvPrefix+"EXPORT_HTML_FILE"), InlineCode("export.html_file")),
		InlineCode("periodic.yaml"),
		"Built-in defaults",
	})
	w.Paragraph("Paths given as flags are relative to the working directory, not the project root.")

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# periodic.yaml
elements: data/elements.csv
groups: data/groups.json
require_groups: false

output: auto
history_file: ${HOME}/.periodic_history

output_dir: exports
export:
  html_file: elements_table.html
  json_file: selected_elements.json
  markdown_file: elements_overview.md`)

	w.Header(2, "Environment Variables")
	w.Paragraph("Use `${VAR_NAME}` syntax to reference environment variables in paths:")
	w.CodeBlock("yaml", `elements: ${DATA_DIR}/elements.csv`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}

// Package export serializes element selections into the three artifact
// formats: an HTML table, a JSON document and a Markdown overview.
package export

import (
	"fmt"
	"strings"
)

// Format identifies an artifact format.
type Format string

// Supported formats.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats returns the supported formats in menu order.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatMarkdown}
}

// ParseFormat resolves a format name or alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm", "table":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md", "document":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected html, json or markdown)", s)
	}
}

// DefaultFileName returns the artifact name used when none is configured.
func (f Format) DefaultFileName() string {
	switch f {
	case FormatHTML:
		return "elements_table.html"
	case FormatJSON:
		return "selected_elements.json"
	case FormatMarkdown:
		return "elements_overview.md"
	default:
		return "elements." + string(f)
	}
}

func (f Format) String() string {
	return string(f)
}

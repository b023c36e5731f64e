package output

import (
	"strings"
)

// FormatHeader returns a Markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a Markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return "- **" + key + "**: " + value
}

// FormatCodeBlock returns a fenced code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}

// FormatTable returns a Markdown table. Pipes in cells are escaped and
// newlines flattened so each row stays on one line.
func FormatTable(header []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(escapeMarkdownCell(c))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	writeRow(seps)
	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// DocumentTitle is the top-level heading of the Markdown overview.
const DocumentTitle = "Elements Overview"

var documentHeader = []string{"Symbol", "Name", "Atomic Mass", "Group", "Period"}

// Document writes a Markdown overview: a title, an optional "Group:" subtitle
// when groupName is set, and a fixed five-column table.
//
// Every record must carry Symbol, Element, AtomicMass, Group and Period;
// otherwise a *core.MissingFieldError is returned and nothing is written.
func Document(w io.Writer, elements []core.Element, groupName string) error {
	rows := make([]core.ElementRow, 0, len(elements))
	for i, e := range elements {
		row, err := e.Row()
		if err != nil {
			var mfe *core.MissingFieldError
			if errors.As(err, &mfe) {
				mfe.Index = i
			}
			return err
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", DocumentTitle)
	if groupName != "" {
		fmt.Fprintf(&b, "## Group: %s\n\n", singleLine(groupName))
	}

	writeMarkdownRow(&b, documentHeader)
	seps := make([]string, len(documentHeader))
	for i, h := range documentHeader {
		seps[i] = strings.Repeat("-", len(h))
	}
	writeMarkdownRow(&b, seps)

	for _, r := range rows {
		writeMarkdownRow(&b, r.Cells())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// escapeCell keeps a value inside its table cell.
func escapeCell(s string) string {
	return singleLine(strings.ReplaceAll(s, "|", `\|`))
}

// singleLine replaces line breaks with spaces.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

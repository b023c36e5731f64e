package export

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// TabularTitle is the <title> of the HTML table document.
const TabularTitle = "Periodic Table"

// Tabular writes elements as a minimal HTML document holding one table.
//
// The columns are the first record's fields in order; every record must carry
// all of them. Values are escaped by the HTML renderer, so markup characters
// in the data cannot break the table structure. Nothing is written when the
// input is empty (*core.EmptyInputError) or a record lacks a column
// (*core.MissingFieldError).
func Tabular(w io.Writer, elements []core.Element) error {
	if len(elements) == 0 {
		return &core.EmptyInputError{Format: string(FormatHTML)}
	}

	columns := elements[0].Keys()

	table := newElement(atom.Table, html.Attribute{Key: "border", Val: "1"})
	appendLine(table)
	table.AppendChild(tableRow(atom.Th, columns))
	appendLine(table)

	cells := make([]string, len(columns))
	for i, e := range elements {
		for j, c := range columns {
			v, ok := e.Get(c)
			if !ok {
				return &core.MissingFieldError{Field: c, Index: i, Symbol: e.Symbol()}
			}
			cells[j] = v
		}
		table.AppendChild(tableRow(atom.Td, cells))
		appendLine(table)
	}

	title := newElement(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: TabularTitle})

	head := newElement(atom.Head)
	appendLine(head)
	head.AppendChild(newElement(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	appendLine(head)
	head.AppendChild(title)
	appendLine(head)

	body := newElement(atom.Body)
	appendLine(body)
	body.AppendChild(table)
	appendLine(body)

	root := newElement(atom.Html)
	appendLine(root)
	root.AppendChild(head)
	appendLine(root)
	root.AppendChild(body)
	appendLine(root)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	appendLine(doc)
	doc.AppendChild(root)
	appendLine(doc)

	return html.Render(w, doc)
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func tableRow(cell atom.Atom, values []string) *html.Node {
	tr := newElement(atom.Tr)
	for _, v := range values {
		c := newElement(cell)
		c.AppendChild(&html.Node{Type: html.TextNode, Data: v})
		tr.AppendChild(c)
	}
	return tr
}

func appendLine(n *html.Node) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
}

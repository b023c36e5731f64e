package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// Structured writes elements as a JSON array indented with four spaces.
// Field order and record order are preserved, and non-ASCII and HTML
// characters are written as-is. An empty selection produces "[]".
func Structured(w io.Writer, elements []core.Element) error {
	if elements == nil {
		elements = []core.Element{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(elements)
}

// ReadStructured decodes a document written by Structured.
func ReadStructured(r io.Reader) ([]core.Element, error) {
	var elements []core.Element
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("invalid element document: %w", err)
	}
	if elements == nil {
		elements = []core.Element{}
	}
	return elements, nil
}

package core

// ElementRow is the fixed-column view of an element used by the document
// exporter. Values are kept as text exactly as loaded.
type ElementRow struct {
	Symbol     string
	Name       string
	AtomicMass string
	Group      string
	Period     string
}

// Cells returns the row's values in DocumentFields order.
func (r ElementRow) Cells() []string {
	return []string{r.Symbol, r.Name, r.AtomicMass, r.Group, r.Period}
}

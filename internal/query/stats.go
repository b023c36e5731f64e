package query

import "github.com/leapstack-labs/periodic/pkg/core"

// Stats summarizes a numeric field over a selection.
type Stats struct {
	Field string  `json:"field"`
	Count int     `json:"count"` // records in the selection
	Valid int     `json:"valid"` // records whose value passed ParseDecimal
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// HasData reports whether at least one value was usable.
func (s Stats) HasData() bool {
	return s.Valid > 0
}

// Summarize computes Stats for numericField over elements. Unparseable or
// empty values are counted in Count but not in Valid.
func Summarize(elements []core.Element, numericField string) Stats {
	s := Stats{Field: numericField, Count: len(elements)}
	var sum float64
	for _, e := range elements {
		v, ok := ParseDecimal(e.Value(numericField))
		if !ok {
			continue
		}
		if s.Valid == 0 || v < s.Min {
			s.Min = v
		}
		if s.Valid == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		s.Valid++
	}
	if s.Valid > 0 {
		s.Mean = sum / float64(s.Valid)
	}
	return s
}

// Package query implements lookups and simple statistics over element records.
//
// All functions are pure: they read the given slice and never modify it.
// Text comparisons trim surrounding whitespace and use Unicode case folding,
// so "alkalické KOVY " matches "Alkalické kovy".
package query

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// Criterion is a (field, value) filter pair.
type Criterion struct {
	Field string
	Value string
}

// ParseCriterion parses "Field=Value". The field is trimmed; the value is
// kept verbatim because matching normalizes it anyway.
func ParseCriterion(s string) (Criterion, error) {
	field, value, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return Criterion{}, fmt.Errorf("invalid criterion %q: expected Field=Value", s)
	}
	return Criterion{Field: field, Value: value}, nil
}

func (c Criterion) String() string {
	return c.Field + "=" + c.Value
}

// Match reports whether e satisfies the criterion.
//
// For AtomicNumber the comparison is numeric: the record's field must be
// present and made only of digits, and equal the integer value of c.Value,
// which may carry a sign ("+1"). For every other field the record's value
// (empty when absent) is compared to c.Value after normalization.
func (c Criterion) Match(e core.Element) bool {
	if c.Field == core.FieldAtomicNumber {
		want, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil {
			return false
		}
		got, ok := ParseDigits(e.Value(c.Field))
		return ok && got == want
	}
	return Normalize(e.Value(c.Field)) == Normalize(c.Value)
}

// Normalize trims s and folds its case for comparison.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// FindByCriterion returns the elements whose field matches value, in their
// original order. It returns an empty, non-nil slice when nothing matches.
func FindByCriterion(elements []core.Element, field, value string) []core.Element {
	return Filter(elements, Criterion{Field: field, Value: value})
}

// Filter returns the elements matching every criterion, in original order.
func Filter(elements []core.Element, criteria ...Criterion) []core.Element {
	out := make([]core.Element, 0)
	for _, e := range elements {
		if matchAll(e, criteria) {
			out = append(out, e)
		}
	}
	return out
}

func matchAll(e core.Element, criteria []Criterion) bool {
	for _, c := range criteria {
		if !c.Match(e) {
			return false
		}
	}
	return true
}

// AverageNumericField returns the arithmetic mean of numericField over the
// elements whose field matches value.
//
// Records with an empty numeric field are not selected, and selected records
// whose numeric value does not pass ParseDecimal are skipped. The boolean is
// false when no record survives, which callers must report as "no data"
// rather than as an average of zero.
func AverageNumericField(elements []core.Element, field, value, numericField string) (float64, bool) {
	c := Criterion{Field: field, Value: value}

	var sum float64
	var n int
	for _, e := range elements {
		raw, ok := e.Get(numericField)
		if !ok || raw == "" || !c.Match(e) {
			continue
		}
		v, ok := ParseDecimal(raw)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

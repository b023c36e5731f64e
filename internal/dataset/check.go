package dataset

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/periodic/internal/query"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// Severity of a failed check.
type Severity string

// Check severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule describes one dataset health check.
type Rule struct {
	ID       string
	Name     string
	Group    string // "elements" or "groups"
	Severity Severity
	// Description says what the rule looks for.
	Description string
	check       func(d *Dataset) []string
}

// Finding is one issue reported by a rule.
type Finding struct {
	RuleID  string
	Message string
}

// Rules returns the dataset health checks in report order.
func Rules() []Rule {
	return []Rule{
		{ID: "DS01", Name: "document-fields", Group: "elements", Severity: SeverityError, check: checkDocumentFields,
			Description: "The element dataset has every column the Markdown overview prints."},
		{ID: "DS02", Name: "blank-symbol", Group: "elements", Severity: SeverityWarning, check: checkBlankSymbols,
			Description: "Every element record has a Symbol."},
		{ID: "DS03", Name: "duplicate-symbol", Group: "elements", Severity: SeverityWarning, check: checkDuplicateSymbols,
			Description: "No two element records share a Symbol."},
		{ID: "DS04", Name: "atomic-number", Group: "elements", Severity: SeverityWarning, check: checkAtomicNumbers,
			Description: "Non-empty AtomicNumber values are plain digits."},
		{ID: "DS05", Name: "atomic-mass", Group: "elements", Severity: SeverityWarning, check: checkAtomicMasses,
			Description: "Non-empty AtomicMass values are plain decimal numbers."},
		{ID: "GR01", Name: "unknown-member", Group: "groups", Severity: SeverityWarning, check: checkUnknownMembers,
			Description: "Every group member symbol exists in the element dataset."},
		{ID: "GR02", Name: "empty-group", Group: "groups", Severity: SeverityWarning, check: checkEmptyGroups,
			Description: "Every group lists at least one member."},
		{ID: "GR03", Name: "duplicate-group", Group: "groups", Severity: SeverityWarning, check: checkDuplicateGroups,
			Description: "Group display names are unique."},
	}
}

// Check runs every rule against d.
func (d *Dataset) Check() []Finding {
	var findings []Finding
	for _, rule := range Rules() {
		for _, msg := range rule.check(d) {
			findings = append(findings, Finding{RuleID: rule.ID, Message: msg})
		}
	}
	return findings
}

func checkDocumentFields(d *Dataset) []string {
	var out []string
	for _, f := range core.DocumentFields {
		if !slices.Contains(d.Columns, f) {
			out = append(out, fmt.Sprintf("column %q is missing; markdown export will fail", f))
		}
	}
	return out
}

func checkBlankSymbols(d *Dataset) []string {
	var out []string
	for i, e := range d.Elements {
		if e.Symbol() == "" {
			out = append(out, fmt.Sprintf("record %d has no symbol", i))
		}
	}
	return out
}

func checkDuplicateSymbols(d *Dataset) []string {
	seen := make(map[string]int, len(d.Elements))
	var out []string
	for i, e := range d.Elements {
		sym := e.Symbol()
		if sym == "" {
			continue
		}
		if first, dup := seen[sym]; dup {
			out = append(out, fmt.Sprintf("symbol %s appears at records %d and %d", sym, first, i))
			continue
		}
		seen[sym] = i
	}
	return out
}

func checkAtomicNumbers(d *Dataset) []string {
	return checkNumeric(d, core.FieldAtomicNumber, query.ParseDigits)
}

func checkAtomicMasses(d *Dataset) []string {
	return checkNumeric(d, core.FieldAtomicMass, query.ParseDecimal)
}

func checkNumeric[T any](d *Dataset, field string, parse func(string) (T, bool)) []string {
	var out []string
	for i, e := range d.Elements {
		v, ok := e.Get(field)
		if !ok || v == "" {
			continue
		}
		if _, valid := parse(v); !valid {
			out = append(out, fmt.Sprintf("record %d (%s): %s %q is not numeric", i, e.Symbol(), field, v))
		}
	}
	return out
}

func checkUnknownMembers(d *Dataset) []string {
	known := make(map[string]struct{}, len(d.Elements))
	for _, e := range d.Elements {
		known[e.Symbol()] = struct{}{}
	}

	var out []string
	for _, g := range d.Groups {
		for _, sym := range g.Symbols {
			if _, ok := known[sym]; !ok {
				out = append(out, fmt.Sprintf("group %q lists %s, which is not in the element dataset", g.Name, sym))
			}
		}
	}
	return out
}

func checkEmptyGroups(d *Dataset) []string {
	var out []string
	for _, g := range d.Groups {
		if g.Len() == 0 {
			out = append(out, fmt.Sprintf("group %q has no members", g.Name))
		}
	}
	return out
}

func checkDuplicateGroups(d *Dataset) []string {
	seen := make(map[string]struct{}, len(d.Groups))
	var out []string
	for _, g := range d.Groups {
		if _, dup := seen[g.Name]; dup {
			out = append(out, fmt.Sprintf("group %q is defined more than once; only the first is used", g.Name))
			continue
		}
		seen[g.Name] = struct{}{}
	}
	return out
}

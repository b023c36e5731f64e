// Package dataset loads the element and group datasets into an immutable
// in-memory Dataset.
package dataset

import (
	"strings"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// Dataset owns the loaded elements and groups. It is built once by Load and
// must not be modified afterwards; commands receive it by pointer.
type Dataset struct {
	Elements []core.Element
	Groups   []core.Group
	// Columns lists the element dataset's header in file order.
	Columns []string

	ElementsPath string
	GroupsPath   string
}

// fieldAliases maps normalized user spellings to canonical column names.
var fieldAliases = map[string]string{
	"symbol":       core.FieldSymbol,
	"name":         core.FieldName,
	"element":      core.FieldName,
	"number":       core.FieldAtomicNumber,
	"z":            core.FieldAtomicNumber,
	"atomicnumber": core.FieldAtomicNumber,
	"mass":         core.FieldAtomicMass,
	"atomicmass":   core.FieldAtomicMass,
	"group":        core.FieldGroup,
	"skupina":      core.FieldGroup,
	"period":       core.FieldPeriod,
	"perioda":      core.FieldPeriod,
	"prvek":        core.FieldName,
	"nazev":        core.FieldName,
	"hmotnost":     core.FieldAtomicMass,
}

// ResolveField maps a user-typed field name onto a dataset column.
// An exact column name wins, then a case-insensitive match that ignores
// spaces, dashes and underscores, then a known alias ("mass", "period", ...).
func (d *Dataset) ResolveField(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, c := range d.Columns {
		if c == name {
			return c, nil
		}
	}

	key := squash(name)
	for _, c := range d.Columns {
		if squash(c) == key {
			return c, nil
		}
	}

	if canonical, ok := fieldAliases[key]; ok {
		for _, c := range d.Columns {
			if c == canonical {
				return c, nil
			}
		}
	}

	return "", &core.FieldNotFoundError{Field: name, Available: d.Columns}
}

// GroupNames returns the display names of all groups in file order.
func (d *Dataset) GroupNames() []string {
	names := make([]string, 0, len(d.Groups))
	for _, g := range d.Groups {
		names = append(names, g.Name)
	}
	return names
}

func squash(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

package query

import "github.com/leapstack-labs/periodic/pkg/core"

// FindGroup returns the first group whose display name matches name after
// normalization.
func FindGroup(groups []core.Group, name string) (core.Group, bool) {
	want := Normalize(name)
	for _, g := range groups {
		if Normalize(g.Name) == want {
			return g, true
		}
	}
	return core.Group{}, false
}

// SelectGroup returns the elements whose Symbol belongs to the named group,
// in dataset order (not the group's declared order). An unknown name yields
// a *core.GroupNotFoundError.
func SelectGroup(elements []core.Element, groups []core.Group, name string) ([]core.Element, core.Group, error) {
	g, ok := FindGroup(groups, name)
	if !ok {
		available := make([]string, 0, len(groups))
		for _, g := range groups {
			available = append(available, g.Name)
		}
		return nil, core.Group{}, &core.GroupNotFoundError{Name: name, Available: available}
	}

	out := make([]core.Element, 0, g.Len())
	for _, e := range elements {
		if g.Contains(e.Symbol()) {
			out = append(out, e)
		}
	}
	return out, g, nil
}

package core

import "strings"

// Group is a named collection of element symbols, such as "Alkali metals".
type Group struct {
	// Name is the display name used for lookup (the "cs" key of the dataset).
	Name string
	// Symbols lists the members in declared order.
	Symbols []string
	// Names holds any additional string-valued keys of the record, by key.
	Names map[string]string

	members map[string]struct{}
}

// NewGroup creates a group from its display name and member symbols.
// Symbols are trimmed; blanks and duplicates are dropped.
func NewGroup(name string, symbols []string) Group {
	g := Group{
		Name:    strings.TrimSpace(name),
		Symbols: make([]string, 0, len(symbols)),
		Names:   map[string]string{},
		members: make(map[string]struct{}, len(symbols)),
	}
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := g.members[s]; dup {
			continue
		}
		g.members[s] = struct{}{}
		g.Symbols = append(g.Symbols, s)
	}
	return g
}

// Contains reports whether symbol belongs to the group.
// Symbols are case-sensitive ("Co" is not "CO").
func (g Group) Contains(symbol string) bool {
	_, ok := g.members[strings.TrimSpace(symbol)]
	return ok
}

// Len returns the number of member symbols.
func (g Group) Len() int {
	return len(g.Symbols)
}

package output

import "github.com/leapstack-labs/periodic/pkg/core"

// CriterionInfo describes a field=value filter in JSON output.
type CriterionInfo struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SearchOutput is the JSON output of the search command.
type SearchOutput struct {
	Criterion CriterionInfo  `json:"criterion"`
	Count     int            `json:"count"`
	Elements  []core.Element `json:"elements"`
}

// AverageOutput is the JSON output of the average command.
// Average is null when no record contributed a value.
type AverageOutput struct {
	Criterion    CriterionInfo `json:"criterion"`
	NumericField string        `json:"numeric_field"`
	Average      *float64      `json:"average"`
}

// GroupInfo describes one element group.
type GroupInfo struct {
	Name    string            `json:"name"`
	Count   int               `json:"count"`
	Members []string          `json:"members"`
	Names   map[string]string `json:"names,omitempty"`
}

// GroupsOutput is the JSON output of the groups command.
type GroupsOutput struct {
	Groups []GroupInfo `json:"groups"`
}

// ErrorOutput is written in JSON mode for soft failures.
type ErrorOutput struct {
	Error string `json:"error"`
}

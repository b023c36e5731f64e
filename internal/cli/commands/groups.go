package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/query"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// NewGroupsCommand creates the groups command.
func NewGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [name]",
		Short: "List element groups or show the members of one",
		Long: `Without arguments, list every group with its member count.
With a group name, show the group's members that are present in the element
dataset, in dataset order. Group names are matched case-insensitively.`,
		Example: `  periodic groups
  periodic groups "vzácné plyny"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runGroupsList(cc)
			}
			return runGroupShow(cc, args[0])
		},
	}
}

func groupInfo(g core.Group) output.GroupInfo {
	info := output.GroupInfo{Name: g.Name, Count: g.Len(), Members: g.Symbols}
	if len(g.Names) > 0 {
		info.Names = g.Names
	}
	return info
}

func runGroupsList(cc *CommandContext) error {
	groups := cc.Dataset.Groups
	r := cc.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		out := output.GroupsOutput{Groups: make([]output.GroupInfo, 0, len(groups))}
		for _, g := range groups {
			out.Groups = append(out.Groups, groupInfo(g))
		}
		return r.JSON(out)
	}

	if len(groups) == 0 {
		r.Warning("No groups loaded.")
		return nil
	}

	r.Header(2, fmt.Sprintf("Groups (%d total)", len(groups)))
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Name, otherNames(g), strconv.Itoa(g.Len()), strings.Join(g.Symbols, " ")})
	}
	r.Table([]string{"Name", "Also", "Members", "Symbols"}, rows)
	return nil
}

func runGroupShow(cc *CommandContext, name string) error {
	ds := cc.Dataset
	members, g, err := query.SelectGroup(ds.Elements, ds.Groups, name)
	if err != nil {
		cc.softFailure(err.Error())
		return nil
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(struct {
			output.GroupInfo
			Elements []core.Element `json:"elements"`
		}{groupInfo(g), members})
	}

	r.Header(2, "Group: "+g.Name)
	if len(members) > 0 {
		r.Table(ds.Columns, elementRows(ds.Columns, members))
	}

	present := make(map[string]struct{}, len(members))
	for _, e := range members {
		present[e.Symbol()] = struct{}{}
	}
	var missing []string
	for _, sym := range g.Symbols {
		if _, ok := present[sym]; !ok {
			missing = append(missing, sym)
		}
	}
	r.Muted(fmt.Sprintf("%d of %d member(s) in the dataset", len(members), g.Len()))
	if len(missing) > 0 {
		r.Muted("Not in dataset: " + strings.Join(missing, ", "))
	}
	return nil
}

// otherNames joins a group's extra names as "en: Noble gases".
func otherNames(g core.Group) string {
	keys := make([]string, 0, len(g.Names))
	for k := range g.Names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+g.Names[k])
	}
	return strings.Join(parts, ", ")
}

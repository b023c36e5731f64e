package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/query"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <field> <value>",
		Short: "Find elements whose field matches a value",
		Long: `Find every element whose field equals the given value.

Text fields are compared after trimming and case folding, so "na", " Na "
and "NA" all find sodium. AtomicNumber is compared as an integer.

Field names are matched against the dataset header; common spellings such
as "name", "mass" or "number" are accepted too.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable format`,
		Example: `  # Find by symbol
  periodic search Symbol Na

  # Find by atomic number
  periodic search AtomicNumber 8

  # All elements of period 2 as JSON
  periodic search Period 2 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runSearch(cc, args[0], args[1])
		},
	}

	return cmd
}

func runSearch(cc *CommandContext, fieldName, value string) error {
	field, ok := cc.resolveField(fieldName)
	if !ok {
		return nil
	}

	matches := query.FindByCriterion(cc.Dataset.Elements, field, value)
	cc.Logger.Debug("search", "field", field, "value", value, "matches", len(matches))

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.SearchOutput{
			Criterion: output.CriterionInfo{Field: field, Value: value},
			Count:     len(matches),
			Elements:  matches,
		})
	}

	crit := query.Criterion{Field: field, Value: value}
	if len(matches) == 0 {
		r.Warning(fmt.Sprintf("No element found for %s.", crit))
		return nil
	}

	r.Header(2, fmt.Sprintf("Elements matching %s", crit))
	r.Table(cc.Dataset.Columns, elementRows(cc.Dataset.Columns, matches))
	r.Muted(fmt.Sprintf("%d element(s) found", len(matches)))
	return nil
}

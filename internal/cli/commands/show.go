package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/query"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <symbol>",
		Short: "Show every property of one element",
		Long: `Show all fields of the element with the given symbol, in dataset
column order. Symbols are matched case-insensitively; when several records
share a symbol the first one is shown.`,
		Example: `  periodic show Fe
  periodic show og -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runShow(cc, args[0])
		},
	}
}

func runShow(cc *CommandContext, symbol string) error {
	matches := query.FindByCriterion(cc.Dataset.Elements, core.FieldSymbol, symbol)
	if len(matches) == 0 {
		cc.softFailure(fmt.Sprintf("Element %q not found.", symbol))
		return nil
	}
	e := matches[0]

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(e)
	}

	title := e.Symbol()
	if name := e.Value(core.FieldName); name != "" {
		title = fmt.Sprintf("%s (%s)", name, e.Symbol())
	}
	r.Header(2, title)
	for _, k := range e.Keys() {
		r.KeyValue(k, e.Value(k))
	}
	return nil
}

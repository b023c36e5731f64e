package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/query"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// AverageOptions holds options for the average command.
type AverageOptions struct {
	Of    string
	Stats bool
}

// NewAverageCommand creates the average command.
func NewAverageCommand() *cobra.Command {
	opts := &AverageOptions{}

	cmd := &cobra.Command{
		Use:   "average <field> <value>",
		Short: "Average a numeric field over matching elements",
		Long: `Compute the arithmetic mean of a numeric field (AtomicMass by default)
over the elements whose field matches the value.

Elements with an empty or non-numeric value are skipped. When nothing is
left to average the command says so instead of printing zero.`,
		Example: `  # Average atomic mass of period 1
  periodic average Period 1

  # Average over group 18, with min/max
  periodic average Group 18 --stats

  # Average atomic number of period 2
  periodic average Period 2 --of AtomicNumber`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runAverage(cc, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Of, "of", core.FieldAtomicMass, "Numeric field to average")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Also show count, min and max")

	return cmd
}

func runAverage(cc *CommandContext, fieldName, value string, opts *AverageOptions) error {
	field, ok := cc.resolveField(fieldName)
	if !ok {
		return nil
	}
	ofName := opts.Of
	if ofName == "" {
		ofName = core.FieldAtomicMass
	}
	numericField, ok := cc.resolveField(ofName)
	if !ok {
		return nil
	}

	crit := query.Criterion{Field: field, Value: value}
	avg, found := query.AverageNumericField(cc.Dataset.Elements, field, value, numericField)

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		out := output.AverageOutput{
			Criterion:    output.CriterionInfo{Field: field, Value: value},
			NumericField: numericField,
		}
		if found {
			out.Average = &avg
		}
		if !opts.Stats {
			return r.JSON(out)
		}
		return r.JSON(struct {
			output.AverageOutput
			Stats query.Stats `json:"stats"`
		}{out, query.Summarize(query.Filter(cc.Dataset.Elements, crit), numericField)})
	}

	if !found {
		r.Warning(fmt.Sprintf("No elements match %s with a valid %s.", crit, numericField))
		return nil
	}

	r.Printf("Average %s for %s: %.2f\n", numericField, crit, avg)

	if opts.Stats {
		s := query.Summarize(query.Filter(cc.Dataset.Elements, crit), numericField)
		r.Println("")
		r.KeyValue("Matched", strconv.Itoa(s.Count))
		r.KeyValue("With value", strconv.Itoa(s.Valid))
		r.KeyValue("Min", formatNumber(s.Min))
		r.KeyValue("Max", formatNumber(s.Max))
		r.KeyValue("Mean", formatNumber(s.Mean))
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

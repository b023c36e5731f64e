package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/export"
	"github.com/leapstack-labs/periodic/internal/query"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Group string
	Where []string
	File  string
	Dir   string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <html|json|markdown>",
		Short: "Export elements to an HTML table, JSON or a Markdown overview",
		Long: `Export the element dataset, or a selection of it, to a file.

Formats:
  html      HTML table with every dataset column (elements_table.html)
  json      JSON array of element objects (selected_elements.json)
  markdown  Markdown overview of Symbol, Element, AtomicMass, Group and
            Period (elements_overview.md)

The selection can be narrowed to one group (--group) and by field=value
criteria (--where, repeatable). Files are written to output_dir and replaced
atomically; a failed export leaves any previous file untouched.`,
		Example: `  # Whole dataset as an HTML table
  periodic export html

  # Noble gases as a Markdown overview
  periodic export markdown --group "Vzácné plyny"

  # Period 2 metals to a custom file
  periodic export json --where Period=2 --where Group=1 --file period2.json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"html", "json", "markdown"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(args[0])
			if err != nil {
				return err
			}
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runExport(cc, format, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Export only the members of this group")
	cmd.Flags().StringArrayVarP(&opts.Where, "where", "w", nil, "Filter by Field=Value (repeatable)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Artifact file name (default per format)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Output directory (default output_dir)")

	_ = cmd.RegisterFlagCompletionFunc("group", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		cc, err := NewCommandContext(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return cc.Dataset.GroupNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExport(cc *CommandContext, format export.Format, opts *ExportOptions) error {
	selection, groupName, ok, err := selectForExport(cc, opts)
	if err != nil || !ok {
		return err
	}

	fileName := opts.File
	if fileName == "" {
		fileName = cc.Cfg.Export.FileName(format)
	}
	dir := opts.Dir
	if dir == "" {
		dir = cc.Cfg.OutputDir
	}

	res, err := export.Export(selection, export.Options{
		Format:    format,
		Dir:       dir,
		FileName:  fileName,
		GroupName: groupName,
		Logger:    cc.Logger,
	})
	if err != nil {
		return fmt.Errorf("%s export failed: %w", format, err)
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}
	r.Success(fmt.Sprintf("Exported %d element(s) to %s", res.Count, res.Path))
	return nil
}

// selectForExport applies the group and where filters. ok is false when the
// group does not exist, which is reported but is not an error.
func selectForExport(cc *CommandContext, opts *ExportOptions) ([]core.Element, string, bool, error) {
	ds := cc.Dataset
	selection := ds.Elements
	groupName := ""

	if strings.TrimSpace(opts.Group) != "" {
		members, g, err := query.SelectGroup(ds.Elements, ds.Groups, opts.Group)
		if err != nil {
			var gnf *core.GroupNotFoundError
			if errors.As(err, &gnf) {
				cc.softFailure(gnf.Error())
				return nil, "", false, nil
			}
			return nil, "", false, err
		}
		selection = members
		groupName = g.Name
	}

	if len(opts.Where) > 0 {
		criteria := make([]query.Criterion, 0, len(opts.Where))
		for _, w := range opts.Where {
			c, err := query.ParseCriterion(w)
			if err != nil {
				return nil, "", false, err
			}
			field, err := ds.ResolveField(c.Field)
			if err != nil {
				return nil, "", false, err
			}
			c.Field = field
			criteria = append(criteria, c)
		}
		selection = query.Filter(selection, criteria...)
	}

	cc.Logger.Debug("export selection", "group", groupName, "criteria", len(opts.Where), "elements", len(selection))
	return selection, groupName, true, nil
}

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/catalog"
	"github.com/leapstack-labs/periodic/internal/cli/output"
)

// SQLOptions holds options for the sql command.
type SQLOptions struct {
	Format string
	Input  string
}

// NewSQLCommand creates the sql command.
func NewSQLCommand() *cobra.Command {
	opts := &SQLOptions{}

	cmd := &cobra.Command{
		Use:   "sql [SQL]",
		Short: "Query the dataset with SQL",
		Long: `Run SQL against the element and group datasets.

The datasets are loaded into an in-memory SQLite database; nothing is
written to disk. Tables:

  elements       one TEXT column per dataset column, in file order
  groups         name, position
  group_members  group_name, symbol, position

When invoked without arguments on a terminal, enters interactive REPL mode.`,
		Example: `  # Heaviest elements first
  periodic sql 'SELECT "Symbol", "AtomicMass" FROM elements ORDER BY CAST("AtomicMass" AS REAL) DESC LIMIT 5'

  # Members of a group
  periodic sql "SELECT symbol FROM group_members WHERE group_name = 'Vzácné plyny'"

  # List tables
  periodic sql tables

  # Interactive mode
  periodic sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md (default follows --output)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")

	cmd.AddCommand(newSQLTablesCommand(opts))
	cmd.AddCommand(newSQLSchemaCommand(opts))

	return cmd
}

// resultFormat picks the result format: --format wins, then the renderer mode.
func resultFormat(r *output.Renderer, format string) string {
	if format != "" {
		return format
	}
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return "json"
	case output.ModeMarkdown:
		return "md"
	default:
		return "table"
	}
}

// openCatalog loads the dataset into a fresh in-memory catalog.
// The caller must Close it.
func openCatalog(cmd *cobra.Command) (*catalog.Catalog, *CommandContext, error) {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Open(cmd.Context(), cc.Dataset, cc.Logger)
	if err != nil {
		return nil, nil, err
	}
	return cat, cc, nil
}

func runSQL(cmd *cobra.Command, args []string, opts *SQLOptions) error {
	cat, cc, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	format := resultFormat(cc.Renderer, opts.Format)

	// Determine SQL source
	var sqlQuery string

	switch {
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlQuery = string(content)
	case !isTerminal(os.Stdin):
		// Read from stdin (piped input)
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlQuery = string(content)
	default:
		// No input, TTY detected - enter REPL mode
		return runSQLREPL(cmd, cat, cc, format)
	}

	if strings.TrimSpace(sqlQuery) == "" {
		return fmt.Errorf("no SQL given")
	}

	return executeAndRender(cmd.Context(), cmd.OutOrStdout(), cat, sqlQuery, format)
}

func executeAndRender(ctx context.Context, w io.Writer, cat *catalog.Catalog, sqlQuery, format string) error {
	rows, err := cat.Query(ctx, sqlQuery)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	return renderResults(w, rows, format)
}

// newSQLTablesCommand creates the tables subcommand.
func newSQLTablesCommand(opts *SQLOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the catalog tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, cc, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cat.Close() }()
			return listTablesFromDB(cmd.Context(), cmd.OutOrStdout(), cat.DB(), resultFormat(cc.Renderer, opts.Format))
		},
	}
}

// newSQLSchemaCommand creates the schema subcommand.
func newSQLSchemaCommand(opts *SQLOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <table>",
		Short: "Show the columns of a catalog table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cc, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cat.Close() }()
			return showSchemaFromDB(cmd.Context(), cmd.OutOrStdout(), cat.DB(), args[0], resultFormat(cc.Renderer, opts.Format))
		},
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

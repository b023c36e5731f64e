package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/catalog"
)

const (
	sqlPrompt         = "periodic> "
	sqlContinuePrompt = "     ...> "
)

func runSQLREPL(cmd *cobra.Command, cat *catalog.Catalog, cc *CommandContext, format string) error {
	ctx := cmd.Context()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sqlPrompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newCatalogCompleter(ctx, cat),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "periodic SQL REPL (%d elements, %d groups)\n", len(cc.Dataset.Elements), len(cc.Dataset.Groups))
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	return sqlLoop(ctx, rl, cat, out, cmd.ErrOrStderr(), format)
}

// lineReader is the part of *readline.Instance the REPL loops use.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func sqlLoop(ctx context.Context, rl lineReader, cat *catalog.Catalog, out, errOut io.Writer, format string) error {
	var multiLineBuffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			multiLineBuffer.Reset()
			rl.SetPrompt(sqlPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(ctx, cat, out, errOut, line, format); quit {
				return nil
			}
			continue
		}

		// Accumulate multi-line SQL until semicolon
		multiLineBuffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt(sqlContinuePrompt)
			continue
		}
		rl.SetPrompt(sqlPrompt)

		query := strings.TrimSuffix(multiLineBuffer.String(), ";")
		multiLineBuffer.Reset()

		if err := executeAndRender(ctx, out, cat, query, format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}
}

// handleDotCommand runs a REPL dot-command and reports whether to quit.
func handleDotCommand(ctx context.Context, cat *catalog.Catalog, out, errOut io.Writer, line, format string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".tables":
		if err := listTablesFromDB(ctx, out, cat.DB(), format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

	case ".schema":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .schema <table>")
			return false
		}
		if err := showSchemaFromDB(ctx, out, cat.DB(), parts[1], format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tables         List all tables
  .schema <name>  Show the columns of a table
  .quit / .exit   Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Quote column names: SELECT "Symbol" FROM elements;
  - Use arrow keys to navigate history
  - Tab completion works for table names
`
	_, _ = fmt.Fprintln(w, help)
}

// newCatalogCompleter creates a readline completer for table names and dot-commands.
func newCatalogCompleter(ctx context.Context, cat *catalog.Catalog) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	// Errors only cost completions.
	if tables, err := cat.Tables(ctx); err == nil {
		for _, name := range tables {
			items = append(items, readline.PcItem(name))
		}
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}

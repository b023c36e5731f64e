package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/export"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// errCancelled is returned by prompt when the user presses Ctrl-C.
var errCancelled = errors.New("cancelled")

// NewMenuCommand creates the menu command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Browse the dataset through a numbered menu",
		Long: `Start an interactive numbered menu:

  1. Search elements
  2. Show element properties
  3. Average atomic mass
  4. Export data
  5. Exit

Ctrl-C cancels the current action; Ctrl-D exits. Errors are reported and
the menu continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				HistoryFile:     cc.Cfg.HistoryFile,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize menu: %w", err)
			}
			defer func() { _ = rl.Close() }()

			return runMenu(cc, rl)
		},
	}
}

type menu struct {
	cc *CommandContext
	rl lineReader
}

func runMenu(cc *CommandContext, rl lineReader) error {
	m := &menu{cc: cc, rl: rl}
	r := cc.Renderer

	for {
		r.Println("")
		r.Header(1, "Chemical Elements - Main Menu")
		r.Println("1. Search elements")
		r.Println("2. Show element properties")
		r.Println("3. Average atomic mass")
		r.Println("4. Export data")
		r.Println("5. Exit")

		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			r.Println("Goodbye!")
			return nil
		}
		if err != nil {
			if errors.Is(err, errCancelled) {
				continue
			}
			return err
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = m.search()
		case "2":
			actionErr = m.show()
		case "3":
			actionErr = m.average()
		case "4":
			actionErr = m.export()
		case "5":
			r.Println("Goodbye!")
			return nil
		default:
			r.Warning("Invalid choice, try again.")
			continue
		}

		switch {
		case actionErr == nil, errors.Is(actionErr, errCancelled):
		case errors.Is(actionErr, io.EOF):
			r.Println("Goodbye!")
			return nil
		default:
			cc.Logger.Debug("menu action failed", "choice", choice, "error", actionErr.Error())
			r.Error("Error: " + actionErr.Error())
		}
	}
}

// prompt reads one trimmed line.
func (m *menu) prompt(label string) (string, error) {
	m.rl.SetPrompt(label)
	line, err := m.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errCancelled
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *menu) search() error {
	field, err := m.prompt("Search by (Symbol/Element/AtomicNumber): ")
	if err != nil {
		return err
	}
	value, err := m.prompt("Value: ")
	if err != nil {
		return err
	}
	return runSearch(m.cc, field, value)
}

func (m *menu) show() error {
	symbol, err := m.prompt("Element symbol: ")
	if err != nil {
		return err
	}
	return runShow(m.cc, symbol)
}

func (m *menu) average() error {
	field, err := m.prompt("Average over (Group/Period): ")
	if err != nil {
		return err
	}
	value, err := m.prompt("Number: ")
	if err != nil {
		return err
	}
	return runAverage(m.cc, field, value, &AverageOptions{Of: core.FieldAtomicMass})
}

func (m *menu) export() error {
	r := m.cc.Renderer
	r.Println("")
	r.Header(2, "Export data")
	r.Println("1. Export to HTML")
	r.Println("2. Export to JSON")
	r.Println("3. Export to Markdown")
	r.Println("4. Back")

	choice, err := m.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	var format export.Format
	switch choice {
	case "1":
		format = export.FormatHTML
	case "2":
		format = export.FormatJSON
	case "3":
		format = export.FormatMarkdown
	case "4":
		return nil
	default:
		r.Warning("Invalid choice, try again.")
		return nil
	}

	group, err := m.prompt("Export a specific group? (leave empty for all): ")
	if err != nil {
		return err
	}
	return runExport(m.cc, format, &ExportOptions{Group: group})
}

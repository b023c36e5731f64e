package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/config"
	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/dataset"
	"github.com/leapstack-labs/periodic/pkg/core"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dataset  *dataset.Dataset
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the dataset loaded.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := NewCommandContextWithoutDataset(cmd)

	if err := cc.Cfg.ValidateDataset(); err != nil {
		return nil, err
	}

	ds, err := dataset.Load(cmd.Context(), dataset.Options{
		ElementsPath:  cc.Cfg.Elements,
		GroupsPath:    cc.Cfg.Groups,
		RequireGroups: cc.Cfg.RequireGroups,
		Logger:        cc.Logger,
	})
	if err != nil {
		return nil, err
	}
	cc.Dataset = ds

	return cc, nil
}

// NewCommandContextWithoutDataset creates a CommandContext without loading the dataset.
// Useful for commands that only report on configuration.
func NewCommandContextWithoutDataset(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// resolveField maps a user-typed field name onto a dataset column.
// Unknown fields are a soft outcome: the renderer shows the available
// columns and ok is false.
func (cc *CommandContext) resolveField(name string) (string, bool) {
	field, err := cc.Dataset.ResolveField(name)
	if err != nil {
		cc.softFailure(err.Error())
		return "", false
	}
	return field, true
}

// softFailure reports an outcome that is not an error: nothing matched,
// nothing to average, an unknown name.
func (cc *CommandContext) softFailure(msg string) {
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(output.ErrorOutput{Error: msg})
		return
	}
	r.Warning(msg)
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Elements:     getEnvOrDefault(config.EnvPrefix+"ELEMENTS", config.DefaultElementsFile),
		Groups:       getEnvOrDefault(config.EnvPrefix+"GROUPS", config.DefaultGroupsFile),
		OutputDir:    getEnvOrDefault(config.EnvPrefix+"OUTPUT_DIR", config.DefaultOutputDir),
		OutputFormat: os.Getenv(config.EnvPrefix + "OUTPUT"),
		Verbose:      os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// elementRows lays elements out under the dataset's columns.
func elementRows(columns []string, elements []core.Element) [][]string {
	rows := make([][]string, len(elements))
	for i, e := range elements {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = e.Value(c)
		}
		rows[i] = row
	}
	return rows
}

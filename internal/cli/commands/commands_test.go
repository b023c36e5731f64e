package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/periodic/internal/cli/config"
	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/cli/testutil"
	"github.com/leapstack-labs/periodic/internal/dataset"
	dstest "github.com/leapstack-labs/periodic/internal/testutil"
)

// newTestContext loads the fixture dataset and captures rendered output.
func newTestContext(t *testing.T, mode output.OutputMode) (*CommandContext, *testutil.TestRenderer) {
	t.Helper()

	_, elementsPath, groupsPath := dstest.WriteDataset(t)
	ds, err := dataset.Load(context.Background(), dataset.Options{
		ElementsPath: elementsPath,
		GroupsPath:   groupsPath,
	})
	require.NoError(t, err)

	tr := testutil.NewTestRenderer(mode, mode == output.ModeText)
	return &CommandContext{
		Cfg: &config.Config{
			Elements:  elementsPath,
			Groups:    groupsPath,
			OutputDir: t.TempDir(),
		},
		Logger:   dstest.NewTestLogger(t),
		Dataset:  ds,
		Renderer: tr.Renderer,
	}, tr
}

func TestNewSearchCommand(t *testing.T) {
	cmd := NewSearchCommand()

	assert.Equal(t, "search <field> <value>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.Error(t, cmd.Args(cmd, []string{"Symbol"}))
}

func TestNewShowCommand(t *testing.T) {
	cmd := NewShowCommand()

	assert.Equal(t, "show <symbol>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewAverageCommand(t *testing.T) {
	cmd := NewAverageCommand()

	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"of", "stats"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "AtomicMass", cmd.Flags().Lookup("of").DefValue)
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export <html|json|markdown>", cmd.Use)
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.Equal(t, []string{"html", "json", "markdown"}, cmd.ValidArgs)

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"group", "where", "file", "dir"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewGroupsCommand(t *testing.T) {
	cmd := NewGroupsCommand()

	assert.Equal(t, "groups [name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewSQLCommand(t *testing.T) {
	cmd := NewSQLCommand()

	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"format", "input"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}

	var subs []string
	for _, c := range cmd.Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"tables", "schema"}, subs)
}

func TestNewMenuCommand(t *testing.T) {
	cmd := NewMenuCommand()

	assert.Equal(t, "menu", cmd.Use)
	assert.Contains(t, cmd.Long, "Export data")
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
	assert.Equal(t, "false", cmd.Flags().Lookup("watch").DefValue)
}

func TestResolveField_Soft(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)

	field, ok := cc.resolveField("mass")
	assert.True(t, ok)
	assert.Equal(t, "AtomicMass", field)

	_, ok = cc.resolveField("Density")
	assert.False(t, ok)
	assert.Contains(t, tr.ErrorOutput(), `unknown field "Density"`)
	assert.Empty(t, tr.Output())
}

func TestSoftFailure_JSON(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeJSON)

	cc.softFailure("nothing here")
	assert.JSONEq(t, `{"error":"nothing here"}`, tr.Output())
}

func TestElementRows(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)

	rows := elementRows([]string{"Symbol", "Density"}, cc.Dataset.Elements[:2])
	assert.Equal(t, [][]string{{"H", ""}, {"He", ""}}, rows)
}

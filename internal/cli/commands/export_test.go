package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/periodic/internal/cli/config"
	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/export"
)

func TestRunExport(t *testing.T) {
	tests := []struct {
		name     string
		format   export.Format
		opts     ExportOptions
		wantFile string
		wantIn   []string
		wantNot  []string
		wantMsg  string
	}{
		{
			name:     "html whole dataset",
			format:   export.FormatHTML,
			wantFile: "elements_table.html",
			wantIn:   []string{"<td>Hydrogen</td>", "<td>Oganesson</td>"},
			wantMsg:  "Exported 8 element(s)",
		},
		{
			name:     "json group",
			format:   export.FormatJSON,
			opts:     ExportOptions{Group: "alkalické kovy"},
			wantFile: "selected_elements.json",
			wantIn:   []string{`"Lithium"`, `"Potassium"`},
			wantNot:  []string{`"Hydrogen"`},
			wantMsg:  "Exported 3 element(s)",
		},
		{
			name:     "markdown with where and custom file",
			format:   export.FormatMarkdown,
			opts:     ExportOptions{Group: "Vzácné plyny", Where: []string{"Period=2"}, File: "noble.md"},
			wantFile: "noble.md",
			wantIn:   []string{"Vzácné plyny", "| Ne | Neon |"},
			wantNot:  []string{"Helium"},
			wantMsg:  "Exported 1 element(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, tr := newTestContext(t, output.ModeMarkdown)

			require.NoError(t, runExport(cc, tt.format, &tt.opts))

			path := filepath.Join(cc.Cfg.OutputDir, tt.wantFile)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			for _, want := range tt.wantIn {
				assert.Contains(t, string(data), want)
			}
			for _, not := range tt.wantNot {
				assert.NotContains(t, string(data), not)
			}
			assert.Contains(t, tr.Output(), tt.wantMsg)
			assert.Contains(t, tr.Output(), path)
		})
	}
}

func TestRunExport_ConfiguredFileName(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)
	cc.Cfg.Export = config.ExportConfig{JSONFile: "all.json"}

	require.NoError(t, runExport(cc, export.FormatJSON, &ExportOptions{}))
	assert.FileExists(t, filepath.Join(cc.Cfg.OutputDir, "all.json"))
}

func TestRunExport_DirFlagWins(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, runExport(cc, export.FormatHTML, &ExportOptions{Dir: dir}))
	assert.FileExists(t, filepath.Join(dir, "elements_table.html"))
	assert.NoFileExists(t, filepath.Join(cc.Cfg.OutputDir, "elements_table.html"))
}

func TestRunExport_UnknownGroupIsSoft(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)

	require.NoError(t, runExport(cc, export.FormatHTML, &ExportOptions{Group: "Halogeny"}))
	assert.Contains(t, tr.ErrorOutput(), `group "Halogeny" not found`)
	assert.NoFileExists(t, filepath.Join(cc.Cfg.OutputDir, "elements_table.html"))
}

func TestRunExport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  export.Format
		opts    ExportOptions
		wantErr string
	}{
		{
			name:    "empty html selection",
			format:  export.FormatHTML,
			opts:    ExportOptions{Where: []string{"Period=9"}},
			wantErr: "html export failed",
		},
		{
			name:    "malformed where",
			format:  export.FormatJSON,
			opts:    ExportOptions{Where: []string{"Period"}},
			wantErr: "expected Field=Value",
		},
		{
			name:    "unknown where field",
			format:  export.FormatJSON,
			opts:    ExportOptions{Where: []string{"Density=1"}},
			wantErr: `unknown field "Density"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, _ := newTestContext(t, output.ModeMarkdown)

			err := runExport(cc, tt.format, &tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			entries, readErr := os.ReadDir(cc.Cfg.OutputDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "a failed export must not leave files behind")
		})
	}
}

func TestRunExport_JSONResult(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeJSON)

	require.NoError(t, runExport(cc, export.FormatMarkdown, &ExportOptions{Group: "Kovy alkalických zemin"}))

	var res export.Result
	require.NoError(t, json.Unmarshal([]byte(tr.Output()), &res))
	assert.Equal(t, export.FormatMarkdown, res.Format)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, filepath.Join(cc.Cfg.OutputDir, "elements_overview.md"), res.Path)
}

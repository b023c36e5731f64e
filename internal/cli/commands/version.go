package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/periodic/internal/cli/output"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, gitCommit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display periodic version and build information.

With --output json the same fields are printed as a JSON object.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := BuildInfo{
				Version:   version,
				GitCommit: gitCommit,
				BuildDate: buildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return renderVersion(NewCommandContextWithoutDataset(cmd).Renderer, info)
		},
	}
}

func renderVersion(r *output.Renderer, info BuildInfo) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}
	r.Printf("periodic v%s\n", info.Version)
	r.Println("Periodic-table browser built with Go")
	r.Printf("commit %s, built %s, %s %s\n", info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
	return nil
}

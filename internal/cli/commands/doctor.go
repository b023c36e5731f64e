package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/periodic/internal/cli/config"
	"github.com/leapstack-labs/periodic/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/periodic/internal/config"
	"github.com/leapstack-labs/periodic/internal/dataset"
	"github.com/spf13/cobra"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, markdown, json
	Watch  bool   // Re-run the checks whenever a dataset file changes
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the element and group datasets for problems",
		Long: `Analyze the datasets for issues that affect searches and exports.

The doctor command runs every dataset health check and reports:
- Dataset summary (elements, columns, groups)
- Health checks grouped by category (Elements, Groups)
- Health score (0-100)
- Actionable recommendations

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run health check
  periodic doctor

  # Output as JSON
  periodic doctor --format json

  # Re-check while editing the datasets (Ctrl+C to stop)
  periodic doctor --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the checks when a dataset file changes")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary DatasetSummary `json:"summary"`
	// Declared is the project file as written, before env and flag overrides.
	Declared        *sharedcfg.ProjectConfig `json:"declared,omitempty"`
	HealthChecks    []HealthCheck            `json:"health_checks"`
	Score           int                      `json:"score"`
	Recommendations []string                 `json:"recommendations"`
	IssueCount      int                      `json:"issue_count"`
}

// DatasetSummary contains dataset-level statistics.
type DatasetSummary struct {
	ConfigFile   string `json:"config_file,omitempty"`
	ElementsPath string `json:"elements_path"`
	GroupsPath   string `json:"groups_path"`
	Elements     int    `json:"elements"`
	Columns      int    `json:"columns"`
	Groups       int    `json:"groups"`
	GroupMembers int    `json:"group_members"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cc.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	doctorOutput := buildDoctorOutput(cc.Dataset)
	doctorOutput.Summary.ConfigFile = config.GetConfigFileUsed()

	declared, err := sharedcfg.LoadFromDir(cc.Cfg.ProjectRoot)
	if err != nil {
		cc.Logger.Warn("could not read project config", "dir", cc.Cfg.ProjectRoot, "error", err.Error())
	}
	doctorOutput.Declared = declared

	if err := renderDoctor(r, doctorOutput); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchDoctor(ctx, cc, r, declared)
}

// watchDoctor re-renders the report after every dataset reload until ctx ends.
func watchDoctor(ctx context.Context, cc *CommandContext, r *output.Renderer, declared *sharedcfg.ProjectConfig) error {
	_, _ = fmt.Fprintf(r.ErrWriter(), "Watching %s for changes (Ctrl+C to stop)\n", strings.Join(watchedPaths(cc.Dataset), ", "))

	return dataset.Watch(ctx, dataset.Options{
		ElementsPath:  cc.Cfg.Elements,
		GroupsPath:    cc.Cfg.Groups,
		RequireGroups: cc.Cfg.RequireGroups,
		Logger:        cc.Logger,
	}, dataset.DefaultDebounce, func(ds *dataset.Dataset, err error) {
		if err != nil {
			r.Error(fmt.Sprintf("reload failed: %v", err))
			return
		}
		cc.Dataset = ds
		out := buildDoctorOutput(ds)
		out.Summary.ConfigFile = config.GetConfigFileUsed()
		out.Declared = declared
		if err := renderDoctor(r, out); err != nil {
			cc.Logger.Error("failed to render report", "error", err)
		}
	})
}

func watchedPaths(ds *dataset.Dataset) []string {
	paths := []string{ds.ElementsPath}
	if ds.GroupsPath != "" {
		paths = append(paths, ds.GroupsPath)
	}
	return paths
}

func renderDoctor(r *output.Renderer, out *DoctorOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, out)
	default:
		return renderDoctorText(r, out)
	}
}

func buildDoctorOutput(ds *dataset.Dataset) *DoctorOutput {
	findings := ds.Check()

	byRule := make(map[string][]string)
	for _, f := range findings {
		byRule[f.RuleID] = append(byRule[f.RuleID], f.Message)
	}

	rules := dataset.Rules()
	healthChecks := make([]HealthCheck, 0, len(rules))
	for _, rule := range rules {
		details := byRule[rule.ID]
		status := "pass"
		if len(details) > 0 {
			if rule.Severity == dataset.SeverityError {
				status = "error"
			} else {
				status = "warn"
			}
		}

		healthChecks = append(healthChecks, HealthCheck{
			RuleID:     rule.ID,
			Name:       rule.Name,
			Group:      rule.Group,
			Status:     status,
			IssueCount: len(details),
			Details:    details,
		})
	}

	members := 0
	for _, g := range ds.Groups {
		members += g.Len()
	}
	summary := DatasetSummary{
		ElementsPath: ds.ElementsPath,
		GroupsPath:   ds.GroupsPath,
		Elements:     len(ds.Elements),
		Columns:      len(ds.Columns),
		Groups:       len(ds.Groups),
		GroupMembers: members,
	}

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    healthChecks,
		Score:           calculateHealthScore(healthChecks, summary.Elements),
		Recommendations: generateRecommendations(healthChecks),
		IssueCount:      len(findings),
	}
}

// calculateHealthScore computes a health score from 0-100.
// The scoring weights:
// - Each issue reduces points
// - Errors count double
// - Larger datasets mean issues have less individual impact
func calculateHealthScore(checks []HealthCheck, elementCount int) int {
	if len(checks) == 0 {
		return 100
	}

	score := 100.0

	basePenalty := 5.0
	if elementCount > 10 {
		basePenalty = 3.0
	}
	if elementCount > 50 {
		basePenalty = 2.0
	}
	if elementCount > 100 {
		basePenalty = 1.0
	}

	for _, check := range checks {
		switch check.Status {
		case "error":
			score -= float64(check.IssueCount) * basePenalty * 2
		case "warn":
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	// Clamp to 0-100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}

		rec := getRecommendation(check.RuleID)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}

	// Limit to top 5 recommendations
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}

	return recommendations
}

// getRecommendation returns a recommendation for a specific rule.
func getRecommendation(ruleID string) string {
	switch ruleID {
	case "DS01":
		return "Add the Symbol, Element, AtomicMass, Group and Period columns needed by the Markdown overview"
	case "DS02":
		return "Fill in the Symbol of every record; records without one cannot be shown or grouped"
	case "DS03":
		return "Make symbols unique; show and group exports only see the first record"
	case "DS04":
		return "Use plain digits for AtomicNumber so numeric search can match it"
	case "DS05":
		return "Use plain decimals for AtomicMass (no brackets or units) so averages include them"
	case "GR01":
		return "Add the missing elements to the dataset or remove them from their groups"
	case "GR02":
		return "Remove empty groups or list their member symbols"
	case "GR03":
		return "Rename or merge groups that share a display name"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header.Render("Dataset Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	r.Println(styles.Subheader.Render("Dataset Summary"))
	if out.Summary.ConfigFile != "" {
		r.Printf("   Config: %s\n", out.Summary.ConfigFile)
	}
	if d := out.Declared; d != nil {
		r.Printf("   Declared: elements=%s groups=%s output_dir=%s\n", d.Elements, d.Groups, d.OutputDir)
	}
	r.Printf("   Elements: %d | Columns: %d\n", out.Summary.Elements, out.Summary.Columns)
	r.Printf("   Groups: %d | Group members: %d\n", out.Summary.Groups, out.Summary.GroupMembers)
	r.Println("")

	r.Println(styles.Subheader.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("✓")
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.Error.Render("✗")
		}

		status := fmt.Sprintf("%s %s: %s", icon, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			status += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + status)

		// Show first 3 details for issues
		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Subheader.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# Dataset Health Report")
	r.Println("")

	r.Println("## Dataset Summary")
	r.Println("")
	if out.Summary.ConfigFile != "" {
		r.Println(output.FormatKeyValue("Config", out.Summary.ConfigFile))
	}
	if d := out.Declared; d != nil {
		r.Println(output.FormatKeyValue("Declared elements", d.Elements))
		r.Println(output.FormatKeyValue("Declared groups", d.Groups))
	}
	r.Println(output.FormatKeyValue("Elements", fmt.Sprintf("%d", out.Summary.Elements)))
	r.Println(output.FormatKeyValue("Columns", fmt.Sprintf("%d", out.Summary.Columns)))
	r.Println(output.FormatKeyValue("Groups", fmt.Sprintf("%d", out.Summary.Groups)))
	r.Println(output.FormatKeyValue("Group members", fmt.Sprintf("%d", out.Summary.GroupMembers)))
	r.Println("")

	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("### " + titleCaser.String(currentGroup))
			r.Println("")
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		r.Printf("- **[%s]** %s: %s", status, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			r.Printf(" (%d issues)", check.IssueCount)
		}
		r.Println("")

		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

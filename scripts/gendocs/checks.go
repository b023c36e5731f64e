package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/periodic/internal/dataset"
)

// checkGroupDescriptions provides human-readable descriptions for check groups.
var checkGroupDescriptions = map[string]string{
	"elements": "Checks on the element dataset's columns and values.",
	"groups":   "Checks on the group dataset and how it refers to elements.",
}

// generateCheckDocs generates the dataset check reference used by `periodic doctor`.
func generateCheckDocs(outDir string) error {
	log.Printf("Generating check docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := dataset.Rules()

	w := NewMarkdownWriter()
	w.Frontmatter("Dataset Checks", "Health checks run by periodic doctor")
	w.GeneratedMarker()

	w.Header(1, "Dataset Checks")
	w.Paragraph(fmt.Sprintf("%s runs **%d checks** against the loaded datasets and reports a health score.",
		InlineCode("periodic doctor"), len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode(string(dataset.SeverityError)), "An export will fail until this is fixed"},
			{InlineCode(string(dataset.SeverityWarning)), "Some records are skipped or cannot be found"},
		},
	)

	var groups []string
	byGroup := make(map[string][]dataset.Rule)
	for _, r := range rules {
		if _, seen := byGroup[r.Group]; !seen {
			groups = append(groups, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	for _, g := range groups {
		w.Header(2, capitalizeFirst(g))
		if desc := checkGroupDescriptions[g]; desc != "" {
			w.Paragraph(desc)
		}
		for _, r := range byGroup[g] {
			writeRuleDoc(w, r)
		}
	}

	filename := filepath.Join(outDir, "checks.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated checks.md")
	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single check.
func writeRuleDoc(w *MarkdownWriter, rule dataset.Rule) {
	// Rule header with anchor: ### DS01 - document-fields {#DS01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(string(rule.Severity))))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	w.Line("---")
	w.Newline()
}

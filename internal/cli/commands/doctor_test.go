package commands

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/cli/testutil"
	"github.com/leapstack-labs/periodic/internal/dataset"
)

func TestCalculateHealthScore(t *testing.T) {
	tests := []struct {
		name         string
		checks       []HealthCheck
		elementCount int
		minScore     int
		maxScore     int
	}{
		{
			name:         "no checks returns 100",
			checks:       nil,
			elementCount: 10,
			minScore:     100,
			maxScore:     100,
		},
		{
			name: "all passing returns 100",
			checks: []HealthCheck{
				{RuleID: "DS01", Status: "pass", IssueCount: 0},
				{RuleID: "GR01", Status: "pass", IssueCount: 0},
			},
			elementCount: 10,
			minScore:     100,
			maxScore:     100,
		},
		{
			name: "warnings reduce score",
			checks: []HealthCheck{
				{RuleID: "DS01", Status: "pass", IssueCount: 0},
				{RuleID: "DS05", Status: "warn", IssueCount: 2},
			},
			elementCount: 10,
			minScore:     80,
			maxScore:     99,
		},
		{
			name: "errors reduce score more",
			checks: []HealthCheck{
				{RuleID: "DS01", Status: "error", IssueCount: 2},
			},
			elementCount: 10,
			minScore:     70,
			maxScore:     95,
		},
		{
			name: "more elements means less impact per issue",
			checks: []HealthCheck{
				{RuleID: "GR01", Status: "warn", IssueCount: 5},
			},
			elementCount: 118,
			minScore:     90,
			maxScore:     100,
		},
		{
			name: "many issues can reduce to 0",
			checks: []HealthCheck{
				{RuleID: "DS01", Status: "error", IssueCount: 20},
				{RuleID: "DS03", Status: "warn", IssueCount: 20},
			},
			elementCount: 5,
			minScore:     0,
			maxScore:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calculateHealthScore(tt.checks, tt.elementCount)
			assert.GreaterOrEqual(t, score, tt.minScore, "score should be >= %d", tt.minScore)
			assert.LessOrEqual(t, score, tt.maxScore, "score should be <= %d", tt.maxScore)
		})
	}
}

func TestGetRecommendation(t *testing.T) {
	for _, rule := range dataset.Rules() {
		t.Run(rule.ID, func(t *testing.T) {
			assert.NotEmpty(t, getRecommendation(rule.ID), "expected recommendation for %s", rule.ID)
		})
	}
	assert.Empty(t, getRecommendation("UNKNOWN"))
}

func TestGenerateRecommendations(t *testing.T) {
	checks := []HealthCheck{
		{RuleID: "DS05", Status: "warn", IssueCount: 1},
		{RuleID: "GR01", Status: "warn", IssueCount: 2},
		{RuleID: "GR02", Status: "pass", IssueCount: 0},
	}

	recommendations := generateRecommendations(checks)

	assert.Len(t, recommendations, 2)
	assert.Contains(t, recommendations[0], "AtomicMass")
	assert.Contains(t, recommendations[1], "missing elements")
}

func TestGenerateRecommendations_LimitTo5(t *testing.T) {
	var checks []HealthCheck
	for _, rule := range dataset.Rules() {
		checks = append(checks, HealthCheck{RuleID: rule.ID, Status: "warn", IssueCount: 1})
	}

	assert.Len(t, generateRecommendations(checks), 5)
}

func TestBuildDoctorOutput(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)

	out := buildDoctorOutput(cc.Dataset)

	assert.Equal(t, 8, out.Summary.Elements)
	assert.Equal(t, 6, out.Summary.Columns)
	assert.Equal(t, 3, out.Summary.Groups)
	assert.Equal(t, 16, out.Summary.GroupMembers)
	require.Len(t, out.HealthChecks, len(dataset.Rules()))

	byID := make(map[string]HealthCheck)
	for _, c := range out.HealthChecks {
		byID[c.RuleID] = c
	}
	assert.Equal(t, "pass", byID["DS01"].Status)
	assert.Equal(t, "warn", byID["DS05"].Status)
	assert.Equal(t, 1, byID["DS05"].IssueCount, "Og has a bracketed mass")
	assert.Equal(t, 9, byID["GR01"].IssueCount)
	assert.Equal(t, 10, out.IssueCount)
	assert.Less(t, out.Score, 100)
	assert.NotEmpty(t, out.Recommendations)
}

func TestRenderDoctor(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)
	out := buildDoctorOutput(cc.Dataset)

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		require.NoError(t, renderDoctor(tr.Renderer, out))
		md := tr.Output()
		assert.Contains(t, md, "# Dataset Health Report")
		assert.Contains(t, md, "### Elements")
		assert.Contains(t, md, "### Groups")
		assert.Contains(t, md, "- **[WARN]** DS05: atomic-mass (1 issues)")
		assert.Contains(t, md, "- **[PASS]** DS01: document-fields")
	})

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeText, false)
		require.NoError(t, renderDoctor(tr.Renderer, out))
		text := tr.Output()
		assert.Contains(t, text, "Health Score:")
		assert.Contains(t, text, "... and 6 more")
		testutil.AssertNoANSI(t, text)
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererJSON()
		require.NoError(t, renderDoctor(tr.Renderer, out))

		var got DoctorOutput
		require.NoError(t, json.Unmarshal([]byte(tr.Output()), &got))
		assert.Equal(t, out.Score, got.Score)
		assert.Equal(t, out.IssueCount, got.IssueCount)
	})
}

func TestWatchDoctor_RerunsOnChange(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeJSON)
	tr := testutil.NewTestRendererJSON()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchDoctor(ctx, cc, tr.Renderer, nil) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(cc.Cfg.Elements, []byte("Symbol,Element,AtomicNumber,AtomicMass,Group,Period\nH,Hydrogen,1,1.008,1,1\n"), 0o600))
	time.Sleep(400 * time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchDoctor did not stop")
	}

	assert.Contains(t, tr.ErrorOutput(), "Watching "+cc.Cfg.Elements)

	var got DoctorOutput
	dec := json.NewDecoder(strings.NewReader(tr.Output()))
	require.NoError(t, dec.Decode(&got), "a report is rendered after the change")
	assert.Equal(t, 1, got.Summary.Elements)
}

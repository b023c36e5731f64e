package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/periodic/internal/cli/output"
	"github.com/leapstack-labs/periodic/internal/cli/testutil"
)

func TestRunGroupsList(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)

	require.NoError(t, runGroupsList(cc))
	out := tr.Output()
	assert.Contains(t, out, "## Groups (3 total)")
	assert.Contains(t, out, "| Alkalické kovy | en: Alkali metals | 6 | Li Na K Rb Cs Fr |")
	testutil.AssertValidMarkdown(t, out)
}

func TestRunGroupsList_JSON(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeJSON)

	require.NoError(t, runGroupsList(cc))

	var got output.GroupsOutput
	require.NoError(t, json.Unmarshal([]byte(tr.Output()), &got))
	require.Len(t, got.Groups, 3)
	assert.Equal(t, "Vzácné plyny", got.Groups[1].Name)
	assert.Equal(t, 7, got.Groups[1].Count)
	assert.Equal(t, "Noble gases", got.Groups[1].Names["en"])
}

func TestRunGroupShow(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)

	require.NoError(t, runGroupShow(cc, "  vzácné PLYNY "))
	out := tr.Output()
	assert.Contains(t, out, "## Group: Vzácné plyny")
	assert.Contains(t, out, "| He | Helium |")
	assert.Contains(t, out, "3 of 7 member(s) in the dataset")
	assert.Contains(t, out, "Not in dataset: Ar, Kr, Xe, Rn")
}

func TestRunGroupShow_Unknown(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)

	require.NoError(t, runGroupShow(cc, "Halogeny"))
	assert.Empty(t, tr.Output())
	assert.Contains(t, tr.ErrorOutput(), `group "Halogeny" not found`)
	assert.Contains(t, tr.ErrorOutput(), "Alkalické kovy")
}

func TestRunGroupShow_JSON(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeJSON)

	require.NoError(t, runGroupShow(cc, "Alkalické kovy"))

	var got struct {
		Name     string              `json:"name"`
		Elements []map[string]string `json:"elements"`
	}
	require.NoError(t, json.Unmarshal([]byte(tr.Output()), &got))
	assert.Equal(t, "Alkalické kovy", got.Name)

	var symbols []string
	for _, e := range got.Elements {
		symbols = append(symbols, e["Symbol"])
	}
	assert.Equal(t, []string{"Li", "Na", "K"}, symbols)
}

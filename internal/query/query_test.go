package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/periodic/pkg/core"
)

func sample() []core.Element {
	return []core.Element{
		core.ElementOf("Symbol", "H", "Element", "Hydrogen", "AtomicNumber", "1", "AtomicMass", "1.008", "Group", "1", "Period", "1"),
		core.ElementOf("Symbol", "He", "Element", "Helium", "AtomicNumber", "2", "AtomicMass", "4.0026", "Group", "18", "Period", "1"),
		core.ElementOf("Symbol", "Li", "Element", "Lithium", "AtomicNumber", " 3 ", "AtomicMass", "6.94", "Group", "1", "Period", "2"),
		core.ElementOf("Symbol", "Na", "Element", "Sodium", "AtomicNumber", "11", "AtomicMass", "22.990", "Group", "1", "Period", "3"),
		core.ElementOf("Symbol", "K", "Element", "Potassium", "AtomicNumber", "19", "AtomicMass", "39.098", "Group", "1", "Period", "4"),
		core.ElementOf("Symbol", "Og", "Element", "Oganesson", "AtomicNumber", "", "AtomicMass", "[294]", "Group", "18", "Period", "7"),
		core.ElementOf("Symbol", "Xx", "Element", "Unknownium", "AtomicNumber", "n/a", "AtomicMass", "", "Group", "", "Period", "7"),
	}
}

func symbols(elements []core.Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.Symbol())
	}
	return out
}

func TestFindByCriterion(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  []string
	}{
		{name: "period shared by two", field: "Period", value: "1", want: []string{"H", "He"}},
		{name: "case insensitive name", field: "Element", value: "hELIUM", want: []string{"He"}},
		{name: "whitespace trimmed", field: "Symbol", value: "  Na ", want: []string{"Na"}},
		{name: "unicode case folding", field: "Element", value: "SODIUM", want: []string{"Na"}},
		{name: "stable order", field: "Group", value: "1", want: []string{"H", "Li", "Na", "K"}},
		{name: "absent field matches empty value", field: "Density", value: "", want: []string{"H", "He", "Li", "Na", "K", "Og", "Xx"}},
		{name: "field name is case sensitive", field: "symbol", value: "H", want: []string{}},
		{name: "no match", field: "Symbol", value: "Zz", want: []string{}},
		{name: "atomic number exact", field: "AtomicNumber", value: "2", want: []string{"He"}},
		{name: "atomic number trims record value", field: "AtomicNumber", value: "3", want: []string{"Li"}},
		{name: "atomic number trims query value", field: "AtomicNumber", value: " 11 ", want: []string{"Na"}},
		{name: "atomic number leading zeros", field: "AtomicNumber", value: "019", want: []string{"K"}},
		{name: "atomic number signed query", field: "AtomicNumber", value: "+1", want: []string{"H"}},
		{name: "atomic number negative query", field: "AtomicNumber", value: "-1", want: []string{}},
		{name: "atomic number decimal query", field: "AtomicNumber", value: "1.0", want: []string{}},
		{name: "atomic number non numeric query", field: "AtomicNumber", value: "two", want: []string{}},
		{name: "atomic number never matches blank records", field: "AtomicNumber", value: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindByCriterion(sample(), tt.field, tt.value)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, symbols(got))
		})
	}
}

func TestFindByCriterion_IncludesVerbatimValues(t *testing.T) {
	elements := sample()
	for _, e := range elements {
		for _, field := range e.Keys() {
			if field == core.FieldAtomicNumber {
				continue
			}
			got := FindByCriterion(elements, field, e.Value(field))
			assert.Contains(t, symbols(got), e.Symbol(), "field %s value %q", field, e.Value(field))
		}
	}
}

func TestFindByCriterion_DoesNotModifyInput(t *testing.T) {
	elements := sample()
	before := symbols(elements)
	_ = FindByCriterion(elements, "Group", "18")
	assert.Equal(t, before, symbols(elements))
}

func TestFilter_AllCriteria(t *testing.T) {
	got := Filter(sample(),
		Criterion{Field: "Group", Value: "1"},
		Criterion{Field: "Period", Value: "2"},
	)
	assert.Equal(t, []string{"Li"}, symbols(got))

	assert.Len(t, Filter(sample()), 7, "no criteria selects everything")
}

func TestAverageNumericField(t *testing.T) {
	t.Run("scenario period one", func(t *testing.T) {
		avg, ok := AverageNumericField(sample(), "Period", "1", "AtomicMass")
		require.True(t, ok)
		assert.InDelta(t, (1.008+4.0026)/2, avg, 1e-12)
	})

	t.Run("simple mean", func(t *testing.T) {
		elements := []core.Element{
			core.ElementOf("Group", "2", "AtomicMass", "1.0"),
			core.ElementOf("Group", "2", "AtomicMass", "2.0"),
			core.ElementOf("Group", "2", "AtomicMass", "3.0"),
		}
		avg, ok := AverageNumericField(elements, "Group", "2", "AtomicMass")
		require.True(t, ok)
		assert.Equal(t, 2.0, avg)
	})

	t.Run("unparseable values skipped", func(t *testing.T) {
		avg, ok := AverageNumericField(sample(), "Group", "18", "AtomicMass")
		require.True(t, ok)
		assert.Equal(t, 4.0026, avg)
	})

	t.Run("no match is no data", func(t *testing.T) {
		_, ok := AverageNumericField(sample(), "Group", "99", "AtomicMass")
		assert.False(t, ok)
	})

	t.Run("only invalid values is no data", func(t *testing.T) {
		elements := []core.Element{
			core.ElementOf("Group", "3", "AtomicMass", "[227]"),
			core.ElementOf("Group", "3", "AtomicMass", "1e3"),
			core.ElementOf("Group", "3", "AtomicMass", ""),
		}
		_, ok := AverageNumericField(elements, "Group", "3", "AtomicMass")
		assert.False(t, ok)
	})

	t.Run("zero average is data", func(t *testing.T) {
		elements := []core.Element{core.ElementOf("Group", "0", "AtomicMass", "0")}
		avg, ok := AverageNumericField(elements, "Group", "0", "AtomicMass")
		require.True(t, ok)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("filter value normalized", func(t *testing.T) {
		avg, ok := AverageNumericField(sample(), "Period", " 1 ", "AtomicMass")
		require.True(t, ok)
		assert.InDelta(t, (1.008+4.0026)/2, avg, 1e-12)
	})
}

func TestParseCriterion(t *testing.T) {
	c, err := ParseCriterion("Period=1")
	require.NoError(t, err)
	assert.Equal(t, Criterion{Field: "Period", Value: "1"}, c)
	assert.Equal(t, "Period=1", c.String())

	c, err = ParseCriterion(" Element = Iron")
	require.NoError(t, err)
	assert.Equal(t, "Element", c.Field)
	assert.Equal(t, " Iron", c.Value)

	for _, bad := range []string{"", "Period", "=1"} {
		_, err := ParseCriterion(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSelectGroup(t *testing.T) {
	groups := []core.Group{
		core.NewGroup("Vzácné plyny", []string{"He", "Ne", "Ar"}),
		core.NewGroup("Alkalické kovy", []string{"K", "Na", "Li"}),
	}

	got, g, err := SelectGroup(sample(), groups, "alkalické KOVY")
	require.NoError(t, err)
	assert.Equal(t, "Alkalické kovy", g.Name)
	assert.Equal(t, []string{"Li", "Na", "K"}, symbols(got), "dataset order, not group order")

	_, _, err = SelectGroup(sample(), groups, "Halogeny")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	var gnf *core.GroupNotFoundError
	require.True(t, errors.As(err, &gnf))
	assert.Equal(t, []string{"Vzácné plyny", "Alkalické kovy"}, gnf.Available)
}

func TestSummarize(t *testing.T) {
	s := Summarize(FindByCriterion(sample(), "Group", "18"), "AtomicMass")
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 1, s.Valid)
	assert.Equal(t, 4.0026, s.Min)
	assert.Equal(t, 4.0026, s.Max)
	assert.True(t, s.HasData())

	s = Summarize(FindByCriterion(sample(), "Group", "1"), "AtomicMass")
	assert.Equal(t, 4, s.Valid)
	assert.Equal(t, 1.008, s.Min)
	assert.Equal(t, 39.098, s.Max)
	assert.InDelta(t, (1.008+6.94+22.990+39.098)/4, s.Mean, 1e-12)

	assert.False(t, Summarize(nil, "AtomicMass").HasData())
}

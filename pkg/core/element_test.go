package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hydrogen() Element {
	return ElementOf(
		"Symbol", "H",
		"Element", "Hydrogen",
		"AtomicNumber", "1",
		"AtomicMass", "1.008",
		"Group", "1",
		"Period", "1",
	)
}

func TestNewElement(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		values   []string
		wantKeys []string
		want     map[string]string
	}{
		{
			name:     "parallel slices",
			keys:     []string{"Symbol", "Element"},
			values:   []string{"He", "Helium"},
			wantKeys: []string{"Symbol", "Element"},
			want:     map[string]string{"Symbol": "He", "Element": "Helium"},
		},
		{
			name:     "short values padded",
			keys:     []string{"Symbol", "Element"},
			values:   []string{"Li"},
			wantKeys: []string{"Symbol", "Element"},
			want:     map[string]string{"Symbol": "Li", "Element": ""},
		},
		{
			name:     "duplicate key keeps first position",
			keys:     []string{"A", "B", "A"},
			values:   []string{"1", "2", "3"},
			wantKeys: []string{"A", "B"},
			want:     map[string]string{"A": "3", "B": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewElement(tt.keys, tt.values)
			assert.Equal(t, tt.wantKeys, e.Keys())
			for k, v := range tt.want {
				got, ok := e.Get(k)
				assert.True(t, ok, "field %q should be present", k)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestElement_Accessors(t *testing.T) {
	e := hydrogen()

	assert.Equal(t, 6, e.Len())
	assert.Equal(t, "H", e.Symbol())
	assert.Equal(t, "", e.Value("Density"))
	assert.False(t, e.Has("Density"))

	keys := e.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "Symbol", e.Keys()[0], "Keys must return a copy")
}

func TestElement_JSONKeepsFieldOrder(t *testing.T) {
	e := ElementOf("Symbol", "Na", "Element", "Sodík", "Note", "<alkali & co>")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(e))
	assert.Equal(t, `{"Symbol":"Na","Element":"Sodík","Note":"<alkali & co>"}`+"\n", buf.String())

	var back Element
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, e, back)
}

func TestElement_MarshalEscapesHTMLByDefault(t *testing.T) {
	e := ElementOf("Symbol", "Na", "Note", "<alkali & co>")

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, `{"Symbol":"Na","Note":"\u003calkali \u0026 co\u003e"}`, string(data))

	var back Element
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "<alkali & co>", back.Value("Note"))
}

func TestElement_UnmarshalScalars(t *testing.T) {
	var e Element
	require.NoError(t, json.Unmarshal([]byte(`{"AtomicNumber": 8, "Radioactive": false, "Density": null}`), &e))

	assert.Equal(t, []string{"AtomicNumber", "Radioactive", "Density"}, e.Keys())
	assert.Equal(t, "8", e.Value("AtomicNumber"))
	assert.Equal(t, "false", e.Value("Radioactive"))
	assert.Equal(t, "", e.Value("Density"))
}

func TestElement_UnmarshalRejectsNested(t *testing.T) {
	var e Element
	err := json.Unmarshal([]byte(`{"Isotopes": [1, 2]}`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Isotopes")

	err = json.Unmarshal([]byte(`["H"]`), &e)
	require.Error(t, err)
}

func TestElement_Row(t *testing.T) {
	row, err := hydrogen().Row()
	require.NoError(t, err)
	assert.Equal(t, ElementRow{Symbol: "H", Name: "Hydrogen", AtomicMass: "1.008", Group: "1", Period: "1"}, row)
	assert.Equal(t, []string{"H", "Hydrogen", "1.008", "1", "1"}, row.Cells())

	_, err = ElementOf("Symbol", "He", "Element", "Helium", "AtomicMass", "4.0026", "Period", "1").Row()
	var mfe *MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "Group", mfe.Field)
	assert.Equal(t, "He", mfe.Symbol)
}

func TestGroup(t *testing.T) {
	g := NewGroup(" Alkalické kovy ", []string{"Li", " Na", "K", "", "Li"})

	assert.Equal(t, "Alkalické kovy", g.Name)
	assert.Equal(t, []string{"Li", "Na", "K"}, g.Symbols)
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Contains("Na"))
	assert.True(t, g.Contains(" K "))
	assert.False(t, g.Contains("k"))
	assert.False(t, g.Contains("H"))
}

func TestErrors(t *testing.T) {
	assert.True(t, errors.Is(&GroupNotFoundError{Name: "x"}, ErrNotFound))
	assert.True(t, errors.Is(&FieldNotFoundError{Field: "x"}, ErrNotFound))

	assert.Equal(t, "html export needs at least one element", (&EmptyInputError{Format: "html"}).Error())
	assert.Equal(t, `record 2 (He) is missing field "Group"`,
		(&MissingFieldError{Field: "Group", Index: 2, Symbol: "He"}).Error())
	assert.Equal(t, `record is missing field "Period"`,
		(&MissingFieldError{Field: "Period", Index: -1}).Error())
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 118 ", 118, true},
		{"007", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"+1", 0, false},
		{"-1", 0, false},
		{"1.0", 0, false},
		{"1_000", 0, false},
		{"12a", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDigits(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.008", 1.008, true},
		{" 4.0026 ", 4.0026, true},
		{"12", 12, true},
		{"1.", 1, true},
		{".5", 0.5, true},
		{"0", 0, true},
		{"", 0, false},
		{".", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
		{"-2.5", 0, false},
		{"+2.5", 0, false},
		{"[294]", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDecimal(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

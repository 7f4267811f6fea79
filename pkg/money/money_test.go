package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0.00"},
		{"small", 42.5, "42.50"},
		{"rounds to two decimals", 19.999, "20.00"},
		{"thousands separator", 1234.5, "1,234.50"},
		{"millions", 1234567.891, "1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value))
		})
	}
}

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind LineItemKind
		want bool
	}{
		{"service", KindService, true},
		{"item", KindItem, true},
		{"unknown", LineItemKind("subscription"), false},
		{"empty", LineItemKind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

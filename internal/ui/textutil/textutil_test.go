package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Client Orbit", 20, "Client Orbit"},
		{"exact", "Policy", 6, "Policy"},
		{"cut", "Northwind Construction", 10, "Northwind…"},
		{"zero width", "anything", 0, ""},
		{"wide runes", "保険ブローカー", 5, "保険…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, VisualWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab   ", PadRightVisual("ab", 5))
	assert.Equal(t, "abcd…", PadRightVisual("abcdefgh", 5))
	assert.Equal(t, 6, VisualWidth(PadRightVisual("保険", 6)))
}

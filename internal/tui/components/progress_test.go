package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideMeterRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		total   int
		planned int
		want    float64
	}{
		{name: "empty deck", total: 0, planned: 0, want: 0},
		{name: "nothing planned", total: 5, planned: 0, want: 0},
		{name: "partial", total: 4, planned: 1, want: 0.25},
		{name: "complete", total: 4, planned: 4, want: 1},
		{name: "overflow caps", total: 4, planned: 7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, NewSlideMeter(tt.total).Ratio(tt.planned), 1e-9)
		})
	}
}

func TestSlideMeterView(t *testing.T) {
	t.Parallel()

	meter := NewSlideMeter(5)

	view := meter.View(2)
	require.Contains(t, view, "2/5 slides")
	require.Greater(t, len(view), len("2/5 slides"))

	// The counter keeps the real number even past the announced total.
	require.Contains(t, meter.View(6), "6/5 slides")
}

package typescale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleIsStrictlyDecreasing(t *testing.T) {
	t.Parallel()

	for _, h := range []float64{1, 50, 144, 420, 842, 2400, 100000} {
		s := ForPageHeight(h)
		ordered := []float64{s.Display, s.H1, s.H2, s.H3, s.Body, s.Caption, s.Label, s.Overline}
		for i := 1; i < len(ordered); i++ {
			require.Greater(t, ordered[i-1], ordered[i], "height %v rank %d", h, i)
		}
		for _, size := range ordered {
			require.GreaterOrEqual(t, size, minSize, "height %v", h)
		}
	}
}

func TestScaleClampsExtremes(t *testing.T) {
	t.Parallel()

	tiny := ForPageHeight(10)
	card := ForPageHeight(144)
	require.Equal(t, tiny, card, "both heights sit below the base clamp")

	poster := ForPageHeight(5000)
	huge := ForPageHeight(500000)
	require.Equal(t, poster, huge, "both heights sit above the base clamp")
}

func TestScaleTracksA4(t *testing.T) {
	t.Parallel()

	s := ForPageHeight(842)
	require.InDelta(t, 842.0/60, s.Body, 1e-9)
	require.InDelta(t, 2.6*842/60, s.Display, 1e-9)
}

func TestScaleIsDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, ForPageHeight(842), ForPageHeight(842))
}

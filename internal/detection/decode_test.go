package detection

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesong/perch-go/internal/myaudio"
)

func testWindows(n int) []myaudio.Window {
	windows := make([]myaudio.Window, n)
	for i := range windows {
		windows[i] = myaudio.Window{
			Start: float64(i) * 5.0,
			End:   float64(i)*5.0 + 5.0,
		}
	}
	return windows
}

func TestDecodeThresholdInclusive(t *testing.T) {
	t.Parallel()

	// sigmoid(0) is exactly 0.5, the boundary value must be retained.
	scores := [][]float32{{0.0}}
	detections := Decode(scores, testWindows(1), []string{"amerob"}, 0.5)
	require.Len(t, detections, 1)
	assert.Equal(t, "amerob", detections[0].Species)
	assert.InDelta(t, 0.5, detections[0].Confidence, 1e-9)
}

func TestDecodeBelowThreshold(t *testing.T) {
	t.Parallel()

	// sigmoid(-10) is far below 0.5, the window contributes zero records.
	scores := [][]float32{{-10.0}}
	detections := Decode(scores, testWindows(1), []string{"amerob"}, 0.5)
	assert.NotNil(t, detections)
	assert.Empty(t, detections)
}

func TestDecodeOrdering(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c"}
	scores := [][]float32{
		{5.0, -10.0, 5.0},
		{-10.0, 5.0, -10.0},
	}
	detections := Decode(scores, testWindows(2), labels, 0.5)
	require.Len(t, detections, 3)

	// Window order first, class index order within a window.
	assert.Equal(t, "a", detections[0].Species)
	assert.Equal(t, "c", detections[1].Species)
	assert.Equal(t, "b", detections[2].Species)
	assert.InDelta(t, 0.0, detections[0].StartTime, 1e-9)
	assert.InDelta(t, 0.0, detections[1].StartTime, 1e-9)
	assert.InDelta(t, 5.0, detections[2].StartTime, 1e-9)
}

func TestDecodeDeterministic(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b"}
	scores := [][]float32{{1.0, 2.0}, {3.0, -1.0}}
	first := Decode(scores, testWindows(2), labels, 0.1)
	second := Decode(scores, testWindows(2), labels, 0.1)
	assert.Equal(t, first, second)
}

func TestDecodeLabelFallback(t *testing.T) {
	t.Parallel()

	// Catalog shorter than the score vector: indices beyond it fall back to
	// their string form.
	scores := [][]float32{{5.0, 5.0, 5.0}}
	detections := Decode(scores, testWindows(1), []string{"amerob"}, 0.5)
	require.Len(t, detections, 3)
	assert.Equal(t, "amerob", detections[0].Species)
	assert.Equal(t, strconv.Itoa(1), detections[1].Species)
	assert.Equal(t, strconv.Itoa(2), detections[2].Species)
}

func TestDecodeDuration(t *testing.T) {
	t.Parallel()

	windows := []myaudio.Window{{Start: 2.0, End: 7.0}}
	detections := Decode([][]float32{{5.0}}, windows, []string{"amerob"}, 0.5)
	require.Len(t, detections, 1)
	assert.InDelta(t, 2.0, detections[0].StartTime, 1e-9)
	assert.InDelta(t, 7.0, detections[0].EndTime, 1e-9)
	assert.InDelta(t, 5.0, detections[0].Duration, 1e-9)
}

func TestSigmoidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0.0, 0.5},
		{100.0, 1.0},
		{-100.0, 0.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, sigmoid(tt.in), 1e-6)
	}
}

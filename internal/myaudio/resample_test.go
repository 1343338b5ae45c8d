package myaudio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleAudioIdentity(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3}
	out, err := ResampleAudio(in, 32000, 32000)
	require.NoError(t, err)
	assert.Equal(t, in, out, "equal rates must return the input unchanged")
}

func TestResampleAudioLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inLen        int
		originalRate int
		targetRate   int
		wantLen      int
	}{
		{"downsample by half", 48000, 48000, 24000, 24000},
		{"upsample by two", 16000, 16000, 32000, 32000},
		{"downsample by four", 48000, 48000, 12000, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := make([]float32, tt.inLen)
			for i := range in {
				in[i] = float32(math.Sin(float64(i) * 0.01))
			}
			out, err := ResampleAudio(in, tt.originalRate, tt.targetRate)
			require.NoError(t, err)
			assert.Len(t, out, tt.wantLen)
		})
	}
}

func TestResampleAudioShortInput(t *testing.T) {
	t.Parallel()

	out, err := ResampleAudio([]float32{0.5, -0.5}, 16000, 32000)
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestResampleAudioInvalidRates(t *testing.T) {
	t.Parallel()

	_, err := ResampleAudio([]float32{0.5}, 0, 32000)
	require.Error(t, err)

	_, err = ResampleAudio([]float32{0.5}, 32000, -1)
	require.Error(t, err)
}

func TestResampleAudioEmptyInput(t *testing.T) {
	t.Parallel()

	out, err := ResampleAudio(nil, 48000, 32000)
	require.NoError(t, err)
	assert.Empty(t, out)
}

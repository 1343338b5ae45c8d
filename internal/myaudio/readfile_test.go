package myaudio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesong/perch-go/internal/errors"
)

func writeWAV(t *testing.T, name string, data []int, sampleRate, numChans int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	out, err := os.Create(path)
	require.NoError(t, err)

	encoder := wav.NewEncoder(out, sampleRate, 16, numChans, 1)
	buf := &audio.IntBuffer{
		Data:   data,
		Format: &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
	}
	require.NoError(t, encoder.Write(buf))
	require.NoError(t, encoder.Close())
	require.NoError(t, out.Close())

	return path
}

func TestReadAudioFileMono(t *testing.T) {
	t.Parallel()

	data := []int{0, 16384, -16384, 32767}
	path := writeWAV(t, "mono.wav", data, 32000, 1)

	sig, err := ReadAudioFile(path, 32000)
	require.NoError(t, err)
	require.Len(t, sig, len(data))

	assert.InDelta(t, 0.0, sig[0], 1e-6)
	assert.InDelta(t, 0.5, sig[1], 1e-6)
	assert.InDelta(t, -0.5, sig[2], 1e-6)
	assert.InDelta(t, 32767.0/32768.0, sig[3], 1e-6)
}

func TestReadAudioFileStereoDownmix(t *testing.T) {
	t.Parallel()

	// Interleaved L/R pairs, downmix averages the channels.
	data := []int{16384, -16384, 16384, 16384}
	path := writeWAV(t, "stereo.wav", data, 32000, 2)

	sig, err := ReadAudioFile(path, 32000)
	require.NoError(t, err)
	require.Len(t, sig, 2)

	assert.InDelta(t, 0.0, sig[0], 1e-6)
	assert.InDelta(t, 0.5, sig[1], 1e-6)
}

func TestReadAudioFileResamples(t *testing.T) {
	t.Parallel()

	data := make([]int, 16000)
	path := writeWAV(t, "rate.wav", data, 16000, 1)

	sig, err := ReadAudioFile(path, 32000)
	require.NoError(t, err)
	assert.Len(t, sig, 32000, "one second stays one second after resampling")
}

func TestReadAudioFileUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.mp3")
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))

	_, err := ReadAudioFile(path, 32000)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryAudioDecode))
}

func TestReadAudioFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadAudioFile(filepath.Join(t.TempDir(), "absent.wav"), 32000)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryAudioDecode))
}

func TestGetAudioInfoWAV(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, "info.wav", make([]int, 4000), 32000, 1)

	info, err := GetAudioInfo(path)
	require.NoError(t, err)
	assert.Equal(t, 32000, info.SampleRate)
	assert.Equal(t, 1, info.NumChannels)
	assert.Equal(t, 16, info.BitDepth)
}

// Package myaudio handles decoding and windowing of audio files.
package myaudio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avesong/perch-go/internal/errors"
)

// AudioInfo contains basic properties of an audio container.
type AudioInfo struct {
	SampleRate   int
	TotalSamples int
	NumChannels  int
	BitDepth     int
}

// GetAudioInfo probes an audio file and returns its format properties
// without decoding the sample data.
func GetAudioInfo(filePath string) (AudioInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return AudioInfo{}, decodeError(err, filePath)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".wav":
		info, err := readWAVInfo(file)
		if err != nil {
			return AudioInfo{}, decodeError(err, filePath)
		}
		return info, nil
	case ".flac":
		info, err := readFLACInfo(file)
		if err != nil {
			return AudioInfo{}, decodeError(err, filePath)
		}
		return info, nil
	default:
		return AudioInfo{}, decodeError(fmt.Errorf("unsupported audio format: %s", filepath.Ext(filePath)), filePath)
	}
}

// ReadAudioFile decodes an entire audio file into a mono float32 signal at
// the target sample rate. Multi-channel sources are downmixed by averaging,
// and the signal is resampled when the source rate differs.
func ReadAudioFile(filePath string, targetRate int) ([]float32, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, decodeError(err, filePath)
	}
	defer file.Close()

	var (
		mono       []float32
		sourceRate int
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".wav":
		mono, sourceRate, err = readWAV(file)
	case ".flac":
		mono, sourceRate, err = readFLAC(file)
	default:
		err = fmt.Errorf("unsupported audio format: %s", filepath.Ext(filePath))
	}
	if err != nil {
		return nil, decodeError(err, filePath)
	}

	if sourceRate != targetRate {
		mono, err = ResampleAudio(mono, sourceRate, targetRate)
		if err != nil {
			return nil, decodeError(fmt.Errorf("error resampling audio: %w", err), filePath)
		}
	}

	return mono, nil
}

// getAudioDivisor returns the divisor for converting integer samples of the
// given bit depth to the [-1, 1) float range.
func getAudioDivisor(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("unsupported audio file bit depth: %d", bitDepth)
	}
}

func decodeError(err error, filePath string) error {
	return errors.New(err).
		Component("myaudio").
		Category(errors.CategoryAudioDecode).
		Context("file", filepath.Base(filePath)).
		Build()
}

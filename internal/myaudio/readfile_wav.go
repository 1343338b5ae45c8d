package myaudio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func readWAVInfo(file *os.File) (AudioInfo, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()

	if !decoder.IsValidFile() {
		return AudioInfo{}, errors.New("invalid WAV file format")
	}

	if decoder.BitDepth != 16 && decoder.BitDepth != 24 && decoder.BitDepth != 32 {
		return AudioInfo{}, fmt.Errorf("unsupported bit depth: %d", decoder.BitDepth)
	}

	if decoder.NumChans != 1 && decoder.NumChans != 2 {
		return AudioInfo{}, fmt.Errorf("unsupported number of channels: %d", decoder.NumChans)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return AudioInfo{}, err
	}

	bytesPerSample := int(decoder.BitDepth / 8)
	totalSamples := int(fileInfo.Size()) / bytesPerSample / int(decoder.NumChans)

	return AudioInfo{
		SampleRate:   int(decoder.SampleRate),
		TotalSamples: totalSamples,
		NumChannels:  int(decoder.NumChans),
		BitDepth:     int(decoder.BitDepth),
	}, nil
}

// readWAV decodes the whole file into a mono float32 signal at the source
// sample rate.
func readWAV(file *os.File) ([]float32, int, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, 0, errors.New("input is not a valid WAV audio file")
	}

	divisor, err := getAudioDivisor(int(decoder.BitDepth))
	if err != nil {
		return nil, 0, err
	}

	numChans := int(decoder.NumChans)
	if numChans < 1 || numChans > 2 {
		return nil, 0, fmt.Errorf("unsupported number of channels: %d", numChans)
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, 131072),
		Format: &audio.Format{SampleRate: int(decoder.SampleRate), NumChannels: numChans},
	}

	var mono []float32
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			break
		}

		data := buf.Data[:n]
		for i := 0; i+numChans <= len(data); i += numChans {
			var sum float32
			for c := range numChans {
				sum += float32(data[i+c]) / divisor
			}
			mono = append(mono, sum/float32(numChans))
		}
	}

	return mono, int(decoder.SampleRate), nil
}

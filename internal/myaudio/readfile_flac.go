package myaudio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/flac"
)

func readFLACInfo(file *os.File) (AudioInfo, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return AudioInfo{}, err
	}

	return AudioInfo{
		SampleRate:   decoder.SampleRate,
		TotalSamples: int(decoder.TotalSamples),
		NumChannels:  decoder.NChannels,
		BitDepth:     decoder.BitsPerSample,
	}, nil
}

// readFLAC decodes the whole file into a mono float32 signal at the source
// sample rate.
func readFLAC(file *os.File) ([]float32, int, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return nil, 0, err
	}

	divisor, err := getAudioDivisor(decoder.BitsPerSample)
	if err != nil {
		return nil, 0, err
	}

	numChans := decoder.NChannels
	if numChans < 1 {
		return nil, 0, fmt.Errorf("unsupported number of channels: %d", numChans)
	}

	bytesPerSample := decoder.BitsPerSample / 8
	frameStride := bytesPerSample * numChans

	var mono []float32
	for {
		frame, err := decoder.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, err
		}

		for i := 0; i+frameStride <= len(frame); i += frameStride {
			var sum float32
			for c := range numChans {
				offset := i + c*bytesPerSample
				var sample int32
				switch decoder.BitsPerSample {
				case 16:
					sample = int32(int16(binary.LittleEndian.Uint16(frame[offset:])))
				case 24:
					sample = int32(frame[offset]) | int32(frame[offset+1])<<8 | int32(frame[offset+2])<<16
				case 32:
					sample = int32(binary.LittleEndian.Uint32(frame[offset:]))
				}
				sum += float32(sample) / divisor
			}
			mono = append(mono, sum/float32(numChans))
		}
	}

	return mono, decoder.SampleRate, nil
}

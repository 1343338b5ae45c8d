package myaudio

import (
	"math"

	"github.com/avesong/perch-go/internal/errors"
)

// Window is a fixed-length audio segment submitted to the classifier as one
// inference unit. Windows are derived data and are never mutated after
// creation.
type Window struct {
	Samples []float32
	Start   float64 // offset from the beginning of the signal, in seconds
	End     float64
}

// SegmentParams controls how a signal is split into analysis windows.
type SegmentParams struct {
	SampleRate    int
	WindowSeconds float64
	Overlap       float64 // fraction of a window shared with the next one, [0,1)
	PadTail       bool    // keep a zero-padded trailing partial window
}

// Segment slices a decoded mono signal into fixed-length, fixed-stride
// windows. Signals shorter than one window are right-padded with zeros, so
// any non-empty signal yields at least one window. The trailing partial
// window is dropped unless PadTail is set.
func Segment(sig []float32, p SegmentParams) ([]Window, error) {
	if p.SampleRate <= 0 {
		return nil, segmentError("sample rate must be greater than zero", "sample_rate", p.SampleRate)
	}
	if p.WindowSeconds <= 0 {
		return nil, segmentError("window seconds must be greater than zero", "window_seconds", p.WindowSeconds)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return nil, segmentError("overlap fraction must be in [0, 1)", "overlap", p.Overlap)
	}

	windowSamples := int(math.Round(p.WindowSeconds * float64(p.SampleRate)))
	stepSamples := int(math.Round(float64(windowSamples) * (1 - p.Overlap)))
	if stepSamples < 1 {
		return nil, segmentError("overlap fraction produces a non-positive stride", "overlap", p.Overlap)
	}

	if len(sig) == 0 {
		return []Window{}, nil
	}

	// Pad short signals up to exactly one window. Zeros are silence, which a
	// sparse-event classifier tolerates.
	if len(sig) < windowSamples {
		padded := make([]float32, windowSamples)
		copy(padded, sig)
		sig = padded
	}

	rate := float64(p.SampleRate)
	var windows []Window
	start := 0
	for ; start+windowSamples <= len(sig); start += stepSamples {
		windows = append(windows, Window{
			Samples: sig[start : start+windowSamples],
			Start:   float64(start) / rate,
			End:     float64(start+windowSamples) / rate,
		})
	}

	if p.PadTail && start < len(sig) {
		tail := make([]float32, windowSamples)
		copy(tail, sig[start:])
		windows = append(windows, Window{
			Samples: tail,
			Start:   float64(start) / rate,
			End:     float64(start+windowSamples) / rate,
		})
	}

	return windows, nil
}

// WindowCount returns the number of full windows a signal of totalSamples
// yields, matching Segment's emission (tail policy excluded).
func WindowCount(totalSamples, windowSamples, stepSamples int) int {
	if totalSamples < windowSamples {
		totalSamples = windowSamples
	}
	return (totalSamples-windowSamples)/stepSamples + 1
}

func segmentError(msg, key string, value any) error {
	return errors.Newf("segment: %s", msg).
		Component("myaudio").
		Category(errors.CategoryValidation).
		Context(key, value).
		Build()
}

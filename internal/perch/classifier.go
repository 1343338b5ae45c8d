// Package perch wraps the Perch bird-vocalization classifier and its label
// catalog.
package perch

import "time"

// Classifier is the inference contract the analysis pipeline depends on: a
// fixed-shape batch of waveform windows in, one raw per-class score vector
// per window out, row order matching input order 1:1. Implementations may
// run the whole batch in a single forward pass or loop window by window, as
// long as ordering is preserved.
type Classifier interface {
	// Predict returns one raw score vector per input window.
	Predict(batch [][]float32) ([][]float32, error)

	// NumClasses returns the width of the model's output layer.
	NumClasses() int
}

// LocationAware is an optional capability for classifiers that condition
// inference on the recording site and date. Classifiers without support
// simply do not implement it, callers treat that as a no-op.
type LocationAware interface {
	SetLocation(latitude, longitude float64, date time.Time)
}

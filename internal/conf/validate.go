package conf

import (
	"math"

	"github.com/avesong/perch-go/internal/errors"
)

// ValidateSettings rejects invalid pipeline configuration before any file is
// processed. Every violation is a validation-category error.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return errors.Newf("settings cannot be nil").
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	p := &settings.Perch

	if p.WindowSeconds <= 0 {
		return validationError("window seconds must be greater than zero", "windowseconds", p.WindowSeconds)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return validationError("overlap fraction must be in [0, 1)", "overlap", p.Overlap)
	}
	if p.MinConfidence < 0 || p.MinConfidence > 1 {
		return validationError("minimum confidence must be in [0, 1]", "minconfidence", p.MinConfidence)
	}
	if p.SampleRate <= 0 {
		return validationError("sample rate must be greater than zero", "samplerate", p.SampleRate)
	}
	if p.Threads < 0 {
		return validationError("threads cannot be negative", "threads", p.Threads)
	}

	// An overlap close enough to 1 can still round the stride down to zero.
	windowSamples := int(math.Round(p.WindowSeconds * float64(p.SampleRate)))
	stepSamples := int(math.Round(float64(windowSamples) * (1 - p.Overlap)))
	if stepSamples < 1 {
		return validationError("overlap fraction produces a non-positive stride", "overlap", p.Overlap)
	}

	return nil
}

func validationError(msg, key string, value any) error {
	return errors.Newf("invalid configuration: %s", msg).
		Component("conf").
		Category(errors.CategoryValidation).
		Context(key, value).
		Build()
}

// Package analysis orchestrates the detection pipeline over batches of
// audio files.
package analysis

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/errors"
	"github.com/avesong/perch-go/internal/perch"
)

// Analyzer runs the segmentation, inference and decoding pipeline over a
// list of audio files. The classifier and label catalog are read-only after
// construction and safe to share across file workers.
type Analyzer struct {
	settings   *conf.Settings
	classifier perch.Classifier
	labels     []string
	log        *slog.Logger
}

// New validates the configuration and builds an Analyzer around an injected
// classifier. Configuration and model errors surface here, before any file
// is processed.
func New(settings *conf.Settings, classifier perch.Classifier, labels []string) (*Analyzer, error) {
	if err := conf.ValidateSettings(settings); err != nil {
		return nil, err
	}
	if classifier == nil {
		return nil, errors.New(fmt.Errorf("%w: no classifier provided", perch.ErrModelUnavailable)).
			Component("analysis").
			Category(errors.CategoryModelInit).
			Build()
	}

	if labels == nil {
		labels = perch.LoadLabels(settings.Perch.LabelPath, classifier.NumClasses())
	}

	a := &Analyzer{
		settings:   settings,
		classifier: classifier,
		labels:     labels,
		log:        getLogger(),
	}
	a.forwardLocation()
	return a, nil
}

// forwardLocation hands recording site metadata to classifiers that can use
// it. Everything else ignores it.
func (a *Analyzer) forwardLocation() {
	la, ok := a.classifier.(perch.LocationAware)
	if !ok {
		return
	}

	p := &a.settings.Perch
	if p.Latitude == 0 && p.Longitude == 0 && p.Date == "" {
		return
	}

	date := time.Time{}
	if p.Date != "" {
		parsed, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			a.log.Warn("ignoring unparseable reference date", "date", p.Date, "error", err)
		} else {
			date = parsed
		}
	}

	la.SetLocation(p.Latitude, p.Longitude, date)
}

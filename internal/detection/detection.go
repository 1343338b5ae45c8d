// Package detection defines the species-detection record and its decoding
// from raw classifier scores.
package detection

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/avesong/perch-go/internal/errors"
)

// timestampLayout is the recording start timestamp encoded in file names,
// immediately preceding the extension: site4_20240511_063000.wav.
const timestampLayout = "20060102_150405"

// Detection is one (species, confidence, time-span, source) tuple that
// survived the confidence threshold. Created once by Decode, enriched once
// with file metadata, immutable afterwards.
type Detection struct {
	Species    string    // label from the catalog, or stringified class index
	Confidence float64   // squashed classifier output in [0,1]
	StartTime  float64   // seconds, relative to the start of the source file
	EndTime    float64   // seconds, relative to the start of the source file
	Duration   float64   // EndTime - StartTime
	SourceFile string    // identifier of the source recording
	Timestamp  time.Time // absolute recording start, zero if unknown
}

// TimestampString renders the recording start in the YYYYMMDD_HHMMSS form
// the reporting layer expects, or an empty string when unknown.
func (d *Detection) TimestampString() string {
	if d.Timestamp.IsZero() {
		return ""
	}
	return d.Timestamp.Format(timestampLayout)
}

// ParseRecordingStart extracts the recording start timestamp from a file
// identifier following the fixed naming convention. A non-matching name
// fails only this file's metadata enrichment, never the batch.
func ParseRecordingStart(path string) (time.Time, error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if len(name) < len(timestampLayout) {
		return time.Time{}, parseError(fmt.Errorf("file name %q is too short to contain a timestamp", base), base)
	}

	stamp := name[len(name)-len(timestampLayout):]
	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, parseError(fmt.Errorf("file name %q does not end with a YYYYMMDD_HHMMSS timestamp: %w", base, err), base)
	}

	return ts, nil
}

func parseError(err error, file string) error {
	return errors.New(err).
		Component("detection").
		Category(errors.CategoryFileParsing).
		Context("file", file).
		Build()
}

package analysis

import (
	"github.com/avesong/perch-go/internal/detection"
	"github.com/avesong/perch-go/internal/myaudio"
)

// analyzeFile runs the full per-file pipeline: decode, segment, classify,
// decode detections, enrich with file metadata. Any error here is fatal for
// this file only, the caller decides whether the batch continues.
func (a *Analyzer) analyzeFile(path string) ([]detection.Detection, error) {
	p := &a.settings.Perch

	sig, err := myaudio.ReadAudioFile(path, p.SampleRate)
	if err != nil {
		return nil, err
	}

	windows, err := myaudio.Segment(sig, myaudio.SegmentParams{
		SampleRate:    p.SampleRate,
		WindowSeconds: p.WindowSeconds,
		Overlap:       p.Overlap,
		PadTail:       p.PadTail,
	})
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []detection.Detection{}, nil
	}

	batch := make([][]float32, len(windows))
	for i := range windows {
		batch[i] = windows[i].Samples
	}

	scores, err := a.classifier.Predict(batch)
	if err != nil {
		return nil, err
	}

	detections := detection.Decode(scores, windows, a.labels, p.MinConfidence)

	// Metadata enrichment: a filename outside the naming convention loses
	// its absolute timestamp but keeps its detections.
	timestamp, err := detection.ParseRecordingStart(path)
	if err != nil {
		a.log.Warn("cannot derive recording start time", "file", path, "error", err)
	}
	for i := range detections {
		detections[i].SourceFile = path
		detections[i].Timestamp = timestamp
	}

	return detections, nil
}

package detection

import (
	"math"
	"strconv"

	"github.com/avesong/perch-go/internal/myaudio"
)

// sigmoid squashes a raw logit into the (0,1) confidence range. This is a
// fixed numeric transform, not a tunable policy.
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Decode converts raw score vectors into detection records. For each window,
// class indices are visited in increasing order and a record is emitted for
// every class whose squashed confidence is at least minConfidence (the
// threshold is inclusive). Windows with no surviving class contribute zero
// records. Output ordering is deterministic: window order first, class index
// order within a window.
//
// Class indices beyond the catalog fall back to their stringified form.
func Decode(scores [][]float32, windows []myaudio.Window, labels []string, minConfidence float64) []Detection {
	detections := make([]Detection, 0)

	n := min(len(scores), len(windows))
	for w := 0; w < n; w++ {
		window := &windows[w]
		for i, raw := range scores[w] {
			confidence := sigmoid(float64(raw))
			if confidence < minConfidence {
				continue
			}

			label := strconv.Itoa(i)
			if i < len(labels) {
				label = labels[i]
			}

			detections = append(detections, Detection{
				Species:    label,
				Confidence: confidence,
				StartTime:  window.Start,
				EndTime:    window.End,
				Duration:   window.End - window.Start,
			})
		}
	}

	return detections
}

package observation

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesong/perch-go/internal/detection"
)

func sampleDetections() []detection.Detection {
	return []detection.Detection{
		{
			Species:    "amerob",
			Confidence: 0.9933,
			StartTime:  0.0,
			EndTime:    5.0,
			Duration:   5.0,
			SourceFile: "site4_20240511_063000.wav",
			Timestamp:  time.Date(2024, 5, 11, 6, 30, 0, 0, time.Local),
		},
		{
			Species:    "norcar",
			Confidence: 0.5,
			StartTime:  2.5,
			EndTime:    7.5,
			Duration:   5.0,
			SourceFile: "morning-chorus.wav",
		},
	}
}

func TestWriteDetectionsCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDetectionsCSV(sampleDetections(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"site4_20240511_063000.wav", "amerob", "0.9933", "0.00", "5.00", "20240511_063000", "5.00"}, records[1])
	assert.Equal(t, []string{"morning-chorus.wav", "norcar", "0.5000", "2.50", "7.50", "", "5.00"}, records[2])
}

func TestWriteDetectionsCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDetectionsCSV(nil, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "empty collections still produce the header")
}

func TestWriteDetectionsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDetectionsTable(sampleDetections(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Species")
	assert.Contains(t, out, "amerob")
	assert.Contains(t, out, "0.9933")
	assert.Contains(t, out, "20240511_063000")
}

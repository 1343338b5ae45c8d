// Package observation writes the aggregate detection collection for the
// downstream reporting layer. It consumes detection records only and never
// reaches back into windowing or model state.
package observation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avesong/perch-go/internal/detection"
)

// csvHeader is the column contract of the analytics dashboard.
var csvHeader = []string{"source_file", "species", "confidence", "start_time", "end_time", "timestamp_str", "duration"}

// WriteDetectionsCSV writes the detections as CSV to w.
func WriteDetectionsCSV(detections []detection.Detection, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range detections {
		d := &detections[i]
		record := []string{
			d.SourceFile,
			d.Species,
			strconv.FormatFloat(d.Confidence, 'f', 4, 64),
			strconv.FormatFloat(d.StartTime, 'f', 2, 64),
			strconv.FormatFloat(d.EndTime, 'f', 2, 64),
			d.TimestampString(),
			strconv.FormatFloat(d.Duration, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteDetectionsTable writes the detections as a human-readable table to w.
func WriteDetectionsTable(detections []detection.Detection, w io.Writer) error {
	header := "Source File\tSpecies\tConfidence\tBegin Time (s)\tEnd Time (s)\tTimestamp\n"
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range detections {
		d := &detections[i]
		line := fmt.Sprintf("%s\t%s\t%.4f\t%.1f\t%.1f\t%s\n",
			d.SourceFile, d.Species, d.Confidence, d.StartTime, d.EndTime, d.TimestampString())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write detection: %w", err)
		}
	}

	return nil
}

// WriteDetectionsFile writes the detections to the given path, choosing the
// format from outputType ("csv" or "table", table being the default). An
// empty path writes to stdout.
func WriteDetectionsFile(detections []detection.Detection, path, outputType string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		wantExt := ".txt"
		if outputType == "csv" {
			wantExt = ".csv"
		}
		if !strings.HasSuffix(path, wantExt) {
			path += wantExt
		}

		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", path, err)
		}
		defer file.Close()
		w = file
	}

	if outputType == "csv" {
		return WriteDetectionsCSV(detections, w)
	}
	return WriteDetectionsTable(detections, w)
}

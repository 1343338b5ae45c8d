package perch

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// DefaultClassCount is the output width of the bundled Perch model, used to
// size the synthetic label catalog when no label file is available.
const DefaultClassCount = 10932

// labelColumn is the recognized species label column in the catalog CSV.
const labelColumn = "ebird2021"

// LoadLabels loads the ordered label catalog from a CSV file. Index position
// is the class identity contract between the model and the decoder.
//
// Every failure mode degrades the catalog rather than aborting: a missing
// path, unreadable file or absent label column all yield a synthetic catalog
// of stringified indices sized to classCount. Label quality only affects a
// detection's display name, never its existence.
func LoadLabels(path string, classCount int) []string {
	log := getLogger()
	if classCount <= 0 {
		classCount = DefaultClassCount
	}

	if path == "" {
		log.Warn("no label file configured, labels will be indices", "count", classCount)
		return indexLabels(classCount)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Warn("cannot open label file, labels will be indices", "path", path, "error", err)
		return indexLabels(classCount)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		log.Warn("cannot read label file header, labels will be indices", "path", path, "error", err)
		return indexLabels(classCount)
	}

	column := -1
	for i, name := range header {
		if name == labelColumn {
			column = i
			break
		}
	}
	if column == -1 {
		log.Warn("label column not found, labels will be indices", "path", path, "column", labelColumn)
		return indexLabels(classCount)
	}

	var labels []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("error reading label file, labels will be indices", "path", path, "error", err)
			return indexLabels(classCount)
		}
		if column >= len(record) {
			continue
		}
		labels = append(labels, record[column])
	}

	log.Info("labels loaded", "source", path, "count", len(labels))
	return labels
}

// indexLabels builds the synthetic fallback catalog of stringified indices.
func indexLabels(count int) []string {
	labels := make([]string, count)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

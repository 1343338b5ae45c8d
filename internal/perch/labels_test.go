package perch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLabelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLabelsFromCSV(t *testing.T) {
	path := writeLabelFile(t, "idx,ebird2021\n0,amerob\n1,norcar\n2,blujay\n")

	labels := LoadLabels(path, 10)
	assert.Equal(t, []string{"amerob", "norcar", "blujay"}, labels)
}

func TestLoadLabelsEmptyPath(t *testing.T) {
	labels := LoadLabels("", 5)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, labels)
}

func TestLoadLabelsMissingFile(t *testing.T) {
	labels := LoadLabels(filepath.Join(t.TempDir(), "nope.csv"), 3)
	assert.Equal(t, []string{"0", "1", "2"}, labels)
}

func TestLoadLabelsMissingColumn(t *testing.T) {
	path := writeLabelFile(t, "idx,common_name\n0,American Robin\n")

	labels := LoadLabels(path, 2)
	assert.Equal(t, []string{"0", "1"}, labels)
}

func TestLoadLabelsEmptyFile(t *testing.T) {
	path := writeLabelFile(t, "")

	labels := LoadLabels(path, 2)
	assert.Equal(t, []string{"0", "1"}, labels)
}

func TestLoadLabelsDefaultClassCount(t *testing.T) {
	labels := LoadLabels("", 0)
	require.Len(t, labels, DefaultClassCount)
	assert.Equal(t, "0", labels[0])
	assert.Equal(t, "10931", labels[DefaultClassCount-1])
}

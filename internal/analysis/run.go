package analysis

import (
	"context"

	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/detection"
	"github.com/avesong/perch-go/internal/perch"
)

// AnalyzeFiles loads the Perch model and label catalog, then runs the batch
// pipeline over the given files. Model and configuration errors surface
// before any file is touched.
func AnalyzeFiles(ctx context.Context, settings *conf.Settings, files []string) ([]detection.Detection, error) {
	model, err := perch.New(&settings.Perch)
	if err != nil {
		return nil, err
	}
	defer model.Close()

	labels := perch.LoadLabels(settings.Perch.LabelPath, model.NumClasses())

	analyzer, err := New(settings, model, labels)
	if err != nil {
		return nil, err
	}

	return analyzer.Run(ctx, files)
}

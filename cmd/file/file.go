// Package file implements the single-file analysis command.
package file

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avesong/perch-go/internal/analysis"
	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/observation"
)

// Command creates the file command for analyzing a single audio file.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [input]",
		Short: "Analyze an audio file",
		Long:  `Analyze a single audio recording for species vocalizations.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]

			detections, err := analysis.AnalyzeFiles(cmd.Context(), settings, []string{settings.Input.Path})
			if err != nil {
				return err
			}

			var outputFile string
			if settings.Output.File.Path != "" {
				outputFile = filepath.Join(settings.Output.File.Path, filepath.Base(settings.Input.Path))
			}
			return observation.WriteDetectionsFile(detections, outputFile, settings.Output.File.Type)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the file command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", "", "Path to output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Type, "format", "f", "", "Output format: table, csv")
}

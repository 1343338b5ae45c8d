// Package directory implements the batch analysis command over a folder of
// recordings.
package directory

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avesong/perch-go/internal/analysis"
	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/observation"
)

// Command creates the directory command for analyzing all recordings in a
// folder.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory [path]",
		Short: "Analyze all audio files in a directory",
		Long:  `Analyze every WAV and FLAC recording in a directory for species vocalizations.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]

			files, err := collectAudioFiles(settings.Input.Path, settings.Input.Recursive)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("No audio files found in", settings.Input.Path)
				return nil
			}

			detections, err := analysis.AnalyzeFiles(cmd.Context(), settings, files)
			if err != nil {
				return err
			}

			var outputFile string
			if settings.Output.File.Path != "" {
				outputFile = filepath.Join(settings.Output.File.Path, "detections")
			}
			return observation.WriteDetectionsFile(detections, outputFile, settings.Output.File.Type)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// collectAudioFiles gathers WAV and FLAC paths under root in sorted order so
// batch runs are reproducible regardless of directory iteration order.
func collectAudioFiles(root string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".wav", ".flac":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning directory %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// setupFlags configures flags specific to the directory command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", "", "Path to output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Type, "format", "f", "", "Output format: table, csv")
	cmd.Flags().BoolVarP(&settings.Input.Recursive, "recursive", "r", false, "Scan subdirectories recursively")
}

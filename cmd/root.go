// Package cmd builds the perch-go command tree.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avesong/perch-go/cmd/directory"
	"github.com/avesong/perch-go/cmd/file"
	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/logging"
)

// RootCommand creates and returns the root command with all subcommands.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "perch-go",
		Short: "Acoustic species detection with the Perch classifier",
	}

	if err := setupFlags(rootCmd, settings); err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.AddCommand(
		file.Command(settings),
		directory.Command(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Flags are bound to viper, re-unmarshal so command-line arguments
		// take precedence over config file values.
		if err := viper.Unmarshal(settings); err != nil {
			return fmt.Errorf("error syncing flags: %w", err)
		}

		logging.Init(settings.Debug)

		if settings.Main.Log.Enabled {
			fileLogger, _, err := logging.NewFileLogger(settings.Main.Log.Path, settings.Main.Name, slog.LevelInfo)
			if err != nil {
				return fmt.Errorf("error opening log file: %w", err)
			}
			slog.SetDefault(fileLogger)
		}

		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Perch.ModelPath, "model", viper.GetString("perch.modelpath"), "Path to the Perch TFLite model file")
	rootCmd.PersistentFlags().StringVar(&settings.Perch.LabelPath, "labels", viper.GetString("perch.labelpath"), "Path to the species label CSV file")
	rootCmd.PersistentFlags().Float64VarP(&settings.Perch.WindowSeconds, "window", "w", viper.GetFloat64("perch.windowseconds"), "Analysis window length in seconds")
	rootCmd.PersistentFlags().Float64Var(&settings.Perch.Overlap, "overlap", viper.GetFloat64("perch.overlap"), "Window overlap fraction between 0.0 and 1.0 (exclusive)")
	rootCmd.PersistentFlags().Float64VarP(&settings.Perch.MinConfidence, "min-confidence", "t", viper.GetFloat64("perch.minconfidence"), "Inclusive confidence threshold for detections, between 0.0 and 1.0")
	rootCmd.PersistentFlags().BoolVar(&settings.Perch.PadTail, "pad-tail", viper.GetBool("perch.padtail"), "Keep a zero-padded trailing partial window instead of dropping it")
	rootCmd.PersistentFlags().IntVar(&settings.Perch.Threads, "threads", viper.GetInt("perch.threads"), "Number of parallel file workers")
	rootCmd.PersistentFlags().Float64Var(&settings.Perch.Latitude, "latitude", viper.GetFloat64("perch.latitude"), "Recording site latitude")
	rootCmd.PersistentFlags().Float64Var(&settings.Perch.Longitude, "longitude", viper.GetFloat64("perch.longitude"), "Recording site longitude")
	rootCmd.PersistentFlags().StringVar(&settings.Perch.Date, "date", viper.GetString("perch.date"), "Reference date (YYYY-MM-DD) for location-aware models")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return err
	}
	bindings := map[string]string{
		"perch.modelpath":     "model",
		"perch.labelpath":     "labels",
		"perch.windowseconds": "window",
		"perch.overlap":       "overlap",
		"perch.minconfidence": "min-confidence",
		"perch.padtail":       "pad-tail",
		"perch.threads":       "threads",
		"perch.latitude":      "latitude",
		"perch.longitude":     "longitude",
		"perch.date":          "date",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	return nil
}

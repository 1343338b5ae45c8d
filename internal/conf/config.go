// Package conf handles the configuration for perch-go.
package conf

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// PerchConfig holds the analysis pipeline configuration.
type PerchConfig struct {
	ModelPath     string  // path to external TFLite model file, empty for bundled model
	LabelPath     string  // path to label CSV file, empty for index labels
	WindowSeconds float64 // analysis window length in seconds
	Overlap       float64 // fraction of a window shared with the next one, [0,1)
	MinConfidence float64 // inclusive detection threshold, [0,1]
	SampleRate    int     // target sample rate for decoded audio
	PadTail       bool    // keep a zero-padded trailing partial window instead of dropping it
	Threads       int     // parallel file workers, 1 for sequential processing
	UseXNNPACK    bool    // enable XNNPACK delegate for inference
	Latitude      float64 // optional recording site latitude
	Longitude     float64 // optional recording site longitude
	Date          string  // optional reference date (YYYY-MM-DD) for location-aware models
}

// LogConfig defines file logging settings.
type LogConfig struct {
	Enabled bool   // true to write a JSON log file
	Path    string // path to the log file
}

// InputConfig holds runtime input paths, never persisted to the config file.
type InputConfig struct {
	Path      string `yaml:"-"` // audio file or directory to analyze
	Recursive bool   `yaml:"-"` // scan directories recursively
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	File struct {
		Path string `yaml:"-"` // directory for result files, empty writes to stdout
		Type string `yaml:"-"` // "table" or "csv"
	}
}

// Settings is the root configuration structure.
type Settings struct {
	Debug bool // true to enable debug logging

	Main struct {
		Name string    // node name, tags the source of detections
		Log  LogConfig // application log file settings
	}

	Perch PerchConfig

	Input  InputConfig `yaml:"-"`
	Output OutputConfig
}

// Load reads the configuration from defaults, an optional config file and
// the environment, and returns the populated settings.
func Load() (*Settings, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/perch-go")
	viper.AddConfigPath("/etc/perch-go")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and flags cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return settings, nil
}

package conf

import "github.com/spf13/viper"

// setDefaults registers the default configuration values with viper.
func setDefaults() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "perch-go")
	viper.SetDefault("main.log.enabled", false)
	viper.SetDefault("main.log.path", "perch-go.log")

	viper.SetDefault("perch.modelpath", "")
	viper.SetDefault("perch.labelpath", "")
	viper.SetDefault("perch.windowseconds", 5.0)
	viper.SetDefault("perch.overlap", 0.0)
	viper.SetDefault("perch.minconfidence", 0.1)
	viper.SetDefault("perch.samplerate", 32000)
	viper.SetDefault("perch.padtail", false)
	viper.SetDefault("perch.threads", 1)
	viper.SetDefault("perch.usexnnpack", true)
	viper.SetDefault("perch.latitude", 0.000)
	viper.SetDefault("perch.longitude", 0.000)
	viper.SetDefault("perch.date", "")
}

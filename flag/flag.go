// Package flag provides viper-backed accessors of command line flags.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of --verbose.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of --quiet.
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns the value of --config.
func ConfigFile() string {
	return viper.GetString("config")
}

// NoColor returns true if colors are disabled by --no-color.
func NoColor() bool {
	return viper.GetBool("no-color")
}

// GitHubActionEvent returns the github-action event name, which forces
// colored output in CI logs.
func GitHubActionEvent() string {
	return viper.GetString("github-action-event")
}

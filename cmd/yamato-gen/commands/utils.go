package commands

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/buildbeaver/yamato/cmd/yamato-gen/cli"
)

// MustBindFlag binds a flag to a viper key so it can also be set from the config file or environment.
func MustBindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		cli.Exit(err)
	}
}

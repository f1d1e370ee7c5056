package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/buildbeaver/yamato/cmd/yamato-gen/cli"
	"github.com/buildbeaver/yamato/common/logger"
	"github.com/buildbeaver/yamato/common/version"
)

const (
	ConfigFileName = ".yamato-gen"
	EnvPrefix      = "YAMATO_GEN"
)

const (
	debugKey     = "debug"
	jsonKey      = "json"
	logLevelsKey = "log-levels"
)

type GlobalConfig struct {
	ConfigFilePath string
}

var Global = &GlobalConfig{}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(
		&Global.ConfigFilePath,
		"config",
		"c",
		"",
		fmt.Sprintf("The config file to use (default is %s.yml in the current directory)", ConfigFileName))

	RootCmd.PersistentFlags().BoolP(
		debugKey,
		"d",
		false,
		"Enable verbose debug output.")

	RootCmd.PersistentFlags().BoolP(
		jsonKey,
		"j",
		false,
		"Enable structured JSON log output.")

	RootCmd.PersistentFlags().String(
		logLevelsKey,
		"",
		fmt.Sprintf("Per-subsystem log levels, e.g. metafile=debug,*=warning. Valid levels: %s", logger.ListLogLevels()))

	for _, key := range []string{debugKey, jsonKey, logLevelsKey} {
		MustBindFlag(key, RootCmd.PersistentFlags().Lookup(key))
	}
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cli.Exit(RootCmd.Execute())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if Global.ConfigFilePath != "" {
		viper.SetConfigFile(Global.ConfigFilePath)
	} else {
		viper.SetConfigName(ConfigFileName)
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err == nil {
		Global.ConfigFilePath = viper.ConfigFileUsed()
		cli.Stderr.Printf("Using config file: %s", viper.ConfigFileUsed())
	} else {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
		default:
			cli.Exit(fmt.Errorf("error loading config file (%s): %s", viper.ConfigFileUsed(), err))
		}
	}
}

// NewLogFactory builds a log factory from the global logging flags and config.
func NewLogFactory() (logger.LogFactory, error) {
	registry, err := logger.NewLogRegistry(logger.LogLevelConfig(viper.GetString(logLevelsKey)))
	if err != nil {
		return nil, err
	}
	if viper.GetBool(debugKey) {
		registry.SetLogLevel("*", logrus.DebugLevel)
	}
	return logger.MakeLogrusLogFactoryStdErr(registry, viper.GetBool(jsonKey)), nil
}

var RootCmd = &cobra.Command{
	Use:     "yamato-gen",
	Short:   "Generates Yamato CI jobs for package tests",
	Long:    `Generates Yamato CI job descriptors that test packages across platforms and editor versions.`,
	Version: version.VersionToString(),
}

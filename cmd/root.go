package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/cmd/config"
	"github.com/nexusfetch/nexusfetch/internals/cmdlog"
	"github.com/nexusfetch/nexusfetch/internals/globals"
)

var (
	// Version is set by main
	Version = "dev"
	// Commit is set by main
	Commit = "none"

	cfgFile       string
	disableColors bool
)

// rootCmd is the fetch command itself, sub commands are extras
var rootCmd = newFetchCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed usage
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/nexusfetch/config.toml)")

	rootCmd.AddCommand(config.SubCmd)
	rootCmd.AddCommand(guiCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		cmdlog.DisableColor()
	}

	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if file, err := config.File(); err == nil {
		viper.SetConfigFile(file)
	}

	viper.SetEnvPrefix("nexusfetch")
	viper.AutomaticEnv() // read in environment variables that match

	// a missing config file is fine
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Could not read config file:", err)
	}

	globals.HTTPClient.Timeout = config.Settings().Timeout
}

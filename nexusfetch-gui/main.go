package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/cmd/config"
	"github.com/nexusfetch/nexusfetch/gui"
	"github.com/nexusfetch/nexusfetch/internals/ownhttp"
)

func main() {
	config.SetDefaults()
	if file, err := config.File(); err == nil {
		viper.SetConfigFile(file)
	}
	viper.SetEnvPrefix("nexusfetch")
	viper.AutomaticEnv()
	// a missing config file is fine
	_ = viper.ReadInConfig()

	settings := config.Settings()
	if err := gui.Start(settings, ownhttp.New(settings.Timeout)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

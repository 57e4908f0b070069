package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/internals/pipeline"
)

const (
	configKindString = iota
	configKindDuration
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"apiurl":     {configKindString, "games endpoint of the Nexus Mods API"},
	"siteurl":    {configKindString, "website used for the homepage entry"},
	"outputdir":  {configKindString, "directory that receives modinfo.ini and screenshot.png"},
	"apikeyfile": {configKindString, "file the window reads the API key from"},
	"timeout":    {configKindDuration, "timeout of each HTTP request, e.g. 30s"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// File returns the location of the config file
func File() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "nexusfetch", "config.toml"), nil
}

// SetDefaults registers the default of every config key with viper
func SetDefaults() {
	d := pipeline.DefaultSettings()
	viper.SetDefault("apiurl", d.APIURL)
	viper.SetDefault("siteurl", d.SiteURL)
	viper.SetDefault("outputdir", d.OutputDir)
	viper.SetDefault("apikeyfile", d.APIKeyFile)
	viper.SetDefault("timeout", d.Timeout.String())
}

// Settings returns the current settings
func Settings() pipeline.Settings {
	return pipeline.Settings{
		APIURL:     viper.GetString("apiurl"),
		SiteURL:    viper.GetString("siteurl"),
		OutputDir:  viper.GetString("outputdir"),
		APIKeyFile: viper.GetString("apikeyfile"),
		Timeout:    viper.GetDuration("timeout"),
	}
}

package pipeline

import (
	"time"

	"github.com/nexusfetch/nexusfetch/internals/credentials"
	"github.com/nexusfetch/nexusfetch/internals/nexus"
	"github.com/nexusfetch/nexusfetch/internals/ownhttp"
)

// Settings are the user configurable parts of a run
type Settings struct {
	// APIURL is the games endpoint of the Nexus API
	APIURL string
	// SiteURL is used to build the homepage entry
	SiteURL string
	// OutputDir receives modinfo.ini and screenshot.png
	OutputDir string
	// APIKeyFile is read by the windowed front end
	APIKeyFile string
	Timeout    time.Duration
}

// DefaultSettings returns the settings used without any config file
func DefaultSettings() Settings {
	return Settings{
		APIURL:     nexus.DefaultAPIURL,
		SiteURL:    nexus.DefaultSiteURL,
		OutputDir:  ".",
		APIKeyFile: credentials.DefaultKeyFile,
		Timeout:    ownhttp.DefaultTimeout,
	}
}

// withDefaults fills empty fields
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.APIURL == "" {
		s.APIURL = d.APIURL
	}
	if s.SiteURL == "" {
		s.SiteURL = d.SiteURL
	}
	if s.OutputDir == "" {
		s.OutputDir = d.OutputDir
	}
	if s.APIKeyFile == "" {
		s.APIKeyFile = d.APIKeyFile
	}
	if s.Timeout <= 0 {
		s.Timeout = d.Timeout
	}
	return s
}

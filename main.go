package main

import (
	"net/http"

	"github.com/nexusfetch/nexusfetch/cmd"
	"github.com/nexusfetch/nexusfetch/internals/globals"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	// replace default http client
	http.DefaultClient = globals.HTTPClient

	if version != "" {
		cmd.Version = version
	}
	if commit != "" {
		cmd.Commit = commit
	}
	cmd.Execute()
}

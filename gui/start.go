package gui

import (
	"embed"
	"net/http"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"github.com/nexusfetch/nexusfetch/internals/pipeline"
)

//go:embed all:frontend/dist
var assets embed.FS

// Start opens the window and blocks until it is closed
func Start(settings pipeline.Settings, httpClient *http.Client) error {
	app := NewApp(settings, httpClient)

	return wails.Run(&options.App{
		Title:         "NexusMods Fetch",
		Width:         460,
		Height:        260,
		MinWidth:      360,
		MinHeight:     220,
		DisableResize: false,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		Linux: &linux.Options{
			WebviewGpuPolicy: linux.WebviewGpuPolicyOnDemand,
		},
	})
}

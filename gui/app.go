package gui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nexusfetch/nexusfetch/internals/credentials"
	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/nexusfetch/nexusfetch/internals/pipeline"
)

// StatusEvent is emitted with the new text of the status label
const StatusEvent = "status"

// notifier is everything the app shows to the user
type notifier interface {
	Status(msg string)
	Info(title string, msg string)
	Warning(title string, msg string)
	Error(title string, msg string)
}

// App struct
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	notify notifier

	settings    pipeline.Settings
	keys        *credentials.Store
	newPipeline func(pipeline.Settings) *pipeline.Pipeline

	busy    atomic.Bool
	running sync.WaitGroup
}

// NewApp creates a new App application struct
func NewApp(settings pipeline.Settings, httpClient *http.Client) *App {
	return &App{
		settings: settings,
		keys:     credentials.New(settings.APIKeyFile),
		newPipeline: func(s pipeline.Settings) *pipeline.Pipeline {
			return pipeline.New(s, httpClient)
		},
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.attach(ctx, &wailsNotifier{ctx})
}

func (a *App) attach(ctx context.Context, n notifier) {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.notify = n
}

// shutdown aborts a running fetch
func (a *App) shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	a.running.Wait()
}

// KeyFile returns the file the API key is read from
func (a *App) KeyFile() string {
	return a.keys.Path()
}

// Fetch validates the input and starts the pipeline in the background.
// It returns false if nothing was started.
func (a *App) Fetch(game string, modID string) bool {
	key, err := a.keys.APIKey()
	if err != nil {
		a.notify.Error("Error", fmt.Sprintf("Could not open %s - make sure it exists", a.keys.Path()))
		return false
	}

	in, err := pipeline.ParseInput(key, game, modID)
	switch {
	case pipeline.IsMissing(err):
		a.notify.Warning("Missing Data", "Please fill in all fields. ("+err.Error()+")")
		return false
	case err != nil:
		a.notify.Error("Invalid ID", err.Error())
		return false
	}

	if !a.busy.CompareAndSwap(false, true) {
		a.notify.Warning("Busy", "Still working on the previous mod.")
		return false
	}

	a.running.Add(1)
	go func() {
		defer a.running.Done()
		defer a.busy.Store(false)
		a.run(in)
	}()
	return true
}

func (a *App) run(in *pipeline.Input) {
	p := a.newPipeline(a.settings)
	res, err := p.Run(a.ctx, in, pipeline.ReporterFunc(func(stage pipeline.Stage, msg string) {
		a.notify.Status(msg)
	}))

	// window is gone, nobody to tell
	if a.ctx.Err() != nil {
		return
	}

	if err != nil {
		a.notify.Status("Error")
		var httpErr *merrors.HTTPError
		if errors.As(err, &httpErr) {
			a.notify.Error("HTTP Error", err.Error())
			return
		}
		a.notify.Error("Error", err.Error())
		return
	}

	var names []string
	for _, f := range res.Files() {
		names = append(names, f.Name)
	}
	a.notify.Info("Success", "Created "+strings.Join(names, " and "))
}

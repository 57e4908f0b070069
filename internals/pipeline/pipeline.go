// Package pipeline runs the fetch, download and write sequence shared by the
// command line and the windowed front end.
package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/nexusfetch/nexusfetch/internals/modinfo"
	"github.com/nexusfetch/nexusfetch/internals/nexus"
	"github.com/nexusfetch/nexusfetch/internals/screenshot"
)

// Stage identifies a step of a run
type Stage int

const (
	StageFetch Stage = iota
	StageScreenshot
	StageSkipScreenshot
	StageWrite
	StageDone
)

// Steps is the number of numbered stages a run goes through
const Steps = 3

// Reporter is told about every stage before it starts
type Reporter interface {
	Step(stage Stage, msg string)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(stage Stage, msg string)

func (f ReporterFunc) Step(stage Stage, msg string) { f(stage, msg) }

// MetadataFetcher gets the metadata of one mod
type MetadataFetcher interface {
	GetMod(ctx context.Context, game string, id int) (*nexus.Mod, error)
}

// ImageRetriever stores the image at url as target
type ImageRetriever interface {
	Retrieve(ctx context.Context, url string, target string) error
}

// Pipeline wires the three steps together
type Pipeline struct {
	// Mods returns a fetcher authenticated with apiKey
	Mods      func(apiKey string) MetadataFetcher
	Images    ImageRetriever
	OutputDir string
	SiteURL   string
}

// New returns the production wiring for settings. httpClient is shared by
// both requests.
func New(settings Settings, httpClient *http.Client) *Pipeline {
	settings = settings.withDefaults()
	return &Pipeline{
		Mods: func(apiKey string) MetadataFetcher {
			client := nexus.New(httpClient, apiKey)
			client.BaseURL = settings.APIURL
			return client
		},
		Images:    &screenshot.Retriever{Client: httpClient},
		OutputDir: settings.OutputDir,
		SiteURL:   settings.SiteURL,
	}
}

// Result describes a finished run
type Result struct {
	Mod            *nexus.Mod
	ModInfoPath    string
	ScreenshotPath string
	// Screenshot is true if the image was downloaded during this run
	Screenshot bool
}

// File is an output file that exists on disk
type File struct {
	Name string
	Path string
	Size int64
}

// Files returns the output files that currently exist. This includes a
// screenshot left over from an earlier run.
func (r *Result) Files() []File {
	var files []File
	for _, path := range []string{r.ModInfoPath, r.ScreenshotPath} {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, File{Name: filepath.Base(path), Path: path, Size: info.Size()})
	}
	return files
}

func report(r Reporter, stage Stage, msg string) {
	if r != nil {
		r.Step(stage, msg)
	}
}

// Run fetches the mod, downloads its picture (if there is one) and writes
// modinfo.ini. Errors are returned as soon as they happen, files written by
// earlier steps are kept.
func (p *Pipeline) Run(ctx context.Context, in *Input, r Reporter) (*Result, error) {
	res := &Result{
		ModInfoPath:    filepath.Join(p.OutputDir, modinfo.FileName),
		ScreenshotPath: filepath.Join(p.OutputDir, screenshot.FileName),
	}

	report(r, StageFetch, fmt.Sprintf("Fetching mod #%d for \"%s\"", in.ModID, in.Game))
	mod, err := p.Mods(in.APIKey).GetMod(ctx, in.Game, in.ModID)
	if err != nil {
		return nil, err
	}
	res.Mod = mod

	if p.OutputDir != "" {
		if err := os.MkdirAll(p.OutputDir, os.ModePerm); err != nil {
			return nil, &merrors.IOError{Op: "create", Path: p.OutputDir, Err: err}
		}
	}

	if mod.HasPicture() {
		report(r, StageScreenshot, "Downloading "+screenshot.FileName)
		if err := p.Images.Retrieve(ctx, mod.PictureURL, res.ScreenshotPath); err != nil {
			return nil, err
		}
		res.Screenshot = true
	} else {
		report(r, StageSkipScreenshot, "No picture_url found; skipping screenshot download.")
	}

	report(r, StageWrite, "Writing "+modinfo.FileName)
	info := modinfo.FromMod(mod, nexus.Homepage(p.SiteURL, in.Game, in.ModID))
	if err := info.WriteFile(res.ModInfoPath); err != nil {
		return nil, err
	}

	report(r, StageDone, "Done!")
	return res, nil
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/nexusfetch/nexusfetch/internals/modinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNexus struct {
	srv        *httptest.Server
	metadata   string
	status     int
	metaHits   atomic.Int32
	imageHits  atomic.Int32
	imageBytes []byte
}

// newFakeNexus serves metadata on /v1/games/... and an image on /img.png.
// {{IMG}} in metadata is replaced with the image URL.
func newFakeNexus(t *testing.T, metadata string) *fakeNexus {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.NRGBA{255, 0, 0, 128})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	f := &fakeNexus{status: http.StatusOK, imageBytes: buf.Bytes()}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v1/games/"):
			f.metaHits.Add(1)
			w.WriteHeader(f.status)
			w.Write([]byte(strings.ReplaceAll(f.metadata, "{{IMG}}", f.srv.URL+"/img.png")))
		case r.URL.Path == "/img.png":
			f.imageHits.Add(1)
			w.Write(f.imageBytes)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.srv.Close)
	f.metadata = metadata
	return f
}

func (f *fakeNexus) pipeline(dir string) *Pipeline {
	return New(Settings{
		APIURL:    f.srv.URL + "/v1/games",
		OutputDir: dir,
	}, f.srv.Client())
}

const coolArmor = `{"name":"Cool Armor","version":"2.1","summary":"Line1\nLine2","author":"Jane","picture_url":"{{IMG}}"}`

func TestPipeline_Run(t *testing.T) {
	fake := newFakeNexus(t, coolArmor)
	dir := t.TempDir()

	var stages []Stage
	res, err := fake.pipeline(dir).Run(
		context.Background(),
		&Input{APIKey: "key", Game: "skyrim", ModID: 42},
		ReporterFunc(func(s Stage, msg string) { stages = append(stages, s) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []Stage{StageFetch, StageScreenshot, StageWrite, StageDone}, stages)
	assert.True(t, res.Screenshot)
	assert.EqualValues(t, 1, fake.imageHits.Load())

	content, err := os.ReadFile(filepath.Join(dir, modinfo.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "description = Line1 Line2")
	assert.Contains(t, string(content), "homepage = https://www.nexusmods.com/skyrim/mods/42")
	assert.Contains(t, string(content), "category = costumes")

	info, err := modinfo.Read(filepath.Join(dir, modinfo.FileName))
	require.NoError(t, err)
	assert.Equal(t, &modinfo.ModInfo{
		Name:        "Cool Armor",
		Version:     "2.1",
		Description: "Line1 Line2",
		Author:      "Jane",
		Category:    "costumes",
		Homepage:    "https://www.nexusmods.com/skyrim/mods/42",
	}, info)

	files := res.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "modinfo.ini", files[0].Name)
	assert.Equal(t, "screenshot.png", files[1].Name)
}

func TestPipeline_Run_Defaults(t *testing.T) {
	fake := newFakeNexus(t, `{"summary":"only a summary"}`)
	dir := t.TempDir()

	_, err := fake.pipeline(dir).Run(context.Background(), &Input{APIKey: "k", Game: "fallout4", ModID: 7}, nil)
	require.NoError(t, err)

	info, err := modinfo.Read(filepath.Join(dir, modinfo.FileName))
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", info.Name)
	assert.Equal(t, "1.0", info.Version)
	assert.Equal(t, "UNKNOWN", info.Author)
	assert.Equal(t, "only a summary", info.Description)
}

func TestPipeline_Run_NoPicture(t *testing.T) {
	for _, body := range []string{
		`{"name":"A"}`,
		`{"name":"A","picture_url":null}`,
		`{"name":"A","picture_url":""}`,
	} {
		t.Run(body, func(t *testing.T) {
			fake := newFakeNexus(t, body)
			dir := t.TempDir()

			var stages []Stage
			res, err := fake.pipeline(dir).Run(
				context.Background(),
				&Input{APIKey: "k", Game: "skyrim", ModID: 1},
				ReporterFunc(func(s Stage, msg string) { stages = append(stages, s) }),
			)
			require.NoError(t, err)

			assert.Contains(t, stages, StageSkipScreenshot)
			assert.False(t, res.Screenshot)
			assert.EqualValues(t, 0, fake.imageHits.Load())
			assert.FileExists(t, filepath.Join(dir, modinfo.FileName))
			assert.NoFileExists(t, filepath.Join(dir, "screenshot.png"))
			assert.Len(t, res.Files(), 1)
		})
	}
}

func TestPipeline_Run_MetadataErrorWritesNothing(t *testing.T) {
	fake := newFakeNexus(t, `{"message":"not found"}`)
	fake.status = http.StatusNotFound
	dir := filepath.Join(t.TempDir(), "out")

	_, err := fake.pipeline(dir).Run(context.Background(), &Input{APIKey: "k", Game: "skyrim", ModID: 1}, nil)

	var httpErr *merrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.EqualValues(t, 0, fake.imageHits.Load())
	assert.NoDirExists(t, dir)
}

func TestPipeline_Run_ImageErrorKeepsEarlierFiles(t *testing.T) {
	fake := newFakeNexus(t, coolArmor)
	fake.imageBytes = []byte("garbage")
	dir := t.TempDir()

	// left over from an earlier run
	stale := filepath.Join(dir, modinfo.FileName)
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	_, err := fake.pipeline(dir).Run(context.Background(), &Input{APIKey: "k", Game: "skyrim", ModID: 42}, nil)

	var decErr *merrors.DecodeError
	require.True(t, errors.As(err, &decErr))

	content, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	fake := newFakeNexus(t, coolArmor)
	dir := t.TempDir()
	in := &Input{APIKey: "k", Game: "skyrim", ModID: 42}
	p := fake.pipeline(dir)

	read := func() (string, string) {
		ini, err := os.ReadFile(filepath.Join(dir, "modinfo.ini"))
		require.NoError(t, err)
		shot, err := os.ReadFile(filepath.Join(dir, "screenshot.png"))
		require.NoError(t, err)
		return string(ini), string(shot)
	}

	_, err := p.Run(context.Background(), in, nil)
	require.NoError(t, err)
	ini1, png1 := read()

	_, err = p.Run(context.Background(), in, nil)
	require.NoError(t, err)
	ini2, png2 := read()

	assert.Equal(t, ini1, ini2)
	assert.Equal(t, png1, png2)
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		game        string
		id          string
		want        *Input
		wantMissing bool
		wantErr     bool
	}{
		{name: "valid", key: " k ", game: "skyrim ", id: " 42", want: &Input{APIKey: "k", Game: "skyrim", ModID: 42}},
		{name: "empty key", key: "", game: "skyrim", id: "1", wantErr: true, wantMissing: true},
		{name: "empty game", key: "k", game: "  ", id: "1", wantErr: true, wantMissing: true},
		{name: "empty id", key: "k", game: "skyrim", id: "", wantErr: true, wantMissing: true},
		{name: "not a number", key: "k", game: "skyrim", id: "abc", wantErr: true},
		{name: "float", key: "k", game: "skyrim", id: "4.2", wantErr: true},
		{name: "zero", key: "k", game: "skyrim", id: "0", wantErr: true},
		{name: "negative", key: "k", game: "skyrim", id: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.key, tt.game, tt.id)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var vErr *merrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMissing, IsMissing(err))
		})
	}
}

func TestSettings_WithDefaults(t *testing.T) {
	s := Settings{OutputDir: "out"}.withDefaults()
	d := DefaultSettings()
	assert.Equal(t, "out", s.OutputDir)
	assert.Equal(t, d.APIURL, s.APIURL)
	assert.Equal(t, d.SiteURL, s.SiteURL)
	assert.Equal(t, d.APIKeyFile, s.APIKeyFile)
	assert.Equal(t, d.Timeout, s.Timeout)
}

package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/nexusfetch/nexusfetch/internals/ownhttp"
)

// MaxSize is the biggest body Fetch will buffer (preview images are small)
const MaxSize = 64 << 20

var defaultClient = ownhttp.New(ownhttp.DefaultTimeout)

// HTTPItem is a URL that will be downloaded using http(s). No auth headers
// are sent.
type HTTPItem struct {
	Client *http.Client
	URL    string
}

// Fetch downloads the whole body into memory
func (i *HTTPItem) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, nil)
	if err != nil {
		return nil, err
	}

	client := i.Client
	if client == nil {
		client = defaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while fetching %s: %w", i.URL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, &merrors.HTTPError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			URL:        res.Request.URL.String(),
			Body:       string(body),
		}
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("error while reading %s: %w", i.URL, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%s is bigger than %d bytes", i.URL, MaxSize)
	}
	return data, nil
}

// NewHTTPItem creates a item that will be fetched with the given client
// (the throttled ownhttp client when nil)
func NewHTTPItem(client *http.Client, URL string) *HTTPItem {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	return &HTTPItem{client, URL}
}

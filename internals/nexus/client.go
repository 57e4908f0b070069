// Package nexus is a minimal client for the Nexus Mods API https://app.swaggerhub.com/apis-docs/NexusMods/nexus-mods_public_api_params_in_form_data/1.0
package nexus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
)

const (
	// DefaultAPIURL is the games endpoint of the v1 API
	DefaultAPIURL = "https://api.nexusmods.com/v1/games"
	// DefaultSiteURL is used to build the public homepage of a mod
	DefaultSiteURL = "https://www.nexusmods.com"
)

// Client talks to the Nexus Mods API with a personal API key
type Client struct {
	http   *http.Client
	apiKey string
	// BaseURL is the games endpoint. Defaults to DefaultAPIURL
	BaseURL string
}

// New returns a new Client. A nil httpClient falls back to http.DefaultClient
func New(httpClient *http.Client, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		http:    httpClient,
		apiKey:  apiKey,
		BaseURL: DefaultAPIURL,
	}
}

// url joins the addedPath to the BaseURL (panics if new path can not be parsed)
func (c *Client) url(addedPath ...string) string {
	joined, err := url.JoinPath(c.BaseURL, addedPath...)
	if err != nil {
		panic(err)
	}
	return joined
}

// get does an authenticated GET request that accepts json
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}

// decode checks the status code and decodes the json body into v
func decode(res *http.Response, v interface{}) error {
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &merrors.HTTPError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			URL:        res.Request.URL.String(),
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json response from %s: %w", res.Request.URL, err)
	}

	return nil
}

// Homepage returns the public page of a mod. game is used verbatim
func Homepage(siteURL string, game string, id int) string {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return siteURL + "/" + game + "/mods/" + strconv.Itoa(id)
}

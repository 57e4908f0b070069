package nexus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// UnknownValue is used for a missing name or author
	UnknownValue = "UNKNOWN"
	// DefaultVersion is used when a mod has no version
	DefaultVersion = "1.0"
)

// Mod is the metadata record of a single mod
type Mod struct {
	Name       string
	Version    string
	Summary    string
	Author     string
	PictureURL string

	// informational only
	ModID      int
	DomainName string
	UploadedBy string
	CategoryID int
	Available  bool
	Status     string
}

// modResponse mirrors the json. Pointers tell absent (or null) fields apart
// from empty ones
type modResponse struct {
	Name       *string      `json:"name"`
	Version    *looseString `json:"version"`
	Summary    *string      `json:"summary"`
	Author     *string      `json:"author"`
	PictureURL *string      `json:"picture_url"`

	ModID      int    `json:"mod_id"`
	DomainName string `json:"domain_name"`
	UploadedBy string `json:"uploaded_by"`
	CategoryID int    `json:"category_id"`
	Available  bool   `json:"available"`
	Status     string `json:"status"`
}

func (r *modResponse) toMod() *Mod {
	return &Mod{
		Name:       orDefault(r.Name, UnknownValue),
		Version:    orDefault((*string)(r.Version), DefaultVersion),
		Summary:    orDefault(r.Summary, ""),
		Author:     orDefault(r.Author, UnknownValue),
		PictureURL: orDefault(r.PictureURL, ""),
		ModID:      r.ModID,
		DomainName: r.DomainName,
		UploadedBy: r.UploadedBy,
		CategoryID: r.CategoryID,
		Available:  r.Available,
		Status:     r.Status,
	}
}

// looseString also accepts a json number, which is kept as written
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a string or number: %w", err)
		}
		*s = looseString(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = looseString(str)
	return nil
}

func orDefault(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Description returns the summary as a single line
func (m *Mod) Description() string {
	return lineBreaks.Replace(m.Summary)
}

// HasPicture is true if the mod has a preview image
func (m *Mod) HasPicture() bool {
	return strings.TrimSpace(m.PictureURL) != ""
}

// GetMod fetches the metadata of mod id in the given game domain
func (c *Client) GetMod(ctx context.Context, game string, id int) (*Mod, error) {
	res, err := c.get(ctx, c.url(game, "mods", strconv.Itoa(id)+".json"))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var raw modResponse
	if err := decode(res, &raw); err != nil {
		return nil, err
	}

	return raw.toMod(), nil
}

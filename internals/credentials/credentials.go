package credentials

import (
	"os"
	"strings"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
)

// DefaultKeyFile is the file the windowed front end reads the API key from
const DefaultKeyFile = "apikey.txt"

// Store reads the Nexus API key from a plain text file
type Store struct {
	path string
}

// New creates a Store for the given file. An empty path uses DefaultKeyFile
func New(path string) *Store {
	if path == "" {
		path = DefaultKeyFile
	}
	return &Store{path: path}
}

// Path returns the location of the key file
func (s *Store) Path() string {
	return s.path
}

// APIKey reads the key file on every call. Surrounding whitespace is removed,
// an empty file yields an empty key (callers validate that).
func (s *Store) APIKey() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", &merrors.IOError{Op: "open", Path: s.path, Err: err}
	}
	return strings.TrimSpace(string(raw)), nil
}

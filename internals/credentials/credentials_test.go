package credentials

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_APIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apikey.txt")
	require.NoError(t, os.WriteFile(path, []byte("  abc123\r\n"), 0600))

	key, err := New(path).APIKey()
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestStore_APIKey_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apikey.txt")
	_, err := New(path).APIKey()

	var ioErr *merrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultKeyFile, New("").Path())
}

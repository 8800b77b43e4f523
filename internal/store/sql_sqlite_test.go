package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNPath(t *testing.T) {
	tests := map[string]string{
		"strings.db":                     "strings.db",
		"/var/lib/strings/strings.db":    "/var/lib/strings/strings.db",
		"file:strings.db":                "strings.db",
		"file:data/strings.db?_fk=1&x=y": "data/strings.db",
	}

	for dsn, want := range tests {
		assert.Equal(t, want, dsnPath(dsn), dsn)
	}
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "strings.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// second call leaves the file alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

package testhelper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// LoadFixture reads testdata/name relative to the calling package
func LoadFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	assert.NoError(t, err)

	return string(data)
}

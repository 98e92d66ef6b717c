package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, "Budget", GetPlainLabel(0))
	assert.Equal(t, "Budget", GetPlainLabel(999))
	assert.Equal(t, "Standard", GetPlainLabel(1000))
	assert.Equal(t, "Standard", GetPlainLabel(4999))
	assert.Equal(t, "Premium", GetPlainLabel(5000))
	assert.Equal(t, "Premium", GetPlainLabel(100_000))
}

func TestGetColorLabel(t *testing.T) {
	// Color codes may be stripped when not a TTY; the label text must
	// survive either way.
	assert.Contains(t, GetColorLabel(250), "Budget")
	assert.Contains(t, GetColorLabel(2500), "Standard")
	assert.Contains(t, GetColorLabel(9600), "Premium")
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		require.NotNil(t, f)
		require.NoError(t, f.Close())

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestGetCatalogDBFilePath(t *testing.T) {
	path := GetCatalogDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".scout.db"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "exact", TruncateText("exact", 5))
	assert.Equal(t, "long st...", TruncateText("long string here", 10))
	// Width too small for the ellipsis leaves the string alone
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "True", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "NO", "false", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

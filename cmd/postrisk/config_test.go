package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalczyk-dev/postrisk"
)

func TestLoadAPIKey(t *testing.T) {
	t.Run("secrets file wins over environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secrets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("groq_api_key: from-file\n"), 0o600))
		t.Setenv("POSTRISK_SECRETS", path)
		t.Setenv("GROQ_API_KEY", "from-env")

		key, err := LoadAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "from-file", key)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("POSTRISK_SECRETS", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("GROQ_API_KEY", "from-env")

		key, err := LoadAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("malformed secrets file falls through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secrets.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t bad yaml ["), 0o600))
		t.Setenv("POSTRISK_SECRETS", path)
		t.Setenv("GROQ_API_KEY", "from-env")

		key, err := LoadAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		t.Setenv("POSTRISK_SECRETS", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("GROQ_API_KEY", "")

		_, err := LoadAPIKey()
		require.Error(t, err)
		assert.Equal(t, postrisk.EUNAVAILABLE, postrisk.ErrorCode(err))
	})
}

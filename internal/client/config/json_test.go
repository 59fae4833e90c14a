package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"upload_endpoint": "http://uploads.example/put",
		"upload_timeout":  "45s",
		"transport":       "s3",
		"s3_bucket":       "builds",
		"s3_url_ttl":      "24h",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://uploads.example/put", cfg.UploadEndpoint)
		assert.Equal(t, 45*time.Second, cfg.UploadTimeout)
		assert.Equal(t, "s3", cfg.Transport)
		assert.Equal(t, "builds", cfg.S3Bucket)
		assert.Equal(t, 24*time.Hour, cfg.S3URLTTL)
	})

	t.Run("absent keys keep previous values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{DefaultRelease: "v4", UserTag: "ci"}
		parseJson(cfg)

		assert.Equal(t, "v4", cfg.DefaultRelease)
		assert.Equal(t, "ci", cfg.UserTag)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			UploadEndpoint: "http://defaults:1234",
			UploadTimeout:  42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.UploadEndpoint)
		assert.Equal(t, 42*time.Second, cfg.UploadTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log().Level())
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.Runtime().BaseURL)
	assert.Equal(t, "https://huggingface.co", cfg.Runtime().HubURL)
	assert.Equal(t, 10*time.Minute, cfg.Runtime().ModelInfoTTL)
	assert.Equal(t, "DistilBERT Sentiment (SST-2)", cfg.Defaults().Text)
	assert.Equal(t, "ViT Base Image Classifier", cfg.Defaults().Image)
	assert.Equal(t, "Whisper Tiny (EN) ASR", cfg.Defaults().Audio)
	assert.Equal(t, "en", cfg.Console().Language)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "debug"

[runtime]
base_url = "http://localhost:8080"
token = "local-token"

[defaults]
audio = "Whisper Base ASR"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log().Level())
	assert.True(t, cfg.Log().IsDebug())
	assert.Equal(t, "http://localhost:8080", cfg.Runtime().BaseURL)
	assert.Equal(t, "local-token", cfg.Runtime().Token)
	assert.Equal(t, "Whisper Base ASR", cfg.Defaults().Audio)
	// untouched keys keep their defaults
	assert.Equal(t, "https://huggingface.co", cfg.Runtime().HubURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/no/such/config.toml")
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("INFERHUB_CONSOLE_LANGUAGE", "ru")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Console().Language)
}

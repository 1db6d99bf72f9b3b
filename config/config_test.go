package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"wordpress": {"base_url": "https://blog.example", "username": "author", "app_password": "pw"},
		"llm": {"provider": "openai", "model": "gpt-4o-mini", "api_key": "k"},
		"domains": ["Go concurrency", "AWS Lambda"],
		"categories": [3, 9],
		"background_path": "background.png",
		"font_path": "fonts/bold.ttf",
		"trigger_secret": "s"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example", cfg.WordPress.BaseURL)
	assert.Equal(t, []string{"Go concurrency", "AWS Lambda"}, cfg.Domains)
	assert.Equal(t, []int{3, 9}, cfg.Categories)

	// Defaults.
	assert.Equal(t, 30, cfg.CharsPerLine)
	assert.Equal(t, "published-titles.txt", cfg.HistoryPath)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing wordpress credentials",
			body: `{"wordpress": {"base_url": "https://x"}, "domains": ["d"], "background_path": "b", "font_path": "f"}`,
		},
		{
			name: "no domains",
			body: `{"wordpress": {"base_url": "https://x", "username": "u", "app_password": "p"}, "domains": [], "background_path": "b", "font_path": "f"}`,
		},
		{
			name: "missing asset paths",
			body: `{"wordpress": {"base_url": "https://x", "username": "u", "app_password": "p"}, "domains": ["d"]}`,
		},
		{
			name: "not json",
			body: `nope`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

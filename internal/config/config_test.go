package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 750, cfg.Stage.Width)
	assert.Equal(t, 10, cfg.Frames.Zoom)
	assert.Equal(t, 0.12, cfg.Margins.Photo)
	assert.Equal(t, "tn-", cfg.Catalog.ThumbnailPrefix)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stage", func(c *Config) { c.Stage.Width = 0 }},
		{"zero zoom frames", func(c *Config) { c.Frames.Zoom = 0 }},
		{"negative wait", func(c *Config) { c.Frames.Wait = -1 }},
		{"album margin", func(c *Config) { c.Margins.Album = 1 }},
		{"bad color", func(c *Config) { c.Colors.Shadow = "blue" }},
		{"short color", func(c *Config) { c.Colors.Background = "#fff" }},
		{"sort conflict", func(c *Config) { c.Catalog.NoSort = true; c.Catalog.SortByFilename = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.yaml")
	data := "art: true\nstage:\n  width: 1024\nframes:\n  zoom: 12\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Art)
	assert.Equal(t, 1024, cfg.Stage.Width)
	assert.Equal(t, 500, cfg.Stage.Height)
	assert.Equal(t, 12, cfg.Frames.Zoom)
	assert.Equal(t, 5, cfg.Frames.Wait)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.toml")
	data := "no_fade = true\n\n[caption]\ndisabled = true\n\n[colors]\nbackground = \"#000000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.NoFade)
	assert.True(t, cfg.Caption.Disabled)
	assert.Equal(t, "#000000", cfg.Colors.Background)
	assert.Equal(t, 100.0, cfg.Caption.Height)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "album.ini"))
	assert.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	cfg := Default()
	cfg.Frames.Samples = 6
	cfg.Catalog.CaptionFile = "captions.txt"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Frames.Samples)
	assert.Equal(t, "captions.txt", loaded.Catalog.CaptionFile)
	assert.NoError(t, loaded.Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ws://127.0.0.1:54000/livestyle", cfg.Service.URL)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout.Duration())
	assert.Equal(t, 56, cfg.Panel.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.Panel.Debounce.Duration())
	assert.Equal(t, "livestyle", cfg.Panel.LocalHost)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Notify.Duration())
	assert.Equal(t, 400*time.Millisecond, cfg.Animation.Expand.Duration())
	assert.Equal(t, "outExpo", cfg.Animation.Easing)
	assert.False(t, cfg.Desktop.Notify)
	assert.NotEmpty(t, cfg.Theme.Accent)
	assert.Equal(t, "/livestyle", cfg.Serve.Path)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Service.URL, cfg.Service.URL)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[service]
url = "ws://localhost:9000/rv"
timeout = "2s"

[panel]
width = 40
debounce = 250
local_host = "local.test"

[animation]
notify = "150ms"
expand = "1s"
easing = "linear"
fps = 30

[desktop]
notify = true

[theme]
accent = "#ff00ff"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ws://localhost:9000/rv", cfg.Service.URL)
	assert.Equal(t, 2*time.Second, cfg.Service.Timeout.Duration())
	assert.Equal(t, 40, cfg.Panel.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Panel.Debounce.Duration())
	assert.Equal(t, "local.test", cfg.Panel.LocalHost)
	assert.Equal(t, 150*time.Millisecond, cfg.Animation.Notify.Duration())
	assert.Equal(t, time.Second, cfg.Animation.Expand.Duration())
	assert.Equal(t, "linear", cfg.Animation.Easing)
	assert.Equal(t, time.Second/30, cfg.Animation.FrameInterval())
	assert.True(t, cfg.Desktop.Notify)
	assert.Equal(t, "#ff00ff", cfg.Theme.Accent)

	// Unset fields keep defaults
	assert.Equal(t, "8", cfg.Theme.Muted)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte("[panel]\ndebounce = \"soon\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Panel.Width = 72
	cfg.Animation.Notify = Duration(time.Second)

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 72, loaded.Panel.Width)
	assert.Equal(t, time.Second, loaded.Animation.Notify.Duration())
}

func TestFrameInterval_Default(t *testing.T) {
	assert.Equal(t, time.Second/60, AnimationConfig{}.FrameInterval())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[panel]\nwidth = 30\n"), 0644))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { changes <- cfg })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(path, []byte("[panel]\nwidth = 64\n"), 0644))

	// A write may be observed mid-truncate, so wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Panel.Width == 64 {
				return
			}
		case <-timeout:
			t.Fatal("config change not observed")
		}
	}
}

// Package config holds the demo's window and asset preferences, persisted as YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config/uidemo.yaml"

// Window describes the raylib window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// Debug toggles the on-screen overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Config is the full set of demo preferences.
type Config struct {
	Window     Window   `yaml:"window"`
	Font       string   `yaml:"font,omitempty"`
	Stylesheet string   `yaml:"stylesheet,omitempty"`
	AssetDirs  []string `yaml:"asset_dirs"`
	Debug      Debug    `yaml:"debug"`
	Log        Log      `yaml:"log"`
}

// Default returns a windowed 1280x720 setup at 60 FPS with overlays off.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "ui-builder",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		AssetDirs: []string{"assets", "../../assets"},
		Log:       Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default(). A missing file is not an
// error and yields the defaults; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects window sizes and frame rates raylib cannot use.
func (c Config) Validate() error {
	if !c.Window.Fullscreen && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("config: target_fps %d must not be negative", c.Window.TargetFPS)
	}
	return nil
}

// Save writes c to path, creating its directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

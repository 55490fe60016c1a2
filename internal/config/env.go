package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix starts every environment override, e.g. UIDEMO_LOG_LEVEL=debug.
const EnvPrefix = "UIDEMO_"

// LoadDotEnv sets environment variables from KEY=VALUE lines in path. Blank
// lines and # comments are skipped, surrounding quotes are removed, and
// variables already set in the environment are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = unquote(strings.TrimSpace(value))
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// ApplyEnv overrides c with the UIDEMO_* variables that are set:
// FONT, STYLESHEET, FULLSCREEN, SHOW_FPS, LOG_LEVEL and LOG_FILE.
func ApplyEnv(c *Config) error {
	strs := map[string]*string{
		"FONT":       &c.Font,
		"STYLESHEET": &c.Stylesheet,
		"LOG_LEVEL":  &c.Log.Level,
		"LOG_FILE":   &c.Log.File,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	bools := map[string]*bool{
		"FULLSCREEN": &c.Window.Fullscreen,
		"SHOW_FPS":   &c.Debug.ShowFPS,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, name, v, err)
		}
		*dst = b
	}
	return nil
}

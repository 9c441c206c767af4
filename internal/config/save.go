package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/chevron/internal/log"
)

const defaultHeader = `# Chevron configuration
#
# catalog:        suggestions offered after typing <>
# catalog_file:   optional file with one suggestion per line (or a YAML list);
#                 reloaded while the editor runs
# theme colors:   hex values, e.g. "#1E90FF"
`

// Marshal encodes c as YAML with two-space indentation.
func Marshal(c Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()
	return buf.Bytes(), nil
}

// WriteDefaultConfig creates a config file at the given path with default
// settings. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	body, err := Marshal(Defaults())
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, append([]byte(defaultHeader), body...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}

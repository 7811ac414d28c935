package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when the built-in defaults were used.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.humanbench/config.yaml -> ./configs/humanbench.yaml -> embedded default.
// Returns the config and the path it was read from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.resolve(); err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "humanbench.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		if err := cfg.resolve(); err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the built-in defaults so omitted keys keep
// their default values, then validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolve loads files referenced by the config.
func (c *Config) resolve() error {
	if c.Verbal.WordList == "" {
		return nil
	}
	words, err := LoadWordList(c.Verbal.WordList)
	if err != nil {
		return err
	}
	c.Verbal.Words = words
	return nil
}

// LoadWordList reads a word list file with one word per line.
// Blank lines and lines starting with '#' are skipped; duplicates are dropped.
func LoadWordList(path string) ([]string, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("config: cannot read word list %s: %w", path, err)
	}
	words := ParseWordList(data)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: word list %s has no words", ErrInvalidConfig, path)
	}
	return words, nil
}

// ParseWordList splits word list data into unique, trimmed, lower-case words.
func ParseWordList(data []byte) []string {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".humanbench", filename)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	bioerrors "github.com/madergk/biods/pkg/errors"
)

// DefaultFileNames are probed, in order, when no config path is given.
var DefaultFileNames = []string{"biods.yaml", "biods.yml", "biods.toml"}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the config at path. An empty path probes DefaultFileNames in
// dir and falls back to DefaultConfig when none exists.
func Load(dir, path string) (*Config, error) {
	if path == "" {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			cfg := DefaultConfig()
			cfg.BaseDir = dir
			return cfg, nil
		}
	}

	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bioerrors.NewConfigError(path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			var decodeErr *toml.DecodeError
			if errors.As(err, &decodeErr) {
				row, col := decodeErr.Position()
				return nil, bioerrors.NewParseError(path, row, col, err)
			}
			return nil, bioerrors.NewParseError(path, 0, 0, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, bioerrors.NewParseError(path, extractLine(err), 0, err)
		}
	}

	cfg.BaseDir = filepath.Dir(path)
	cfg.applyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolveSources expands the source globs relative to BaseDir. A pattern
// without glob metacharacters is returned as is even when the file does not
// exist, so the caller can report it as missing.
func (c *Config) ResolveSources() ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	for _, pattern := range c.Source {
		if filepath.IsAbs(pattern) || !hasMeta(pattern) {
			p := pattern
			if !filepath.IsAbs(p) {
				p = filepath.Join(c.BaseDir, filepath.FromSlash(p))
			}
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(c.BaseDir), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, bioerrors.NewConfigError("", fmt.Errorf("source %q: %w", pattern, err))
		}
		if len(matches) == 0 {
			return nil, bioerrors.NewConfigError("", fmt.Errorf("source %q: %w", pattern, fs.ErrNotExist))
		}
		sort.Strings(matches)
		for _, m := range matches {
			p := filepath.Join(c.BaseDir, filepath.FromSlash(m))
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}

	return out, nil
}

// OutputPath returns where a platform file is written.
func (c *Config) OutputPath(platform Platform, file File) string {
	dir := filepath.FromSlash(platform.BuildPath)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.BaseDir, dir)
	}
	return filepath.Join(dir, filepath.FromSlash(file.Destination))
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

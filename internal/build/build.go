// Package build generates platform artifacts (CSS custom properties,
// TypeScript declarations, nested JSON) from a validated token document.
package build

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/madergk/biods/internal/config"
	"github.com/madergk/biods/internal/logger"
	"github.com/madergk/biods/internal/tokens"
	"github.com/madergk/biods/pkg/diff"
	bioerrors "github.com/madergk/biods/pkg/errors"
)

// Artifact is one generated file.
type Artifact struct {
	Platform string
	Format   string
	Path     string
	Content  []byte
}

// Drift describes an artifact whose on-disk copy differs from what the
// current token source would generate.
type Drift struct {
	Artifact Artifact
	Missing  bool
	Diff     string
}

// Build renders every configured platform file in memory.
func Build(doc *tokens.Document, cfg *config.Config) ([]Artifact, error) {
	toks := tokens.Flatten(doc)
	resolver := NewResolver(toks)

	var artifacts []Artifact
	for _, name := range cfg.PlatformNames() {
		platform := cfg.Platforms[name]
		for _, file := range platform.Files {
			format, ok := formatters[file.Format]
			if !ok {
				return nil, bioerrors.NewBuildError(name, file.Destination, fmt.Errorf("unknown format %q", file.Format))
			}
			content, err := format(formatContext{tokens: toks, resolver: resolver, prefix: cfg.Prefix, file: file})
			if err != nil {
				return nil, bioerrors.NewBuildError(name, file.Destination, err)
			}
			artifacts = append(artifacts, Artifact{
				Platform: name,
				Format:   file.Format,
				Path:     cfg.OutputPath(platform, file),
				Content:  content,
			})
		}
	}
	return artifacts, nil
}

// Write stores artifacts, creating build directories as needed. Files whose
// content is unchanged are left alone.
func Write(artifacts []Artifact, log *logger.Logger) (int, error) {
	written := 0
	for _, a := range artifacts {
		existing, err := os.ReadFile(a.Path)
		if err == nil && bytes.Equal(existing, a.Content) {
			log.With("path", a.Path).Debug("artifact unchanged")
			continue
		}

		if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
			return written, bioerrors.NewBuildError(a.Platform, a.Path, err)
		}
		if err := os.WriteFile(a.Path, a.Content, 0o644); err != nil {
			return written, bioerrors.NewBuildError(a.Platform, a.Path, err)
		}
		written++

		log.WithFields(map[string]any{
			"platform": a.Platform,
			"path":     a.Path,
			"bytes":    len(a.Content),
		}).Info("artifact written")
	}
	return written, nil
}

// Check compares artifacts to the files on disk without writing anything.
func Check(artifacts []Artifact) ([]Drift, error) {
	var drifts []Drift
	for _, a := range artifacts {
		existing, err := os.ReadFile(a.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			drifts = append(drifts, Drift{Artifact: a, Missing: true, Diff: diff.Lines(nil, a.Content, a.Path, a.Path+" (generated)")})
		case err != nil:
			return nil, bioerrors.NewBuildError(a.Platform, a.Path, err)
		default:
			if d := diff.Lines(existing, a.Content, a.Path, a.Path+" (generated)"); d != "" {
				drifts = append(drifts, Drift{Artifact: a, Diff: d})
			}
		}
	}
	return drifts, nil
}

// Package pipeline runs the token toolchain stages (load, validate, build,
// check) for the command layer.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/madergk/biods/internal/build"
	"github.com/madergk/biods/internal/changes"
	"github.com/madergk/biods/internal/config"
	"github.com/madergk/biods/internal/logger"
	"github.com/madergk/biods/internal/tokens"
	"github.com/madergk/biods/internal/validation"
	"github.com/madergk/biods/internal/watch"
)

// ErrOutOfDate is returned when generated files differ from the token source.
var ErrOutOfDate = errors.New("generated files are out of date")

// PrepareRequest selects the project to load.
type PrepareRequest struct {
	Dir        string
	ConfigPath string
	// Sources overrides the configured token sources when non-empty.
	Sources []string
}

// Prepared is a loaded project: its config, the resolved source files and
// the merged token document.
type Prepared struct {
	Config   *config.Config
	Sources  []string
	Document *tokens.Document
}

// Service coordinates the toolchain stages.
type Service struct {
	log *logger.Logger
}

// NewService constructs a pipeline service logging to log.
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{log: log}
}

// Prepare loads configuration and token sources.
func (s *Service) Prepare(req PrepareRequest) (*Prepared, error) {
	cfg, err := config.Load(req.Dir, req.ConfigPath)
	if err != nil {
		return nil, err
	}

	sources := req.Sources
	if len(sources) == 0 {
		sources, err = cfg.ResolveSources()
		if err != nil {
			return nil, err
		}
	}

	doc, err := tokens.LoadAll(sources)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]any{
		"sources":    len(sources),
		"categories": len(doc.Categories()),
	}).Debug("token sources loaded")

	return &Prepared{Config: cfg, Sources: sources, Document: doc}, nil
}

// Validate runs the structural checks with the project's category schema.
func (s *Service) Validate(p *Prepared) validation.Report {
	report := validation.Validate(p.Document, p.Config.Schema())
	s.log.WithFields(map[string]any{
		"errors":   len(report.Errors),
		"warnings": len(report.Warnings),
	}).Debug("validation finished")
	return report
}

// BuildRequest configures a build run.
type BuildRequest struct {
	Prepared *Prepared
	// Check compares against disk instead of writing.
	Check bool
}

// BuildOutcome captures what a build run produced.
type BuildOutcome struct {
	Report    validation.Report
	Artifacts []build.Artifact
	Written   int
	Drifts    []build.Drift
}

// Build validates the document and, when it passes, generates every
// platform artifact. A failing report stops the run before anything is
// generated; the outcome still carries the report.
func (s *Service) Build(ctx context.Context, req BuildRequest) (*BuildOutcome, error) {
	outcome := &BuildOutcome{Report: s.Validate(req.Prepared)}
	if err := outcome.Report.Err(); err != nil {
		return outcome, err
	}

	artifacts, err := build.Build(req.Prepared.Document, req.Prepared.Config)
	if err != nil {
		return outcome, err
	}
	outcome.Artifacts = artifacts

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	if req.Check {
		drifts, err := build.Check(artifacts)
		if err != nil {
			return outcome, err
		}
		outcome.Drifts = drifts
		if len(drifts) > 0 {
			return outcome, fmt.Errorf("%w: %d file(s)", ErrOutOfDate, len(drifts))
		}
		return outcome, nil
	}

	written, err := build.Write(artifacts, s.log)
	outcome.Written = written
	if err != nil {
		return outcome, err
	}
	s.log.WithFields(map[string]any{
		"artifacts": len(artifacts),
		"written":   written,
	}).Info("build finished")
	return outcome, nil
}

// Watch rebuilds whenever a source file changes until ctx is cancelled. The
// project is reloaded on every change so edits to any source are picked up.
// onResult receives the outcome of each rebuild.
func (s *Service) Watch(ctx context.Context, req PrepareRequest, onResult func(*BuildOutcome, error)) error {
	prepared, err := s.Prepare(req)
	if err != nil {
		return err
	}

	w, err := watch.New(prepared.Sources, watch.Options{}, s.log)
	if err != nil {
		return err
	}

	s.log.With("sources", len(prepared.Sources)).Info("watching token sources")
	return w.Run(ctx, func(ctx context.Context, changed []string) {
		s.log.With("files", changed).Info("rebuilding")
		p, err := s.Prepare(req)
		if err != nil {
			onResult(nil, err)
			return
		}
		onResult(s.Build(ctx, BuildRequest{Prepared: p}))
	})
}

// Lookup returns the node at a dotted path of the merged document.
func (s *Service) Lookup(p *Prepared, path string) (*tokens.Node, bool) {
	return tokens.Lookup(p.Document, path)
}

// SyncOutcome reports the git state of the sources followed by a build.
type SyncOutcome struct {
	Changes changes.Summary
	Build   *BuildOutcome
}

// Sync summarizes source changes relative to HEAD, then validates and
// rebuilds.
func (s *Service) Sync(ctx context.Context, p *Prepared) (*SyncOutcome, error) {
	summary, err := changes.Summarize(p.Sources)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]any{
		"changed": len(summary.Changed()),
		"branch":  summary.Branch,
	}).Debug("source changes summarized")

	outcome := &SyncOutcome{Changes: summary}
	outcome.Build, err = s.Build(ctx, BuildRequest{Prepared: p})
	return outcome, err
}

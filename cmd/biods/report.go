package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/madergk/biods/internal/app/pipeline"
	"github.com/madergk/biods/internal/validation"
)

// errReported marks a failure whose details were already printed, so main
// only sets the exit code.
var errReported = errors.New("failure reported")

const ruleWidth = 50

type reportStyles struct {
	heading lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return reportStyles{heading: plain, warning: plain, failure: plain, success: plain, muted: plain}
	}

	r := lipgloss.NewRenderer(w)
	return reportStyles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		muted:   r.NewStyle().Faint(true),
	}
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

// printReport writes warnings, then errors, then a single verdict line.
func printReport(w io.Writer, s reportStyles, label string, report validation.Report) {
	fmt.Fprintln(w, s.heading.Render("🔍 Validating "+label))
	fmt.Fprintln(w, s.muted.Render(strings.Repeat("=", ruleWidth)))

	printFindings(w, s.warning, "⚠  WARNINGS:", report.Warnings)
	printFindings(w, s.failure, "❌ ERRORS:", report.Errors)

	fmt.Fprintln(w)
	switch {
	case !report.Passed():
		fmt.Fprintln(w, s.failure.Render(fmt.Sprintf("❌ Validation failed: %d error(s), %d warning(s)", len(report.Errors), len(report.Warnings))))
	case len(report.Warnings) > 0:
		fmt.Fprintln(w, s.success.Render(fmt.Sprintf("✅ Validation completed with %d warning(s)", len(report.Warnings))))
	default:
		fmt.Fprintln(w, s.success.Render("✅ All tokens are valid!"))
	}
}

func printFindings(w io.Writer, style lipgloss.Style, title string, findings []validation.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Render(title))
	for _, f := range findings {
		fmt.Fprintln(w, style.Render("  "+f.Message))
	}
}

// printBuildOutcome renders a build or check result and maps it to the
// command error.
func printBuildOutcome(w io.Writer, s reportStyles, label string, outcome *pipeline.BuildOutcome, check bool, err error) error {
	if outcome == nil {
		return err
	}

	if !outcome.Report.Passed() {
		printReport(w, s, label, outcome.Report)
		return errReported
	}
	printFindings(w, s.warning, "⚠  WARNINGS:", outcome.Report.Warnings)

	if errors.Is(err, pipeline.ErrOutOfDate) {
		for _, d := range outcome.Drifts {
			if d.Missing {
				fmt.Fprintln(w, s.failure.Render("✖ missing  "+d.Artifact.Path))
				continue
			}
			fmt.Fprintln(w, s.failure.Render("✖ drifted  "+d.Artifact.Path))
			if d.Diff != "" {
				fmt.Fprintln(w, d.Diff)
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.failure.Render(fmt.Sprintf("❌ %d generated file(s) out of date - run 'biods build' to fix", len(outcome.Drifts))))
		return errReported
	}
	if err != nil {
		return err
	}

	if check {
		fmt.Fprintln(w, s.success.Render(fmt.Sprintf("✅ Generated files are up to date (%d checked)", len(outcome.Artifacts))))
		return nil
	}

	for _, a := range outcome.Artifacts {
		fmt.Fprintf(w, "  ✔ %-10s %s\n", a.Platform, a.Path)
	}
	fmt.Fprintln(w, s.success.Render(fmt.Sprintf("✅ Built %d file(s), %d written", len(outcome.Artifacts), outcome.Written)))
	return nil
}

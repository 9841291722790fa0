package generator

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status is the outcome of one step.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusFailed:
		return "failed"
	default:
		return "ok"
	}
}

// Symbol is the status-line marker.
func (s Status) Symbol() string {
	switch s {
	case StatusWarning:
		return "⚠️"
	case StatusFailed:
		return "❌"
	default:
		return "✅"
	}
}

// StepResult records one status line.
type StepResult struct {
	Platform string
	Step     string
	Status   Status
	Detail   string
	Err      error
}

// Message is the status line text without its marker.
func (r StepResult) Message() string {
	text := r.Detail
	if r.Err != nil {
		text = r.Err.Error()
	}
	if text == "" {
		return fmt.Sprintf("%s: %s", r.Platform, r.Step)
	}
	return fmt.Sprintf("%s: %s: %s", r.Platform, r.Step, text)
}

// Report is the ordered list of step results of one run.
type Report struct {
	Steps []StepResult
}

// Failed reports whether any step failed.
func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Count returns how many steps ended with status.
func (r Report) Count(status Status) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}
	return n
}

// Platform returns the results recorded for one platform.
func (r Report) Platform(name string) []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Platform == name {
			out = append(out, s)
		}
	}
	return out
}

// Printer writes one colored line per step result.
type Printer struct {
	out    io.Writer
	colors map[Status]*color.Color
}

// NewPrinter creates a printer writing to out. Color follows fatih/color's
// terminal and NO_COLOR detection unless noColor forces it off.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out: out,
		colors: map[Status]*color.Color{
			StatusOK:      color.New(color.FgGreen),
			StatusWarning: color.New(color.FgYellow),
			StatusFailed:  color.New(color.FgRed, color.Bold),
		},
	}
	if noColor {
		for _, c := range p.colors {
			c.DisableColor()
		}
	}
	return p
}

// Print writes r as a single line.
func (p *Printer) Print(r StepResult) {
	if p == nil || p.out == nil {
		return
	}
	_, _ = p.colors[r.Status].Fprintf(p.out, "%s %s\n", r.Status.Symbol(), r.Message())
}

// Summary writes the closing line for report.
func (p *Printer) Summary(report Report) {
	if p == nil || p.out == nil {
		return
	}
	status := StatusOK
	switch {
	case report.Failed():
		status = StatusFailed
	case report.Count(StatusWarning) > 0:
		status = StatusWarning
	}
	_, _ = p.colors[status].Fprintf(p.out, "%s %d ok, %d warnings, %d failed\n",
		status.Symbol(), report.Count(StatusOK), report.Count(StatusWarning), report.Count(StatusFailed))
}

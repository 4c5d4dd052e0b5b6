// Package console writes the action stream to a terminal or any io.Writer.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bft-labs/philo/internal/domain"
)

// ColorMode selects when action lines are colourised.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Format renders one action line without a trailing newline.
func Format(elapsedMs int64, philosopher int, action domain.Action) string {
	return fmt.Sprintf("%d philosopher %d %s", elapsedMs, philosopher, action)
}

// Reporter writes one line per action.
type Reporter struct {
	w       io.Writer
	palette map[domain.Action]*color.Color
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer, mode ColorMode) *Reporter {
	r := &Reporter{w: w}
	if useColor(w, mode) {
		r.palette = map[domain.Action]*color.Color{
			domain.ActionTookFork: color.New(color.FgCyan),
			domain.ActionEating:   color.New(color.FgGreen, color.Bold),
			domain.ActionSleeping: color.New(color.FgBlue),
			domain.ActionThinking: color.New(color.FgYellow),
			domain.ActionDied:     color.New(color.FgHiRed, color.Bold),
		}
		for _, c := range r.palette {
			c.EnableColor()
		}
	}
	return r
}

// Colored reports whether lines are colourised.
func (r *Reporter) Colored() bool {
	return r.palette != nil
}

// Report writes the line for one action.
func (r *Reporter) Report(elapsedMs int64, philosopher int, action domain.Action) {
	line := Format(elapsedMs, philosopher, action)
	if c, ok := r.palette[action]; ok {
		line = c.Sprint(line)
	}
	_, _ = fmt.Fprintln(r.w, line)
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"weblatedl/internal/logger"

	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageStatus is the outcome recorded for one manifest record.
type LanguageStatus int

const (
	StatusDownloaded LanguageStatus = iota
	StatusSkippedSource
	StatusSkippedIncomplete
	StatusFailed
)

func (s LanguageStatus) String() string {
	switch s {
	case StatusDownloaded:
		return "downloaded"
	case StatusSkippedSource:
		return "source language"
	case StatusSkippedIncomplete:
		return "below threshold"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	codeColumnWidth = 10
	nameColumnWidth = 24
)

// Printer renders one status line per language record.
type Printer struct {
	out     io.Writer
	success *color.Color
	warn    *color.Color
	failure *color.Color
	faint   *color.Color
}

// NewPrinter constructs a Printer writing to out (stdout when nil). Colour is
// enabled only when out is a terminal and NO_COLOR is unset.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}

	p := &Printer{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		faint:   color.New(color.Faint),
	}

	enabled := logger.SupportsColor(out)
	for _, c := range []*color.Color{p.success, p.warn, p.failure, p.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// PrintLanguageStatus renders e.g. "[ ✓ ] fr         French                    95.0%  downloaded".
func (p *Printer) PrintLanguageStatus(code, name string, percent float64, status LanguageStatus) {
	var mark string
	switch status {
	case StatusDownloaded:
		mark = p.success.Sprint("✓")
	case StatusSkippedSource:
		mark = p.faint.Sprint("-")
	case StatusSkippedIncomplete:
		mark = p.warn.Sprint("!")
	case StatusFailed:
		mark = p.failure.Sprint("✕")
	default:
		mark = "?"
	}

	fmt.Fprintf(p.out, "[ %s ] %s %s %5.1f%%  %s\n",
		mark,
		pad(code, codeColumnWidth),
		pad(LanguageName(code, name), nameColumnWidth),
		percent,
		status,
	)
}

// LanguageName resolves a display name for a Weblate language code. A non-empty
// reported name wins; otherwise the code is looked up as a BCP 47 tag. Unknown
// codes are returned unchanged.
func LanguageName(code, reported string) string {
	if name := strings.TrimSpace(reported); name != "" {
		return name
	}

	tag, err := language.Parse(NormalizeCode(code))
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// NormalizeCode converts Weblate's underscore separated codes (zh_Hant, pt_BR)
// to BCP 47 form.
func NormalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}

func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

package logger

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColoredLogger is a StandardLogger whose level tags are coloured on terminals.
type ColoredLogger struct {
	*StandardLogger
}

// NewColoredLogger returns a logger that colours output when it is a TTY and NO_COLOR is unset.
func NewColoredLogger(options ...Option) *ColoredLogger {
	std := NewStandardLogger(options...)
	std.formatter = NewColoredFormatter(SupportsColor(std.output))
	return &ColoredLogger{StandardLogger: std}
}

// ColoredFormatter renders entries with coloured levels and faint fields.
type ColoredFormatter struct {
	timestampFormat string
	colors          map[Level]*color.Color
	faint           *color.Color
	enableColors    bool
}

// NewColoredFormatter builds a formatter; with enable false it matches TextFormatter output.
func NewColoredFormatter(enable bool) *ColoredFormatter {
	f := &ColoredFormatter{
		timestampFormat: "15:04:05",
		colors: map[Level]*color.Color{
			LevelDebug: color.New(color.FgCyan),
			LevelInfo:  color.New(color.FgBlue),
			LevelWarn:  color.New(color.FgYellow),
			LevelError: color.New(color.FgRed),
		},
		faint:        color.New(color.Faint),
		enableColors: enable,
	}

	// color.NoColor is decided from stdout; logs go to stderr.
	if enable {
		for _, c := range f.colors {
			c.EnableColor()
		}
		f.faint.EnableColor()
	}

	return f
}

func (f *ColoredFormatter) Format(entry *Entry) ([]byte, error) {
	level := entry.Level.String()
	if f.enableColors {
		if c := f.colors[entry.Level]; c != nil {
			level = c.Sprint(level)
		}
	}

	fieldText := func(field Field) string {
		text := defaultFieldFormatter(field)
		if f.enableColors {
			return f.faint.Sprint(text)
		}
		return text
	}

	return formatEntry(entry, entry.Time.Format(f.timestampFormat), level, fieldText), nil
}

// SupportsColor reports whether w is a terminal and NO_COLOR is unset.
func SupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

package downloader

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ProgressReporter receives download progress updates.
type ProgressReporter interface {
	OnStart(name string, totalSize int64)
	OnProgress(name string, current, total int64)
	OnComplete(name string, size int64, elapsed time.Duration)
}

// NoopProgressReporter discards all progress events.
type NoopProgressReporter struct{}

func (NoopProgressReporter) OnStart(string, int64)                   {}
func (NoopProgressReporter) OnProgress(string, int64, int64)         {}
func (NoopProgressReporter) OnComplete(string, int64, time.Duration) {}

const (
	progressBarWidth = 30
	progressInterval = 200 * time.Millisecond
)

// ConsoleProgressReporter draws a single-line progress bar per download.
type ConsoleProgressReporter struct {
	writer     io.Writer
	lastUpdate time.Time
}

// NewConsoleProgressReporter constructs a ConsoleProgressReporter writing to w (stderr when nil).
func NewConsoleProgressReporter(w io.Writer) *ConsoleProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleProgressReporter{writer: w}
}

func (c *ConsoleProgressReporter) OnStart(name string, totalSize int64) {
	c.lastUpdate = time.Now()
}

func (c *ConsoleProgressReporter) OnProgress(name string, current, total int64) {
	now := time.Now()
	if now.Sub(c.lastUpdate) < progressInterval {
		return
	}
	c.lastUpdate = now

	if total <= 0 {
		fmt.Fprintf(c.writer, "\r  %s: %.1f KiB", name, kib(current))
		return
	}

	percentage := float64(current) / float64(total) * 100
	fmt.Fprintf(c.writer, "\r  %s: [%s] %.1f%% (%.1f/%.1f KiB)", name, bar(percentage), percentage, kib(current), kib(total))
}

func (c *ConsoleProgressReporter) OnComplete(name string, size int64, elapsed time.Duration) {
	var speed float64
	if elapsed > 0 {
		speed = kib(size) / elapsed.Seconds()
	}
	fmt.Fprintf(c.writer, "\r  %s: [%s] 100.0%% (%.1f KiB) %.1f KiB/s\n", name, bar(100), kib(size), speed)
}

func bar(percentage float64) string {
	filled := int(float64(progressBarWidth) * percentage / 100)
	if filled >= progressBarWidth {
		return strings.Repeat("=", progressBarWidth)
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("=", filled) + ">" + strings.Repeat(" ", progressBarWidth-filled-1)
}

func kib(n int64) float64 {
	return float64(n) / 1024
}

// ProgressReader wraps a reader and relays byte counts to a ProgressReporter.
type ProgressReader struct {
	reader    io.Reader
	total     int64
	current   int64
	reporter  ProgressReporter
	name      string
	startTime time.Time
}

// NewProgressReader constructs a progress tracking reader; total may be -1 when unknown.
func NewProgressReader(reader io.Reader, total int64, reporter ProgressReporter, name string) *ProgressReader {
	if reporter == nil {
		reporter = NoopProgressReporter{}
	}

	pr := &ProgressReader{
		reader:    reader,
		total:     total,
		reporter:  reporter,
		name:      name,
		startTime: time.Now(),
	}
	reporter.OnStart(name, total)
	return pr
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.current += int64(n)
		pr.reporter.OnProgress(pr.name, pr.current, pr.total)
	}
	return n, err
}

// Finish reports completion with the number of bytes actually read.
func (pr *ProgressReader) Finish() int64 {
	pr.reporter.OnComplete(pr.name, pr.current, time.Since(pr.startTime))
	return pr.current
}

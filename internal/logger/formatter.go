package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Formatter converts log entries to their textual or structured representation.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Entry represents a single log record.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
}

// TextFormatter renders "15:04:05 [LEVEL] message key=value" lines.
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var timestamp string
	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = "15:04:05"
		}
		timestamp = entry.Time.Format(format)
	}
	return formatEntry(entry, timestamp, entry.Level.String(), nil), nil
}

// JSONFormatter renders log entries as one JSON object per line.
type JSONFormatter struct {
	TimestampFormat string
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	format := f.TimestampFormat
	if format == "" {
		format = time.RFC3339
	}

	data := make(map[string]interface{}, len(entry.Fields)+3)
	for _, field := range entry.Fields {
		data[field.Key] = field.Value
	}
	data["time"] = entry.Time.Format(format)
	data["level"] = entry.Level.String()
	data["msg"] = entry.Message

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

type fieldFormatter func(Field) string

func defaultFieldFormatter(field Field) string {
	return fmt.Sprintf("%s=%v", field.Key, field.Value)
}

func formatEntry(entry *Entry, timestamp, levelText string, formatter fieldFormatter) []byte {
	if formatter == nil {
		formatter = defaultFieldFormatter
	}

	var buf bytes.Buffer

	if timestamp != "" {
		buf.WriteString(timestamp)
		buf.WriteString(" ")
	}

	buf.WriteString("[")
	buf.WriteString(levelText)
	buf.WriteString("] ")
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteString(" ")
		buf.WriteString(formatter(field))
	}

	buf.WriteString("\n")
	return buf.Bytes()
}

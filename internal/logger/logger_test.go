package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewStandardLogger(WithOutput(&buf), WithLevel(LevelWarn), WithFormatter(&TextFormatter{DisableTimestamp: true}))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	assert.Equal(t, "[WARN] shown 1\n", buf.String())
}

func TestStandardLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewStandardLogger(WithOutput(&buf), WithFormatter(&TextFormatter{DisableTimestamp: true}))

	child := log.With(String("component", "rdsys"))
	child.InfoContext(context.Background(), "manifest fetched", Int("records", 3))

	assert.Equal(t, "[INFO] manifest fetched component=rdsys records=3\n", buf.String())
}

func TestStandardLoggerSuccessPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewStandardLogger(WithOutput(&buf), WithFormatter(&TextFormatter{DisableTimestamp: true}))

	log.Success("%s written", "fr.po")

	assert.Equal(t, "[INFO] ✓ fr.po written\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	log := NewStandardLogger(WithOutput(&buf), WithFormatter(&JSONFormatter{}))

	log.ErrorContext(context.Background(), "download failed", String("language", "fr"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ERROR", decoded["level"])
	assert.Equal(t, "download failed", decoded["msg"])
	assert.Equal(t, "fr", decoded["language"])
}

func TestColoredFormatterWithoutColor(t *testing.T) {
	f := NewColoredFormatter(false)
	out, err := f.Format(&Entry{Level: LevelWarn, Message: "skipped", Fields: []Field{String("language", "de")}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "[WARN] skipped language=de")
}

func TestSupportsColorNonTerminal(t *testing.T) {
	assert.False(t, SupportsColor(&bytes.Buffer{}))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestMockLoggerRecords(t *testing.T) {
	m := NewMockLogger()
	m.Debug("a")
	m.WarnContext(context.Background(), "b", String("k", "v"))

	require.Len(t, m.GetEntries(), 2)
	assert.True(t, m.HasEntry(LevelWarn, "b"))
	v, ok := m.GetEntries()[1].Field("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	m.Reset()
	assert.Empty(t, m.GetEntries())
}

package weblate

import (
	"fmt"
	"strings"
)

// Logger is the subset of logger.Logger the client reports through.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// restyLogger routes resty's internal messages into Logger.
type restyLogger struct {
	log Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error("resty: %s", trimNewline(format, v))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn("resty: %s", trimNewline(format, v))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug("resty: %s", trimNewline(format, v))
}

func trimNewline(format string, v []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}

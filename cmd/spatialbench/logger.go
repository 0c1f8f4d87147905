package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// logFormatter writes one compact line per entry followed by its fields in
// sorted order.
type logFormatter struct {
	TimestampFormat string
}

func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] [%s] %s", entry.Time.Format(f.TimestampFormat), level, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func sortedKeys(fields logrus.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseLogLevel maps a level name to a logrus level, defaulting to info.
func parseLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// newLogger returns a logger writing to stderr and, if path is set, to the
// file at path as well. The returned func closes the file.
func newLogger(level, path string) (*logrus.Logger, func() error, error) {
	l := logrus.New()
	l.SetFormatter(&logFormatter{TimestampFormat: "15:04:05.000"})
	l.SetLevel(parseLogLevel(level))
	if path == "" {
		l.SetOutput(os.Stderr)
		return l, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "spatialbench: opening log file %s", path)
	}
	l.SetOutput(io.MultiWriter(os.Stderr, f))
	return l, f.Close, nil
}

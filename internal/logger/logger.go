package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how the base logger is built. Zero values mean info level, text format and
// stderr output.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

type Logger struct {
	*logrus.Entry
}

var _ logrus.FieldLogger = (*Logger)(nil)

func New(opts Options) (*Logger, error) {
	base := logrus.New()

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	case FormatJSON:
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	base.SetLevel(level)

	// stdout carries the histogram
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	base.SetOutput(opts.Output)

	return &Logger{Entry: logrus.NewEntry(base)}, nil
}

func parseLevel(raw string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unsupported log level %q", raw)
	}
}

// WithRun tags every entry of one invocation with a fresh run id.
func (l *Logger) WithRun() *Logger {
	return &Logger{Entry: l.WithField("run_id", uuid.NewString())}
}

// WithError standardizes error logging
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Level  string
	Format string
	// Output defaults to stderr so command results on stdout stay clean.
	Output io.Writer
}

func New(cfg Config) (*logrus.Logger, error) {
	level := logrus.WarnLevel
	if raw := strings.TrimSpace(cfg.Level); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
		level = parsed
	}

	log := logrus.New()
	log.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatText:
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	case FormatJSON:
		log.SetFormatter(newJSONFormatter())
	default:
		return nil, fmt.Errorf("unsupported log format %q (supported: text, json)", cfg.Format)
	}

	if cfg.Output != nil {
		log.SetOutput(cfg.Output)
	} else {
		log.SetOutput(os.Stderr)
	}
	return log, nil
}

func newJSONFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "@timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	}
}

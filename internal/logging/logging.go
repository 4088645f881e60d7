package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ParseLevel accepts debug, info, warn and error in any case
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger writing to w at the given level
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "goview",
		Level:           lvl,
	})
	return l, nil
}

// Setup installs a stderr logger as the package default and returns it
func Setup(level string) (*log.Logger, error) {
	l, err := New(os.Stderr, level)
	if err != nil {
		return nil, err
	}
	log.SetDefault(l)
	return l, nil
}

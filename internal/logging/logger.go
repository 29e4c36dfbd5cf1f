// Package logging hands out logrus entries tagged with a component name.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	root     = logrus.New()
	loggers  = make(map[string]*logrus.Entry)
	loggerMu sync.Mutex
)

func init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure sets the level and format shared by every component logger.
// An unknown level falls back to info. Format is "text", "json", or empty
// for json when stderr is not a terminal.
func Configure(level, format string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	root.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		root.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			root.SetFormatter(&logrus.JSONFormatter{})
		}
	}
}

// SetOutput redirects every component logger.
func SetOutput(w io.Writer) {
	root.SetOutput(w)
}

// NewLogger returns the logger for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := root.WithField("component", component)
	loggers[component] = l
	return l
}

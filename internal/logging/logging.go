// Package logging routes the app log to a file. The terminal belongs
// to the TUI, so nothing may write to stdout or stderr while the
// program runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Setup points the default logger at path and returns a closer for the
// log file. An empty path silences logging entirely.
func Setup(path, level string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	if lv, parseErr := log.ParseLevel(level); parseErr == nil {
		log.SetLevel(lv)
	}
	return f.Close, nil
}

// Package logger sets up the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file name inside the logs directory.
const FileName = "weekendly.log"

var logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})

// Config holds logger configuration.
type Config struct {
	Debug bool
	Dir   string // logs are written to Dir/logs
}

// Init points the global logger at a rotating file. With Debug set the
// level drops to debug and output is mirrored to stderr.
func Init(cfg Config) (*log.Logger, error) {
	path := Path(cfg.Dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	var w io.Writer = fileWriter
	if cfg.Debug {
		level = log.DebugLevel
		w = io.MultiWriter(os.Stderr, fileWriter)
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "weekendly",
	})
	return logger, nil
}

// Get returns the global logger. Before Init it discards everything.
func Get() *log.Logger {
	return logger
}

// Path returns the log file path for a data directory.
func Path(dir string) string {
	return filepath.Join(dir, "logs", FileName)
}

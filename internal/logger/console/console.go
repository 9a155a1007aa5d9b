// SPDX-License-Identifier: MIT

// Package console is a logger backend writing human-readable lines with
// charmbracelet/log.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ConsoleLogger implements logger.LoggerInstance on charmbracelet/log.
type ConsoleLogger struct {
	logger *log.Logger
}

// ConsoleLoggerParams contains configuration for creating a ConsoleLogger.
type ConsoleLoggerParams struct {
	Debug bool

	// Writer defaults to os.Stderr so that stdout stays free for reports.
	Writer io.Writer

	// Prefix is printed before every message when non-empty.
	Prefix string
}

// NewConsoleLogger creates a console logger with timestamps.
func NewConsoleLogger(params ConsoleLoggerParams) *ConsoleLogger {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}
	w := params.Writer
	if w == nil {
		w = os.Stderr
	}

	return &ConsoleLogger{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           level,
			Prefix:          params.Prefix,
		}),
	}
}

// Log writes a message at the default level.
func (c *ConsoleLogger) Log(message string, keyvals ...any) { c.logger.Print(message, keyvals...) }

// Info writes a message at INFO level.
func (c *ConsoleLogger) Info(message string, keyvals ...any) { c.logger.Info(message, keyvals...) }

// Warn writes a message at WARN level.
func (c *ConsoleLogger) Warn(message string, keyvals ...any) { c.logger.Warn(message, keyvals...) }

// Error writes a message at ERROR level.
func (c *ConsoleLogger) Error(message string, keyvals ...any) { c.logger.Error(message, keyvals...) }

// Debug writes a message at DEBUG level.
func (c *ConsoleLogger) Debug(message string, keyvals ...any) { c.logger.Debug(message, keyvals...) }

// Fatal writes a message at FATAL level and terminates the program.
func (c *ConsoleLogger) Fatal(message string, keyvals ...any) { c.logger.Fatal(message, keyvals...) }

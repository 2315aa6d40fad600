// Package output provides console and file logging for repoctl.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// consoleHandler is a slog handler that writes bare messages without
// timestamps or level prefixes. Warnings and errors are tinted when the
// output is a terminal.
type consoleHandler struct {
	writer  io.Writer
	verbose bool
	colored bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.verbose
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	if h.colored {
		switch record.Level {
		case slog.LevelWarn:
			msg = warnStyle.Render(msg)
		case slog.LevelError:
			msg = errorStyle.Render(msg)
		}
	}
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser
}

// NewSplog creates a console-only splog instance.
// Debug messages are shown when verbose is true or DEBUG is set.
func NewSplog(verbose bool) *Splog {
	splog, _ := NewSplogWithFile(verbose, "")
	return splog
}

// NewSplogWithFile creates a splog instance that also appends to a
// rotating log file when logFilePath is non-empty.
func NewSplogWithFile(verbose bool, logFilePath string) (*Splog, error) {
	if os.Getenv("DEBUG") != "" {
		verbose = true
	}

	splog := &Splog{}

	console := &consoleHandler{
		writer:  os.Stdout,
		verbose: verbose,
		colored: isatty.IsTerminal(os.Stdout.Fd()),
	}

	handlers := []slog.Handler{console}

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		rotating := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    1, // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		}
		splog.logWriter = rotating

		fileHandler := slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// Close releases the file log writer, if any.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}

// Debug writes a debug message, shown only in verbose mode.
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

// Info writes an info message.
func (s *Splog) Info(format string, args ...interface{}) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

// Warn writes a warning message.
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logger.Warn(fmt.Sprintf(format, args...))
}

// Error writes an error message.
func (s *Splog) Error(format string, args ...interface{}) {
	s.logger.Error(fmt.Sprintf(format, args...))
}

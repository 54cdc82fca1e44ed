// SPDX-License-Identifier: MIT

// Package logging builds the structured logger shared by the axisep CLI and
// batch driver.
//
// Loggers are plain *slog.Logger values. Format "auto" writes
// human-readable text when the destination is a terminal and JSON
// otherwise, so piping a batch run into a file or collector yields
// machine-readable records without extra flags.
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "auto"})
//	logger.Info("instance solved", "instance", 3, "lines", 4)
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Supported formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel and ErrUnknownFormat report unsupported Config values.
var (
	ErrUnknownLevel  = errors.New("logging: unknown level")
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Config selects level, format and destination. Zero values mean info
// level, auto format and stderr.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to slog levels.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	switch resolveFormat(cfg.Format, w) {
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, ErrUnknownFormat)
	}
}

// resolveFormat turns "auto" (or "") into text or json depending on w.
func resolveFormat(format string, w io.Writer) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatText
	}

	return FormatJSON
}

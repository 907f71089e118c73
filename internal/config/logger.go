package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogOutput is the writer behind the logger built by NewLogger.
type LogOutput struct {
	mu   sync.Mutex
	w    io.Writer
	file *os.File
}

func (o *LogOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// DetachTerminal stops terminal logging so lines do not draw over a
// full-screen UI. A configured log file keeps receiving output.
func (o *LogOutput) DetachTerminal() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.file == nil {
		o.w = io.Discard
	}
}

// Close releases the log file, if any.
func (o *LogOutput) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}

// NewLogger builds the slog logger described by cfg. Output goes to LogFile
// when set, otherwise to stderr.
func NewLogger(cfg Config) (*slog.Logger, *LogOutput, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, stderr io.Writer) (*slog.Logger, *LogOutput, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}

	out := &LogOutput{w: stderr}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out.w, out.file = f, f
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, out, nil
}

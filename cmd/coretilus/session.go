package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/coretilus/internal/config"
	"github.com/vovakirdan/coretilus/internal/core"
)

// session holds what every run of a command shares: the resolved config
// and the log sink.
type session struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
}

// newSession loads the config, applies the global flags and opens the log.
func newSession() (*session, error) {
	if flagBackend != backendRaw && flagBackend != backendTea {
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendRaw, backendTea)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return nil, err
	}
	if flagTick > 0 {
		cfg.Engine.TickMs = flagTick
	}
	config.ApplySpeedPreset(&cfg, preset)
	if flagTTL > 0 {
		cfg.Engine.TTL = flagTTL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := openLog(logPath(), flagDebug)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "tick_ms", cfg.Engine.TickMs, "ttl", cfg.Engine.TTL, "speed", preset, "backend", flagBackend)

	return &session{cfg: cfg, logger: logger, logFile: closer}, nil
}

// Close flushes and closes the log file.
func (s *session) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}

// logPath returns the log file, or "" to discard. Logs never go to stdout.
func logPath() string {
	if flagLog != "" {
		return flagLog
	}
	if flagDebug && config.Dir() != "" {
		return filepath.Join(config.Dir(), "coretilus.log")
	}
	return ""
}

func openLog(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "coretilus",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// terminalSize returns the size of stdout, or fallback when it is not a
// terminal.
func terminalSize(fallback core.Size) core.Size {
	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return core.NewSize(w, h)
	}
	return fallback
}

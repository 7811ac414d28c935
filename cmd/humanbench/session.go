package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/platform/tui"
	"github.com/vovakirdan/tui-humanbench/internal/session"
)

// errNotTerminal is returned when stdin cannot drive the interactive UI.
var errNotTerminal = errors.New("stdin is not a terminal")

// runSession runs the interactive program. A non-empty startID opens that
// game before the menu is shown.
func runSession(startID string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	ctrl := session.New(session.Options{
		Runtime:  cfg,
		Settings: settings,
		Logger:   logger,
	})
	if startID != "" {
		if err := ctrl.Start(startID, time.Now()); err != nil {
			return err
		}
	}

	logger.Info("session started", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(ctrl, cfg, tui.WithLogger(logger)); err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	logger.Info("session ended")
	return nil
}

// newLogger builds the program logger. The TUI owns the terminal, so logs go
// to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			_ = f.Close() //nolint:errcheck // Best-effort close on exit
		}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "humanbench",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadSettings loads the config file and applies the difficulty preset.
func loadSettings(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&settings, preset)

	logger.Info("config loaded", "source", source, "difficulty", preset)
	if source == config.SourceEmbedded {
		logger.Debug("no config file found, using built-in defaults")
	}
	return settings, nil
}

// runtimeConfig checks the terminal and reads its size.
func runtimeConfig() (core.RuntimeConfig, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return core.RuntimeConfig{}, errNotTerminal
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger. TUI commands own the terminal, so
// they log only to --log-file. The returned func closes the file.
func newLogger(tuiOwnsTerminal bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		//nolint:errcheck // OpenFile reports the real problem
		os.MkdirAll(filepath.Dir(flagLogFile), 0o755)
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	case tuiOwnsTerminal:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "arcade",
	})
	return logger, closeFn
}

// loadGameConfig loads the 2048 config, applies --difficulty and makes it
// the default for new games.
func loadGameConfig() config.T2048Config {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyT2048Preset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	t2048.SetConfig(cfg)
	return cfg
}

// openStore opens the score database. Failure is only a warning: the game
// still works without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the score database for commands that only read it.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	return store
}

// localServices wires the local player's repositories.
func localServices(store *storage.Store, cfg config.T2048Config, logger *log.Logger) tui.Services {
	return tui.NewServices(store, "", cfg, logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg.Normalized()
}

// localUsername suggests a username from the environment.
func localUsername() string {
	return os.Getenv("USER")
}

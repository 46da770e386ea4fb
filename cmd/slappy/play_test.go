package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/slappy-bird/internal/config"
)

func TestOpenGameLogDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := openGameLog("")
	if err != nil {
		t.Fatalf("openGameLog() failed: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestOpenGameLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slappy.log")
	logger, closeLog, err := openGameLog(path)
	if err != nil {
		t.Fatalf("openGameLog() failed: %v", err)
	}
	logger.Info("session started", "game", "slappy")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q, expected the message", data)
	}
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	flagConfig, flagDifficulty = "", "insane"
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	if _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig, flagDifficulty = path, "hard"
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Difficulty.Interval != 3 {
		t.Errorf("Interval = %d, expected 3", cfg.Difficulty.Interval)
	}
}

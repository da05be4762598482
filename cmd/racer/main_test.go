package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlags(t *testing.T) {
	defer func(cfg, diff string) { flagConfig, flagDifficulty = cfg, diff }(flagConfig, flagDifficulty)

	flagConfig = ""
	flagDifficulty = "bogus"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	path := filepath.Join(t.TempDir(), "racer.yaml")
	if err := os.WriteFile(path, []byte("progression:\n  max_level: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = "hard"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Progression.MaxLevel != 3 {
		t.Errorf("max level = %d, want 3", cfg.Progression.MaxLevel)
	}
	if cfg.Spawner.BaseIntervalMS != 1400 {
		t.Errorf("base interval = %d, want hard preset 1400", cfg.Spawner.BaseIntervalMS)
	}
}

func TestNewLoggerFile(t *testing.T) {
	defer func(file, level string) { flagLogFile, flagLogLevel = file, level }(flagLogFile, flagLogLevel)

	flagLogFile = filepath.Join(t.TempDir(), "racer.log")
	flagLogLevel = "info"

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello")
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}

	flagLogLevel = "nope"
	if _, _, err := newLogger(os.Stderr); err == nil {
		t.Error("expected error for bad log level")
	}
}

package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_Stdout(t *testing.T) {
	if err := Setup(Config{Level: "debug", Format: "json", Output: "stdout"}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if Get() == nil {
		t.Fatal("Get() returned nil")
	}
}

func TestSetup_InvalidLevelFallsBack(t *testing.T) {
	if err := Setup(Config{Level: "chatty", Output: "stdout"}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
}

func TestSetup_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edge.log")
	if err := Setup(Config{Level: "info", Format: "json", Output: "file", File: path}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	Info("hello from the edge")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}

func TestSetup_FileOutputBadPath(t *testing.T) {
	err := Setup(Config{Output: "file", File: "/nonexistent-dir/edge.log"})
	if err == nil {
		t.Error("expected error for unwritable log file")
	}
}

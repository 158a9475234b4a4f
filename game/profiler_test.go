package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilerDisabledWithoutDir(t *testing.T) {
	p, err := NewProfiler("")
	if err != nil || p != nil {
		t.Fatalf("NewProfiler(\"\") = (%v, %v), want (nil, nil)", p, err)
	}
	if err := p.CaptureProfile("test"); err != nil {
		t.Errorf("Expected nil profiler capture to be a no-op, got %v", err)
	}
	if p.IsProfiling() {
		t.Error("Expected nil profiler to report idle")
	}
}

func TestProfilerCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures", "nested")
	p, err := NewProfiler(dir)
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	if p == nil || p.IsProfiling() {
		t.Fatal("Expected an idle profiler")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Expected %s to exist, got %v", dir, err)
	}
}

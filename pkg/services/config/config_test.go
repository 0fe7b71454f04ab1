package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NoFile_UsesDefaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout=10s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxContentBytes != 50<<20 {
		t.Errorf("expected MaxContentBytes=%d, got %d", int64(50<<20), cfg.MaxContentBytes)
	}
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `addr: ":9090"
shutdown_timeout: "5s"
max_content_bytes: 1048576`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected Addr=:9090, got %s", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected ShutdownTimeout=5s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxContentBytes != 1048576 {
		t.Errorf("expected MaxContentBytes=1048576, got %d", cfg.MaxContentBytes)
	}
}

func TestLoad_PartialYAML_KeepsRemainingDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	err := os.WriteFile(path, []byte(`addr: ":3000"`), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("expected Addr=:3000, got %s", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default ShutdownTimeout=10s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	// When
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	// Then
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("addr: :8080: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = Load(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

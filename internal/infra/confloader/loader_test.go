package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Bench struct {
		Entries     int     `koanf:"entries"`
		UpdateRatio float64 `koanf:"update_ratio"`
		Verify      bool    `koanf:"verify"`
	} `koanf:"bench"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
bench:
  entries: 50000
  verify: true
log:
  level: "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	l := NewLoader()
	if err := l.LoadFile(configPath); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if n := l.GetInt("bench.entries"); n != 50000 {
		t.Errorf("bench.entries = %d, want 50000", n)
	}
	if !l.GetBool("bench.verify") {
		t.Error("bench.verify should be true")
	}
	if lvl := l.GetString("log.level"); lvl != "debug" {
		t.Errorf("log.level = %q, want %q", lvl, "debug")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("OMAP_BENCH_ENTRIES", "12345")
	t.Setenv("OMAP_LOG_LEVEL", "warn")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if n := l.GetInt("bench.entries"); n != 12345 {
		t.Errorf("bench.entries = %d, want 12345", n)
	}
	if lvl := l.GetString("log.level"); lvl != "warn" {
		t.Errorf("log.level = %q, want %q", lvl, "warn")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_BENCH_SEED", "42")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if seed := l.GetString("bench.seed"); seed != "42" {
		t.Errorf("bench.seed = %q, want %q", seed, "42")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	data := map[string]any{
		"bench.entries": 777,
		"debug":         true,
	}

	if err := l.LoadMap(data); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if n := l.GetInt("bench.entries"); n != 777 {
		t.Errorf("bench.entries = %d, want 777", n)
	}
	if !l.GetBool("debug") {
		t.Error("debug should be true")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	// Env must override the file value.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
bench:
  entries: 1000
  update_ratio: 0.5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("OMAP_BENCH_ENTRIES", "2000")

	l := NewLoader(WithConfigFile(configPath))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bench.Entries != 2000 {
		t.Errorf("Bench.Entries = %d, want 2000 (env override)", cfg.Bench.Entries)
	}
	if cfg.Bench.UpdateRatio != 0.5 {
		t.Errorf("Bench.UpdateRatio = %v, want 0.5 (file value)", cfg.Bench.UpdateRatio)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() = false after successful Load")
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	p := mapProvider{}
	if _, err := p.ReadBytes(); err == nil {
		t.Error("ReadBytes() should return error")
	}
}

package command

import (
	"io"
	"os"
	"testing"
)

func TestApp(t *testing.T) {
	app := App()
	if app == nil {
		t.Fatal("App() returned nil")
	}

	if app.Name != "omap" {
		t.Errorf("Name = %q, want %q", app.Name, "omap")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"bench", "demo"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	app := App()

	flagNames := make(map[string]bool)
	for _, flag := range app.Flags {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{"config", "log-level", "log-format"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns what was written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	data, _ := io.ReadAll(r)
	r.Close()
	return string(data), runErr
}

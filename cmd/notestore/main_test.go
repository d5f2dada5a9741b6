package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/notestore/pkg/config"
)

// run executes the CLI in-process against a config rooted at dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("from stdin"))
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "storage:\n" +
		"  capability_store: badger\n" +
		"  capability_dir: \"" + filepath.ToSlash(filepath.Join(dir, "caps")) + "\"\n" +
		"  sandbox_dir: \"" + filepath.ToSlash(filepath.Join(dir, "origin")) + "\"\n" +
		"  auto_grant: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCLI_SandboxRoundTrip(t *testing.T) {
	dir := writeConfig(t)

	if _, err := run(t, dir, "--backend", "sandbox", "write", "notes/a.md", "hello"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := run(t, dir, "--backend", "sandbox", "write", "templates/daily.md"); err != nil {
		t.Fatalf("write from stdin failed: %v", err)
	}

	out, err := run(t, dir, "--backend", "sandbox", "read", "notes/a.md")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected 'hello', got %q", out)
	}

	out, err = run(t, dir, "--backend", "sandbox", "templates", "--json")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	if !strings.Contains(out, `"daily": "from stdin"`) {
		t.Errorf("unexpected templates output: %s", out)
	}

	if _, err := os.Stat(filepath.Join(dir, "origin", "notes", "a.md")); err != nil {
		t.Errorf("expected note in sandbox dir: %v", err)
	}
}

func TestCLI_PickThenAuto(t *testing.T) {
	dir := writeConfig(t)
	notesDir := t.TempDir()

	out, err := run(t, dir, "pick", notesDir)
	if err != nil {
		t.Fatalf("pick failed: %v", err)
	}
	if !strings.Contains(out, filepath.Base(notesDir)) {
		t.Errorf("unexpected pick output: %s", out)
	}

	if _, err := run(t, dir, "--backend", "auto", "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(notesDir, "templates")); err != nil || !info.IsDir() {
		t.Errorf("expected templates/ in picked directory")
	}

	out, err = run(t, dir, "--backend", "auto", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "notes/\ntemplates/\n" {
		t.Errorf("unexpected list output: %q", out)
	}

	if _, err := run(t, dir, "disconnect"); err != nil {
		t.Fatalf("disconnect failed: %v", err)
	}
	if _, err := run(t, dir, "--backend", "local", "list"); err == nil {
		t.Error("expected local backend to fail after disconnect")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LoggingConfig{Level: "WARN", Format: "json", Output: "stderr"}, false)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	if logger.Enabled(context.Background(), -4) {
		t.Error("debug should be disabled at WARN")
	}

	logger, err = newLogger(config.LoggingConfig{Level: "WARN", Format: "text", Output: "stderr"}, true)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	if !logger.Enabled(context.Background(), -4) {
		t.Error("verbose should enable debug")
	}

	if _, err := newLogger(config.LoggingConfig{Level: "LOUD"}, false); err == nil {
		t.Error("expected error for bad level")
	}
}

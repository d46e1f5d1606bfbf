package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestRunCheckSuccess(t *testing.T) {
	cfg := `terminal: foot
apps:
  fish:
    command: fish
    terminal: true
    identifier:
      title: fish-term
  obsidian:
    command: obsidian
    identifier:
      app_id: obsidian
`
	path := writeTempConfig(t, cfg)
	var stdout bytes.Buffer
	if err := runCheck(path, &stdout); err != nil {
		t.Fatalf("runCheck returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Configuration OK (2 apps)") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunCheckFailure(t *testing.T) {
	cfg := `apps:
  broken:
    identifier:
      title: x
      app_id: y
`
	path := writeTempConfig(t, cfg)
	var stdout bytes.Buffer
	err := runCheck(path, &stdout)
	if err == nil {
		t.Fatalf("expected error from runCheck")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", stdout.String())
	}
}

func TestRunRequiresAppName(t *testing.T) {
	cfg := `apps:
  obsidian:
    command: obsidian
    identifier:
      app_id: obsidian
`
	path := writeTempConfig(t, cfg)
	err := run([]string{"-config", path})
	if err == nil || !strings.Contains(err.Error(), "exactly one application name") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	cfg := `apps:
  obsidian:
    command: obsidian
    identifier:
      app_id: obsidian
`
	path := writeTempConfig(t, cfg)
	err := run([]string{"-config", path, "-ipc", "telepathy", "obsidian"})
	if err == nil || !strings.Contains(err.Error(), "unsupported ipc strategy") {
		t.Fatalf("expected strategy error, got %v", err)
	}
}

func TestRunUnknownApp(t *testing.T) {
	cfg := `apps:
  obsidian:
    command: obsidian
    identifier:
      app_id: obsidian
`
	path := writeTempConfig(t, cfg)
	// Config lookup fails before any sway query is issued, so this is safe
	// to run without a window manager.
	err := run([]string{"-config", path, "-ipc", "swaymsg", "slack"})
	if err == nil || !strings.Contains(err.Error(), `unknown application "slack"`) {
		t.Fatalf("expected unknown application error, got %v", err)
	}
}

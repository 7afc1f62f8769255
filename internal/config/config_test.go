package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Player.DefaultName != "No Name" {
		t.Errorf("expected default name 'No Name', got %q", cfg.Player.DefaultName)
	}

	if !cfg.Sound.Enabled {
		t.Error("expected sound.enabled to be true")
	}

	if cfg.Sound.Delay != 200*time.Millisecond {
		t.Errorf("expected sound delay 200ms, got %v", cfg.Sound.Delay)
	}

	if cfg.Sound.Command == "" {
		t.Error("expected a default voice command")
	}

	if !cfg.Display.Wrap {
		t.Error("expected display.wrap to be true")
	}

	if cfg.Display.Colors["lost"] != "red" {
		t.Errorf("expected lost color red, got %q", cfg.Display.Colors["lost"])
	}
}

func TestLoadFromPath(t *testing.T) {
	chdir(t, t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
player:
  default_name: Stranger
sound:
  enabled: false
  command: espeak
  args: ["-s", "150"]
  delay: 50ms
  denylist: ["darn"]
display:
  wrap: false
  colors:
    lost: magenta
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Player.DefaultName != "Stranger" {
		t.Errorf("expected default name 'Stranger', got %q", cfg.Player.DefaultName)
	}
	if cfg.Sound.Enabled {
		t.Error("expected sound.enabled to be false")
	}
	if cfg.Sound.Command != "espeak" {
		t.Errorf("expected command 'espeak', got %q", cfg.Sound.Command)
	}
	if !reflect.DeepEqual(cfg.Sound.Args, []string{"-s", "150"}) {
		t.Errorf("unexpected args %v", cfg.Sound.Args)
	}
	if cfg.Sound.Delay != 50*time.Millisecond {
		t.Errorf("expected delay 50ms, got %v", cfg.Sound.Delay)
	}
	if cfg.Display.Wrap {
		t.Error("expected display.wrap to be false")
	}
	if cfg.Display.Colors["lost"] != "magenta" {
		t.Errorf("expected lost color magenta, got %q", cfg.Display.Colors["lost"])
	}
	if cfg.Display.Colors["correct"] != "green" {
		t.Errorf("expected default correct color to survive, got %q", cfg.Display.Colors["correct"])
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HANGMAN_SOUND_ENABLED", "false")
	t.Setenv("HANGMAN_PLAYER_DEFAULT_NAME", "Env Player")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("sound:\n  enabled: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Sound.Enabled {
		t.Error("expected env to disable sound")
	}
	if cfg.Player.DefaultName != "Env Player" {
		t.Errorf("expected name from env, got %q", cfg.Player.DefaultName)
	}
}

func TestLoadFromPath_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// Registered so the variable godotenv sets is cleaned up afterwards.
	t.Setenv("HANGMAN_LOG_LEVEL", "")
	os.Unsetenv("HANGMAN_LOG_LEVEL")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HANGMAN_LOG_LEVEL=warn\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level from .env, got %q", cfg.Log.Level)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_ProjectOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, ProjectConfigName), []byte("player:\n  default_name: Project\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	chdir(t, nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.DefaultName != "Project" {
		t.Errorf("expected project default name, got %q", cfg.Player.DefaultName)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := Default()
	cfg.Player.DefaultName = "Saved"
	cfg.Sound.Delay = time.Second
	cfg.Display.Colors["lost"] = "magenta"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Player.DefaultName != "Saved" {
		t.Errorf("default name = %q, want Saved", loaded.Player.DefaultName)
	}
	if loaded.Sound.Delay != time.Second {
		t.Errorf("delay = %v, want 1s", loaded.Sound.Delay)
	}
	if loaded.Display.Colors["lost"] != "magenta" {
		t.Errorf("lost color = %q, want magenta", loaded.Display.Colors["lost"])
	}
}

func TestGetUserConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "hangman", "config.yaml")
	if got := GetUserConfigPath(); got != want {
		t.Errorf("GetUserConfigPath() = %q, want %q", got, want)
	}
}

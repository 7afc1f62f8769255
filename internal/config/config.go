// Package config handles configuration loading and management for hangman.
// It supports XDG config paths, project-level overrides, a .env file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HANGMAN_SOUND_ENABLED.
const EnvPrefix = "HANGMAN"

// ProjectConfigName is the per-directory override file.
const ProjectConfigName = ".hangman.yaml"

// Config holds all configuration for hangman.
type Config struct {
	Player  PlayerConfig  `mapstructure:"player"`
	Sound   SoundConfig   `mapstructure:"sound"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// PlayerConfig holds player defaults.
type PlayerConfig struct {
	DefaultName string `mapstructure:"default_name"`
}

// SoundConfig holds narration settings.
type SoundConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	// Delay is the pause used in place of speech when sound is off.
	Delay        time.Duration `mapstructure:"delay"`
	Denylist     []string      `mapstructure:"denylist"`
	DenylistFile string        `mapstructure:"denylist_file"`
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	Wrap  bool `mapstructure:"wrap"`
	Color bool `mapstructure:"color"`
	// Colors maps a render role (revealed, unrevealed, ...) to a color name.
	Colors map[string]string `mapstructure:"colors"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from XDG paths, project overrides, .env and
// environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (HANGMAN_*), including those set by .env
// 2. Project config (.hangman.yaml in current directory or parent)
// 3. User config (~/.config/hangman/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	return decode(v)
}

// LoadFromPath loads configuration from a specific file, still honoring
// environment overrides.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return decode(v)
}

// decode applies .env and environment overrides and unmarshals.
func decode(v *viper.Viper) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Sound.DenylistFile = expandPath(cfg.Sound.DenylistFile)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

// loadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return SaveTo(cfg, filepath.Join(userConfigDir, "config.yaml"))
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("player.default_name", cfg.Player.DefaultName)
	v.Set("sound.enabled", cfg.Sound.Enabled)
	v.Set("sound.command", cfg.Sound.Command)
	v.Set("sound.args", cfg.Sound.Args)
	v.Set("sound.delay", cfg.Sound.Delay.String())
	v.Set("sound.denylist", cfg.Sound.Denylist)
	v.Set("sound.denylist_file", cfg.Sound.DenylistFile)
	v.Set("display.wrap", cfg.Display.Wrap)
	v.Set("display.color", cfg.Display.Color)
	v.Set("display.colors", cfg.Display.Colors)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// DefaultColors maps each render role to its color.
func DefaultColors() map[string]string {
	return map[string]string{
		"plain":      "default",
		"revealed":   "white",
		"unrevealed": "yellow",
		"highlight":  "yellow",
		"neutral":    "white",
		"correct":    "green",
		"incorrect":  "red",
		"picture":    "yellow",
		"lost":       "red",
	}
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("player.default_name", "No Name")

	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.command", defaultVoiceCommand())
	v.SetDefault("sound.args", []string{})
	v.SetDefault("sound.delay", "200ms")
	v.SetDefault("sound.denylist", []string{})
	v.SetDefault("sound.denylist_file", filepath.Join(getUserConfigDir(), "denylist.yaml"))

	v.SetDefault("display.wrap", true)
	v.SetDefault("display.color", true)
	v.SetDefault("display.colors", DefaultColors())

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			DefaultName: "No Name",
		},
		Sound: SoundConfig{
			Enabled:      true,
			Command:      defaultVoiceCommand(),
			Args:         []string{},
			Delay:        200 * time.Millisecond,
			Denylist:     []string{},
			DenylistFile: filepath.Join(getUserConfigDir(), "denylist.yaml"),
		},
		Display: DisplayConfig{
			Wrap:   true,
			Color:  true,
			Colors: DefaultColors(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultVoiceCommand picks the speech command for this platform.
func defaultVoiceCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}

// getUserConfigDir returns the XDG config directory for hangman.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hangman")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "hangman")
	}
	return filepath.Join(home, ".config", "hangman")
}

// findProjectConfig searches for .hangman.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ProjectConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandPath expands ${VAR} references and a leading ~/.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

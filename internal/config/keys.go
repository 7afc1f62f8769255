package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// colorsPrefix addresses one entry of display.colors, e.g. display.colors.lost.
const colorsPrefix = "display.colors."

// scalarKeys lists every settable key that is not a color entry.
var scalarKeys = []string{
	"player.default_name",
	"sound.enabled",
	"sound.command",
	"sound.args",
	"sound.delay",
	"sound.denylist",
	"sound.denylist_file",
	"display.wrap",
	"display.color",
	"log.file",
	"log.level",
}

// Keys returns every dot-notation key, color entries included, in display order.
func Keys(cfg *Config) []string {
	keys := append([]string{}, scalarKeys...)

	roles := make([]string, 0, len(cfg.Display.Colors))
	for role := range cfg.Display.Colors {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		keys = append(keys, colorsPrefix+role)
	}
	return keys
}

// Value retrieves a configuration value by dot-notation key.
func Value(cfg *Config, key string) (string, error) {
	key = strings.ToLower(key)
	if role, ok := strings.CutPrefix(key, colorsPrefix); ok {
		c, ok := cfg.Display.Colors[role]
		if !ok {
			return "", fmt.Errorf("unknown configuration key: %s", key)
		}
		return c, nil
	}

	switch key {
	case "player.default_name":
		return cfg.Player.DefaultName, nil
	case "sound.enabled":
		return strconv.FormatBool(cfg.Sound.Enabled), nil
	case "sound.command":
		return cfg.Sound.Command, nil
	case "sound.args":
		return strings.Join(cfg.Sound.Args, ","), nil
	case "sound.delay":
		return cfg.Sound.Delay.String(), nil
	case "sound.denylist":
		return strings.Join(cfg.Sound.Denylist, ","), nil
	case "sound.denylist_file":
		return cfg.Sound.DenylistFile, nil
	case "display.wrap":
		return strconv.FormatBool(cfg.Display.Wrap), nil
	case "display.color":
		return strconv.FormatBool(cfg.Display.Color), nil
	case "log.file":
		return cfg.Log.File, nil
	case "log.level":
		return cfg.Log.Level, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// SetValue sets a configuration value by dot-notation key.
func SetValue(cfg *Config, key, value string) error {
	key = strings.ToLower(key)
	if role, ok := strings.CutPrefix(key, colorsPrefix); ok {
		if _, ok := DefaultColors()[role]; !ok {
			return fmt.Errorf("unknown configuration key: %s", key)
		}
		if cfg.Display.Colors == nil {
			cfg.Display.Colors = DefaultColors()
		}
		cfg.Display.Colors[role] = value
		return nil
	}

	switch key {
	case "player.default_name":
		cfg.Player.DefaultName = value
	case "sound.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for sound.enabled: %w", err)
		}
		cfg.Sound.Enabled = b
	case "sound.command":
		cfg.Sound.Command = value
	case "sound.args":
		cfg.Sound.Args = splitList(value)
	case "sound.delay":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for sound.delay: %w", err)
		}
		cfg.Sound.Delay = d
	case "sound.denylist":
		cfg.Sound.Denylist = splitList(value)
	case "sound.denylist_file":
		cfg.Sound.DenylistFile = value
	case "display.wrap":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for display.wrap: %w", err)
		}
		cfg.Display.Wrap = b
	case "display.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for display.color: %w", err)
		}
		cfg.Display.Color = b
	case "log.file":
		cfg.Log.File = value
	case "log.level":
		cfg.Log.Level = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

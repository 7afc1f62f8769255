package main

import (
	"fmt"

	"github.com/ShayCichocki/hangman/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify hangman configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/hangman/config.yaml
Project-specific overrides can be placed in .hangman.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reload so --nosound and --no-color are not written back.
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		switch len(args) {
		case 0:
			return displayAllConfig(cmd, cfg)
		case 1:
			value, err := config.Value(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		default:
			return setConfigKey(cmd, cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cmd *cobra.Command, cfg *config.Config) error {
	for _, key := range config.Keys(cfg) {
		value, err := config.Value(cfg, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, value)
	}
	return nil
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cmd *cobra.Command, cfg *config.Config, key, value string) error {
	if err := config.SetValue(cfg, key, value); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		err = config.SaveTo(cfg, configPath)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the CLI configuration",
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after applying TH_* environment variables and defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server_url:  %s\n", cfg.ServerURL)
			fmt.Fprintf(out, "listen_addr: %s\n", cfg.ListenAddr)
			fmt.Fprintf(out, "log_level:   %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "dev:         %t\n", cfg.Dev)
			fmt.Fprintf(out, "roster_file: %s\n", cfg.RosterFile)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a value to the config file",
		Long:  "Save a value to ~/.config/th/config.yaml. Keys: server_url, listen_addr, log_level, dev, roster_file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", args[0])
			return nil
		},
	}
}

// setConfigValue assigns value to the field named key.
func setConfigValue(cfg *CLIConfig, key, value string) error {
	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "listen_addr":
		cfg.ListenAddr = value
	case "log_level":
		cfg.LogLevel = value
	case "dev":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("dev must be true or false: %q", value)
		}
		cfg.Dev = b
	case "roster_file":
		cfg.RosterFile = value
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

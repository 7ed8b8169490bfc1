// Package cli defines the cobra command tree for treehouse.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/logging"
)

var (
	flagFormat   string
	flagLogLevel string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "th",
		Short:         "Tree house visitor list and small exercises",
		Long:          "Check visitors in at the tree house door, add numbers on the command line or over HTTP, and run the algorithm katas.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if flagLogLevel != "" {
				level = flagLogLevel
			}
			logging.Setup(cmd.ErrOrStderr(), level, cfg.Dev)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug|info|warn|error)")

	root.AddCommand(
		newGreetCmd(),
		newSumCmd(),
		newAddCmd(),
		newServeCmd(),
		newKataCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

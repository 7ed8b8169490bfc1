package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/console"
	"github.com/evcraddock/treehouse/internal/visitor"
)

func newGreetCmd() *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Check visitors in at the tree house door",
		Long: `Prompt for visitor names and greet each one according to the visitor list.

Unknown visitors are added to the list on probation. Leave the name empty
and press ENTER to quit; the final list is printed on the way out.

The list starts from a built-in roster unless --roster (or roster_file in
the config) points at a YAML file such as:

  visitors:
    - name: simon
      action: accept
      age: 31
    - name: dexter
      action: accept_with_note
      note: Lactose-free milk is in the fridge
      age: 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(cmd, rosterPath)
		},
	}

	cmd.Flags().StringVar(&rosterPath, "roster", "", "YAML roster to start from (default: built-in list)")

	return cmd
}

func runGreet(cmd *cobra.Command, rosterPath string) error {
	roster, err := loadSessionRoster(rosterPath)
	if err != nil {
		return err
	}

	s := &console.Session{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Roster: roster,
		Logger: slog.Default(),
		JSON:   isJSON(),
	}
	return s.Run()
}

// loadSessionRoster picks the roster from the flag, then the config,
// then the built-in seed.
func loadSessionRoster(path string) (*visitor.Roster, error) {
	if path == "" {
		cfg, err := resolveConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.RosterFile
	}
	if path == "" {
		return visitor.Seed(), nil
	}

	slog.Debug("loading roster", "path", path)
	return visitor.LoadRoster(path)
}

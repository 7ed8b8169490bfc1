package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/client"
	"github.com/evcraddock/treehouse/internal/sum"
)

func newAddCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "add <n> <m>",
		Short: "Add two numbers on a running sum server",
		Long: `Ask a running "th serve" instance to add two positive integers.

The server address comes from --server, TH_SERVER_URL, server_url in the
config file, or the default listen address.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "sum server URL")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string, server string) error {
	numbers, err := sum.ParseArgs(args)
	if err != nil {
		return err
	}

	if server == "" {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		server = cfg.ServerURL
	}

	resp, err := client.New(server).Sum(cmd.Context(), numbers[0], numbers[1])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "The sum of the numbers %d and %d is %d\n", resp.N, resp.M, resp.Sum)
	return nil
}

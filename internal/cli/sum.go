package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/sum"
)

// errSumUsage is returned when sum is run without numbers.
var errSumUsage = errors.New("Usage: sum NUMBER ...")

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum NUMBER ...",
		Short: "Add unsigned integers",
		Long: `Add one or more unsigned decimal integers.

Examples:
  th sum 1 2 3
  th sum 42 --format json`,
		RunE: runSum,
	}
}

func runSum(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errSumUsage
	}

	numbers, err := sum.ParseArgs(args)
	if err != nil {
		return err
	}

	total, err := sum.All(numbers)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), struct {
			Numbers []uint64 `json:"numbers"`
			Sum     uint64   `json:"sum"`
		}{numbers, total})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "The sum of %s is %d\n", sum.FormatList(numbers), total)
	return nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/kata"
)

func newKataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kata",
		Short: "Run the algorithm exercises",
	}

	cmd.AddCommand(
		newPalindromeCmd(),
		newLargestCmd(),
		newFizzBuzzCmd(),
		newChangeCmd(),
		newSquaresCmd(),
		newTournamentCmd(),
		newTwoSumCmd(),
		newSubsequenceCmd(),
	)

	return cmd
}

// printResult writes v as JSON or with %v.
func printResult(cmd *cobra.Command, v interface{}) error {
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

// parseInts parses signed decimal integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer: %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}

func newPalindromeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome <text>...",
		Short: "Check whether text reads the same backwards, ignoring spaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, kata.IsPalindrome(strings.Join(args, " ")))
		},
	}
}

func newLargestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "largest <n>...",
		Short: "Find the largest number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			largest, err := kata.FindLargest(nums)
			if err != nil {
				return err
			}
			return printResult(cmd, largest)
		},
	}
}

func newFizzBuzzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fizzbuzz <n>",
		Short: "Print fizzbuzz for 1 through n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("n must be a positive integer: %q", args[0])
			}
			out := make([]string, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, kata.FizzBuzz(i))
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
			return nil
		},
	}
}

func newChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change [coin]...",
		Short: "Find the smallest amount of change the coins cannot make",
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseInts(args)
			if err != nil {
				return err
			}
			change, err := kata.NonConstructibleChange(coins)
			if err != nil {
				return err
			}
			return printResult(cmd, change)
		},
	}
}

func newSquaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squares <n>...",
		Short: "Square an ascending list, keeping it sorted",
		Long: `Square an ascending list, keeping it sorted.

Put -- before the numbers when any of them is negative:
  th kata squares -- -4 -1 0 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			squares, err := kata.SortedSquares(nums)
			if err != nil {
				return err
			}
			return printResult(cmd, squares)
		},
	}
}

func newTournamentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament <home,away,result>...",
		Short: "Score a round robin and print the winner",
		Long: `Score a round robin tournament. Each argument is one competition written as
home,away,result where result is 1 if the home team won and 0 if the away
team won. A win is worth 3 points.

Example:
  th kata tournament HTML,C#,0 C#,Python,0 Python,HTML,1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			competitions := make([][2]string, 0, len(args))
			results := make([]int, 0, len(args))
			for _, a := range args {
				parts := strings.Split(a, ",")
				if len(parts) != 3 {
					return fmt.Errorf("invalid competition %q (want home,away,result)", a)
				}
				result, err := strconv.Atoi(parts[2])
				if err != nil {
					return fmt.Errorf("invalid result in %q", a)
				}
				competitions = append(competitions, [2]string{parts[0], parts[1]})
				results = append(results, result)
			}
			winner, err := kata.TournamentWinner(competitions, results)
			if err != nil {
				return err
			}
			return printResult(cmd, winner)
		},
	}
}

func newTwoSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "twosum <target> <n>...",
		Short: "Find two numbers that add up to target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			pair := kata.TwoNumberSum(nums[1:], nums[0])
			if pair == nil {
				pair = []int{}
			}
			return printResult(cmd, pair)
		},
	}
}

func newSubsequenceCmd() *cobra.Command {
	var array, sequence []int

	cmd := &cobra.Command{
		Use:   "subsequence --array 1,2,3 --sequence 1,3",
		Short: "Check whether sequence appears in array in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := kata.IsValidSubsequence(array, sequence)
			if err != nil {
				return err
			}
			return printResult(cmd, ok)
		},
	}

	cmd.Flags().IntSliceVar(&array, "array", nil, "the array to search")
	cmd.Flags().IntSliceVar(&sequence, "sequence", nil, "the candidate subsequence")

	return cmd
}

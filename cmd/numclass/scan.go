package main

import (
	"fmt"

	"github.com/Veraticus/number-classifier/internal/cli"
	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/numbers"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// maxScanSize bounds how many numbers one scan may classify.
const maxScanSize = 10_000_000

func scanCmd() *cobra.Command {
	var (
		from, to int64
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Classify every number in a range and summarize",
		Long: `Classify every integer from --from to --to inclusive and report how many
are prime and even, and which are perfect or Armstrong numbers.`,
		Example: `  numclass scan --from 1 --to 10000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to < from {
				return common.NewUserError(fmt.Sprintf("--to (%d) must not be less than --from (%d)", to, from), common.ErrInvalidNumber)
			}
			// Unsigned subtraction cannot overflow for to >= from.
			if span := uint64(to) - uint64(from); span >= maxScanSize {
				return common.NewUserError(fmt.Sprintf("range exceeds the limit of %d numbers", maxScanSize), common.ErrInvalidNumber)
			}
			size := to - from + 1

			ctx := cmd.Context()
			summary := cli.ScanSummary{From: from, To: to}

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = cli.NewProgressBar(cmd.ErrOrStderr(), size, "Classifying numbers...")
			}

			for n := from; ; n++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				summary.Add(numbers.Classify(n))
				if bar != nil {
					_ = bar.Add(1)
				}
				if n == to {
					break
				}
			}

			common.LogDebug("Scan complete", common.Fields{
				"from":  from,
				"to":    to,
				"total": summary.Total,
			})

			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderScanSummary(summary))
			return err
		},
	}

	cmd.Flags().Int64Var(&from, "from", 1, "first number to classify")
	cmd.Flags().Int64Var(&to, "to", 1000, "last number to classify")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

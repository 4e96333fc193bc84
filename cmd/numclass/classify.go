package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/number-classifier/internal/cli"
	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/numbers"
	"github.com/Veraticus/number-classifier/internal/server"
	"github.com/Veraticus/number-classifier/internal/service"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		asJSON    bool
		withFact  bool
		factLimit time.Duration
	)

	cmd := &cobra.Command{
		Use:   "classify <number>",
		Short: "Classify a single number",
		Example: `  numclass classify 371
  numclass classify --fact 28
  numclass classify --json -- -17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := server.ParseNumber(args[0])
			if err != nil {
				return common.NewUserError("expected an integer", err)
			}

			result := numbers.Classify(n)

			if withFact {
				facts, closeFacts, err := newFactFetcher(false)
				if err != nil {
					return fmt.Errorf("invalid facts configuration: %w", err)
				}
				defer closeFacts()

				result.FunFact = fetchFact(cmd.Context(), facts, n, factLimit)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if _, err := fmt.Fprintln(out, cli.RenderClassification(result)); err != nil {
				return err
			}
			if withFact && result.FunFact == "" {
				_, err := fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("fun fact unavailable"))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API JSON response")
	cmd.Flags().BoolVar(&withFact, "fact", false, "fetch a fun fact from the Numbers API")
	cmd.Flags().DurationVar(&factLimit, "fact-timeout", 5*time.Second, "how long to wait for the fun fact")

	return cmd
}

// fetchFact returns the fact for n or an empty string if it cannot be fetched in time.
func fetchFact(ctx context.Context, facts service.FactFetcher, n int64, limit time.Duration) string {
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	fact, err := facts.Fact(ctx, n)
	if err != nil {
		slog.Warn("Could not fetch fun fact", "number", n, "error", err)
		return ""
	}
	return fact
}

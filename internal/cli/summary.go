// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"github.com/spf13/cobra"

	"tradelog/internal/metrics"
)

// addSummaryCommands adds the journal summary command.
func addSummaryCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Journal summary statistics",
		Long:  "Aggregate win rate and P&L across all trades in the journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			trades, err := app.Queries.Trades(ctx)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			s := metrics.Summarize(trades)

			if output.IsJSON() {
				return output.JSON(s)
			}

			if s.TotalTrades == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			output.Bold("Journal Summary")
			output.Printf("  Total Trades: %d\n", s.TotalTrades)
			output.Printf("  Wins/Losses:  %d/%d (%.0f%% win rate)\n", s.WinningTrades, s.LosingTrades, s.WinRate)
			output.Printf("  Realized:     %s\n", output.FormatPnL(s.RealizedPnL))
			output.Printf("  Unrealized:   %s\n", output.FormatPnL(s.UnrealizedPnL))
			output.Printf("  Total P&L:    %s\n", output.FormatPnL(s.TotalPnL))
			output.Println()
			output.Printf("  Best:         %s %s\n", s.BestSymbol, output.FormatPnL(s.BestPnL))
			output.Printf("  Worst:        %s %s\n", s.WorstSymbol, output.FormatPnL(s.WorstPnL))
			return nil
		},
	})
}

// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"tradelog/internal/metrics"
)

// tradeCSVRow is the flattened CSV representation of a trade with its
// computed position figures.
type tradeCSVRow struct {
	ID            string  `csv:"id"`
	Symbol        string  `csv:"symbol"`
	Setup         string  `csv:"setup"`
	Status        string  `csv:"status"`
	Outcome       string  `csv:"outcome"`
	Direction     string  `csv:"direction"`
	IdeaDate      string  `csv:"idea_date"`
	EnterDate     string  `csv:"enter_date"`
	ExitDate      string  `csv:"exit_date"`
	EntryPriceAvg float64 `csv:"entry_price_avg"`
	EntryQty      float64 `csv:"entry_qty"`
	StopLoss      float64 `csv:"stop_loss"`
	RealizedPnL   float64 `csv:"realized_pnl"`
	UnrealizedPnL float64 `csv:"unrealized_pnl"`
	TotalPnL      float64 `csv:"total_pnl"`
	TotalPct      float64 `csv:"total_pct"`
}

// fillCSVRow is the CSV representation of an execution.
type fillCSVRow struct {
	ID          string  `csv:"id"`
	TradeID     string  `csv:"trade_id"`
	ScalePlanID string  `csv:"scale_plan_id"`
	Side        string  `csv:"side"`
	Qty         float64 `csv:"qty"`
	Price       float64 `csv:"price"`
	Commission  float64 `csv:"commission"`
	Source      string  `csv:"source"`
	ExecutedAt  string  `csv:"executed_at"`
}

// addExportCommands adds CSV export commands.
func addExportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal data to CSV",
	}

	cmd.AddCommand(newExportTradesCmd(app))
	cmd.AddCommand(newExportFillsCmd(app))

	rootCmd.AddCommand(cmd)
}

func newExportTradesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Export trades with P&L to CSV",
		Example: `  tradelog export trades --output trades.csv
  tradelog export trades`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			trades, err := app.Queries.Trades(ctx)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			rows := make([]*tradeCSVRow, 0, len(trades))
			for i := range trades {
				t := &trades[i]
				pos := metrics.Compute(t)
				rows = append(rows, &tradeCSVRow{
					ID:            t.ID,
					Symbol:        t.Symbol,
					Setup:         t.Setup,
					Status:        string(t.Status),
					Outcome:       string(t.Outcome),
					Direction:     string(pos.Direction),
					IdeaDate:      t.IdeaDate.Format("2006-01-02"),
					EnterDate:     csvDate(t.EnterDate),
					ExitDate:      csvDate(t.ExitDate),
					EntryPriceAvg: pos.EntryPriceAvg,
					EntryQty:      pos.EntryQty,
					StopLoss:      pos.StopLoss,
					RealizedPnL:   pos.RealizedPnL,
					UnrealizedPnL: pos.UnrealizedPnL,
					TotalPnL:      pos.TotalPnL,
					TotalPct:      pos.TotalPct,
				})
			}

			path, _ := cmd.Flags().GetString("output")
			if err := writeCSV(cmd, path, &rows); err != nil {
				output.Error("Export failed: %v", err)
				return err
			}
			if path != "" {
				output.Success("✓ Exported %d trades to %s", len(rows), path)
			}
			return nil
		},
	}

	cmd.Flags().String("output", "", "Output file (default: stdout)")

	return cmd
}

func newExportFillsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fills <trade-id>",
		Short: "Export a trade's fills to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			fills, err := app.Queries.Executions(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch executions: %v", err)
				return err
			}

			rows := make([]*fillCSVRow, 0, len(fills))
			for _, f := range fills {
				rows = append(rows, &fillCSVRow{
					ID:          f.ID,
					TradeID:     f.TradeID,
					ScalePlanID: f.ScalePlanID,
					Side:        string(f.Side),
					Qty:         f.Qty,
					Price:       f.Price,
					Commission:  f.Commission,
					Source:      string(f.Source),
					ExecutedAt:  f.ExecutedAt.Format("2006-01-02 15:04:05"),
				})
			}

			path, _ := cmd.Flags().GetString("output")
			if err := writeCSV(cmd, path, &rows); err != nil {
				output.Error("Export failed: %v", err)
				return err
			}
			if path != "" {
				output.Success("✓ Exported %d fills to %s", len(rows), path)
			}
			return nil
		},
	}

	cmd.Flags().String("output", "", "Output file (default: stdout)")

	return cmd
}

// writeCSV marshals rows to the given file, or to stdout when path is
// empty.
func writeCSV(cmd *cobra.Command, path string, rows interface{}) error {
	if path == "" {
		return gocsv.Marshal(rows, cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return gocsv.Marshal(rows, f)
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"tradelog/internal/metrics"
	"tradelog/internal/models"
)

// addTradeCommands adds live trade commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Live trade management",
		Long:  "Create, review and manage live trades with their scale plans.",
	}

	cmd.AddCommand(newTradesListCmd(app))
	cmd.AddCommand(newTradesShowCmd(app))
	cmd.AddCommand(newTradesAddCmd(app))
	cmd.AddCommand(newTradesUpdateCmd(app))
	cmd.AddCommand(newTradesCloseCmd(app))
	cmd.AddCommand(newTradesInvalidateCmd(app))
	cmd.AddCommand(newTradesDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			openOnly, _ := cmd.Flags().GetBool("open")
			watchlist, _ := cmd.Flags().GetBool("watchlist")
			liveOnly, _ := cmd.Flags().GetBool("live")

			var (
				trades []models.Trade
				err    error
			)
			switch {
			case openOnly:
				trades, err = app.Queries.OpenTrades(ctx)
			case watchlist:
				trades, err = app.Queries.Watchlist(ctx)
			case liveOnly:
				trades, err = app.Queries.LiveTrades(ctx)
			default:
				trades, err = app.Queries.Trades(ctx)
			}
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Symbol", "Setup", "Status", "Entry", "Qty", "Last", "P&L", "P&L %")
			for i := range trades {
				t := &trades[i]
				pos := metrics.Compute(t)
				table.AddRow(
					t.ID,
					t.Symbol,
					TruncateString(t.Setup, 20),
					output.StatusText(string(t.Status)),
					FormatPrice(pos.EntryPriceAvg),
					FormatQty(pos.EntryQty),
					FormatPrice(t.CurrentPrice),
					output.FormatPnL(pos.TotalPnL),
					output.FormatPercent(pos.TotalPct),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Bool("open", false, "Show open trades only")
	cmd.Flags().Bool("watchlist", false, "Show watchlist trades only")
	cmd.Flags().Bool("live", false, "Show live trades only")

	return cmd
}

func newTradesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a trade with its plans, fills and P&L",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			trade, err := app.Queries.Trade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}
			pos := metrics.Compute(trade)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"trade":    trade,
					"position": pos,
				})
			}

			output.Bold("%s  %s", trade.Symbol, output.StatusText(string(trade.Status)))
			output.Printf("  Setup:      %s\n", trade.Setup)
			output.Printf("  Rating:     %s\n", FormatRating(trade.Rating))
			output.Printf("  Idea Date:  %s\n", FormatDate(trade.IdeaDate))
			output.Printf("  Entered:    %s\n", FormatOptionalDate(trade.EnterDate))
			output.Printf("  Exited:     %s\n", FormatOptionalDate(trade.ExitDate))
			output.Println()

			output.Bold("Position")
			output.Printf("  Direction:  %s\n", pos.Direction)
			output.Printf("  Avg Entry:  %s x %s\n", FormatPrice(pos.EntryPriceAvg), FormatQty(pos.EntryQty))
			output.Printf("  Stop:       %s\n", FormatPrice(pos.StopLoss))
			output.Printf("  Sold:       %s  Remaining: %s\n", FormatQty(pos.SoldShares), FormatQty(pos.RemainingShares))
			output.Printf("  Realized:   %s (%s)\n", output.FormatPnL(pos.RealizedPnL), output.FormatPercent(pos.RealizedPct))
			output.Printf("  Unrealized: %s (%s)\n", output.FormatPnL(pos.UnrealizedPnL), output.FormatPercent(pos.UnrealizedPct))
			output.Printf("  Total:      %s (%s)\n", output.FormatPnL(pos.TotalPnL), output.FormatPercent(pos.TotalPct))
			output.Println()

			if len(trade.ScalePlans) > 0 {
				output.Bold("Scale Plans")
				table := NewTable(output, "ID", "Label", "Type", "Order", "Status", "Qty", "Limit", "Target", "Stop")
				for i := range trade.ScalePlans {
					p := &trade.ScalePlans[i]
					table.AddRow(
						p.ID,
						p.Label,
						string(p.PlanType),
						string(p.OrderType),
						output.StatusText(string(p.Status)),
						FormatQty(p.Qty),
						FormatOptionalPrice(p.LimitPrice),
						FormatOptionalPrice(p.TargetPrice),
						FormatOptionalPrice(p.StopPrice),
					)
				}
				table.Render()
				output.Println()
			}

			if len(trade.Annotations) > 0 {
				output.Bold("Notes")
				for _, a := range trade.Annotations {
					output.Printf("  [%s] %s  %s\n", a.Type, FormatDate(a.Date), a.Content)
				}
			}

			return nil
		},
	}
}

func newTradesAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Create a trade with an entry plan",
		Long: `Create a live trade with its entry plan, and optionally a stop and
profit targets. Exactly one entry plan is required.`,
		Example: `  tradelog trades add AAPL --setup breakout --qty 100 --entry 182.50 --stop 176
  tradelog trades add TSLA --qty 50 --entry 240 --stop 252 --short --targets 220,205`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			setup, _ := cmd.Flags().GetString("setup")
			rating, _ := cmd.Flags().GetFloat64("rating")
			qty, _ := cmd.Flags().GetFloat64("qty")
			entryStr, _ := cmd.Flags().GetString("entry")
			stopStr, _ := cmd.Flags().GetString("stop")
			targets, _ := cmd.Flags().GetFloat64Slice("targets")
			short, _ := cmd.Flags().GetBool("short")

			entry, err := parsePrice(entryStr)
			if err != nil {
				return err
			}
			stop, err := parsePrice(stopStr)
			if err != nil {
				return err
			}

			direction := models.Long
			if short {
				direction = models.Short
			}

			plans := []models.ScalePlanCreate{{
				Label:      "Entry",
				PlanType:   models.PlanEntry,
				OrderType:  models.OrderLimit,
				TradeType:  direction,
				Qty:        qty,
				LimitPrice: entry,
				StopPrice:  stop,
			}}
			if stop != nil {
				plans = append(plans, models.ScalePlanCreate{
					Label:     "Stop",
					PlanType:  models.PlanStopLoss,
					OrderType: models.OrderStop,
					TradeType: direction,
					Qty:       qty,
					StopPrice: stop,
				})
			}
			for i, target := range targets {
				t := target
				plans = append(plans, models.ScalePlanCreate{
					Label:       targetLabel(i),
					PlanType:    models.PlanTarget,
					OrderType:   models.OrderLimit,
					TradeType:   direction,
					Qty:         qty / float64(len(targets)),
					TargetPrice: &t,
				})
			}

			now := time.Now()
			trade, err := app.Mutations.CreateTrade(ctx, &models.TradeCreate{
				Symbol:     args[0],
				Setup:      setup,
				Rating:     rating,
				EnterDate:  &now,
				ScalePlans: plans,
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade %s created (%s)", trade.Symbol, trade.ID)
			return nil
		},
	}

	cmd.Flags().String("setup", "", "Setup name")
	cmd.Flags().Float64("rating", 3, "Conviction rating (1-5)")
	cmd.Flags().Float64("qty", 0, "Position size in shares")
	cmd.Flags().String("entry", "", "Entry limit price")
	cmd.Flags().String("stop", "", "Stop price")
	cmd.Flags().Float64Slice("targets", nil, "Target prices")
	cmd.Flags().Bool("short", false, "Enter short instead of long")

	return cmd
}

func newTradesUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update trade fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			payload := &models.TradeUpdate{}
			if cmd.Flags().Changed("setup") {
				v, _ := cmd.Flags().GetString("setup")
				payload.Setup = &v
			}
			if cmd.Flags().Changed("rating") {
				v, _ := cmd.Flags().GetFloat64("rating")
				payload.Rating = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := models.TradeStatus(v)
				payload.Status = &status
			}
			if cmd.Flags().Changed("outcome") {
				v, _ := cmd.Flags().GetString("outcome")
				outcome := models.Outcome(v)
				payload.Outcome = &outcome
			}
			if cmd.Flags().Changed("enter-date") {
				v, _ := cmd.Flags().GetString("enter-date")
				d, err := parseDate(v)
				if err != nil {
					return err
				}
				payload.EnterDate = d
			}
			if cmd.Flags().Changed("exit-date") {
				v, _ := cmd.Flags().GetString("exit-date")
				d, err := parseDate(v)
				if err != nil {
					return err
				}
				payload.ExitDate = d
			}

			trade, err := app.Mutations.UpdateTrade(ctx, args[0], payload)
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade %s updated", trade.Symbol)
			return nil
		},
	}

	cmd.Flags().String("setup", "", "Setup name")
	cmd.Flags().Float64("rating", 0, "Conviction rating (1-5)")
	cmd.Flags().String("status", "", "Status (open, watching, closed, invalidated)")
	cmd.Flags().String("outcome", "", "Outcome (big_win, win, break_even, loss, big_loss)")
	cmd.Flags().String("enter-date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().String("exit-date", "", "Exit date (YYYY-MM-DD)")

	return cmd
}

func newTradesCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a trade",
		Long:  "Mark a trade closed, stamp its exit date and record the outcome.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			trade, err := app.Queries.Trade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}

			now := time.Now()
			status := models.TradeClosed
			closed := *trade
			closed.Status = status
			outcome := metrics.ClassifyOutcome(&closed, metrics.Compute(trade))

			updated, err := app.Mutations.UpdateTrade(ctx, trade.ID, &models.TradeUpdate{
				Status:   &status,
				Outcome:  &outcome,
				ExitDate: &now,
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(updated)
			}
			output.Success("✓ Trade %s closed (%s)", updated.Symbol, outcome)
			return nil
		},
	}
}

func newTradesInvalidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate <id>",
		Short: "Invalidate a trade",
		Long: `Mark a trade invalidated. The previous status is reported so the
change can be reversed with 'trades update --status'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			trade, err := app.Queries.Trade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}
			previous := trade.Status

			if _, err := app.Mutations.InvalidateTrade(ctx, trade); err != nil {
				return reportError(output, err)
			}

			output.Success("✓ Trade %s invalidated", trade.Symbol)
			output.Dim("Restore with: tradelog trades update %s --status %s", trade.ID, previous)
			return nil
		},
	}
}

func newTradesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			if err := app.Mutations.DeleteTrade(ctx, args[0]); err != nil {
				return reportError(output, err)
			}
			output.Success("✓ Trade deleted")
			return nil
		},
	}
}

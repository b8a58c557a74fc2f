// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/internal/journal"
	"tradelog/internal/models"
)

// addIdeaCommands adds trade idea commands.
func addIdeaCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Trade idea management",
		Long:  "Track pre-trade watchlist candidates and promote them into live trades.",
	}

	cmd.AddCommand(newIdeasListCmd(app))
	cmd.AddCommand(newIdeasAddCmd(app))
	cmd.AddCommand(newIdeasUpdateCmd(app))
	cmd.AddCommand(newIdeasDeleteCmd(app))
	cmd.AddCommand(newIdeasPromoteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newIdeasListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trade ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			ideas, err := app.Queries.TradeIdeas(ctx)
			if err != nil {
				output.Error("Failed to fetch trade ideas: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(ideas)
			}

			if len(ideas) == 0 {
				output.Info("No trade ideas recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Symbol", "Setup", "Rating", "Status", "Entry", "Stop", "Targets", "Date")
			for _, idea := range ideas {
				entry := FormatPrice(idea.EntryMin)
				if idea.EntryMax != nil {
					entry += " - " + FormatPrice(*idea.EntryMax)
				}
				table.AddRow(
					idea.ID,
					idea.Symbol,
					TruncateString(idea.Setup, 20),
					FormatRating(float64(idea.Rating)),
					output.StatusText(string(idea.Status)),
					entry,
					FormatOptionalPrice(idea.Stop),
					FormatTargets(idea.TargetPrices),
					FormatDate(idea.IdeaDate),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newIdeasAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Add a trade idea",
		Example: `  tradelog ideas add AAPL --setup "cup and handle" --entry-min 180 --stop 172 --targets 195,210
  tradelog ideas add NVDA --setup breakout --rating 4 --entry-min 120 --entry-max 124`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			setup, _ := cmd.Flags().GetString("setup")
			rating, _ := cmd.Flags().GetInt("rating")
			entryMin, _ := cmd.Flags().GetFloat64("entry-min")
			entryMaxStr, _ := cmd.Flags().GetString("entry-max")
			stopStr, _ := cmd.Flags().GetString("stop")
			targets, _ := cmd.Flags().GetFloat64Slice("targets")
			rrStr, _ := cmd.Flags().GetString("rr")
			catalysts, _ := cmd.Flags().GetString("catalysts")
			notes, _ := cmd.Flags().GetString("notes")

			entryMax, err := parsePrice(entryMaxStr)
			if err != nil {
				return err
			}
			stop, err := parsePrice(stopStr)
			if err != nil {
				return err
			}
			rr, err := parsePrice(rrStr)
			if err != nil {
				return err
			}

			idea, err := app.Mutations.CreateTradeIdea(ctx, &models.TradeIdeaCreate{
				Symbol:       args[0],
				Setup:        setup,
				Rating:       rating,
				EntryMin:     entryMin,
				EntryMax:     entryMax,
				Stop:         stop,
				TargetPrices: targets,
				RRRatio:      rr,
				Catalysts:    catalysts,
				Notes:        notes,
				IdeaDate:     time.Now(),
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(idea)
			}
			output.Success("✓ Trade idea %s created (%s)", idea.Symbol, idea.ID)
			return nil
		},
	}

	cmd.Flags().String("setup", "", "Setup name")
	cmd.Flags().Int("rating", 3, "Conviction rating (1-5)")
	cmd.Flags().Float64("entry-min", 0, "Entry zone low")
	cmd.Flags().String("entry-max", "", "Entry zone high")
	cmd.Flags().String("stop", "", "Stop price")
	cmd.Flags().Float64Slice("targets", nil, "Target prices")
	cmd.Flags().String("rr", "", "Risk-reward ratio")
	cmd.Flags().String("catalysts", "", "Catalysts")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}

func newIdeasUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a trade idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			payload := &models.TradeIdeaUpdate{}
			if cmd.Flags().Changed("setup") {
				v, _ := cmd.Flags().GetString("setup")
				payload.Setup = &v
			}
			if cmd.Flags().Changed("rating") {
				v, _ := cmd.Flags().GetInt("rating")
				payload.Rating = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := models.IdeaStatus(v)
				payload.Status = &status
			}
			if cmd.Flags().Changed("entry-min") {
				v, _ := cmd.Flags().GetFloat64("entry-min")
				payload.EntryMin = &v
			}
			if cmd.Flags().Changed("entry-max") {
				v, _ := cmd.Flags().GetString("entry-max")
				p, err := parsePrice(v)
				if err != nil {
					return err
				}
				payload.EntryMax = p
			}
			if cmd.Flags().Changed("stop") {
				v, _ := cmd.Flags().GetString("stop")
				p, err := parsePrice(v)
				if err != nil {
					return err
				}
				payload.Stop = p
			}
			if cmd.Flags().Changed("targets") {
				v, _ := cmd.Flags().GetFloat64Slice("targets")
				payload.TargetPrices = v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				payload.Notes = &v
			}

			idea, err := app.Mutations.UpdateTradeIdea(ctx, args[0], payload)
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(idea)
			}
			output.Success("✓ Trade idea %s updated", idea.Symbol)
			return nil
		},
	}

	cmd.Flags().String("setup", "", "Setup name")
	cmd.Flags().Int("rating", 0, "Conviction rating (1-5)")
	cmd.Flags().String("status", "", "Status (watching, in-progress, invalidated, live, closed)")
	cmd.Flags().Float64("entry-min", 0, "Entry zone low")
	cmd.Flags().String("entry-max", "", "Entry zone high")
	cmd.Flags().String("stop", "", "Stop price")
	cmd.Flags().Float64Slice("targets", nil, "Target prices")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}

func newIdeasDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			if err := app.Mutations.DeleteTradeIdea(ctx, args[0]); err != nil {
				return reportError(output, err)
			}
			output.Success("✓ Trade idea deleted")
			return nil
		},
	}
}

func newIdeasPromoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote <id>",
		Short: "Promote an idea into a live trade",
		Long: `Create a live trade from a trade idea and mark the idea as live.

The entry plan is built from the idea's entry zone and stop; pass
--qty to size the position.`,
		Example: `  tradelog ideas promote idea-42 --qty 100
  tradelog ideas promote idea-42 --qty 50 --entry 181.50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			qty, _ := cmd.Flags().GetFloat64("qty")
			entryStr, _ := cmd.Flags().GetString("entry")
			short, _ := cmd.Flags().GetBool("short")

			ideas, err := app.Queries.TradeIdeas(ctx)
			if err != nil {
				output.Error("Failed to fetch trade ideas: %v", err)
				return err
			}
			var idea *models.TradeIdea
			for i := range ideas {
				if ideas[i].ID == args[0] {
					idea = &ideas[i]
					break
				}
			}
			if idea == nil {
				output.Error("Trade idea %s not found", args[0])
				return errors.New("trade idea not found")
			}

			entry, err := parsePrice(entryStr)
			if err != nil {
				return err
			}
			if entry == nil {
				entry = &idea.EntryMin
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
				StopPrice:  idea.Stop,
			}}
			if idea.Stop != nil {
				plans = append(plans, models.ScalePlanCreate{
					Label:     "Stop",
					PlanType:  models.PlanStopLoss,
					OrderType: models.OrderStop,
					TradeType: direction,
					Qty:       qty,
					StopPrice: idea.Stop,
				})
			}
			for i, target := range idea.TargetPrices {
				t := target
				plans = append(plans, models.ScalePlanCreate{
					Label:       targetLabel(i),
					PlanType:    models.PlanTarget,
					OrderType:   models.OrderLimit,
					TradeType:   direction,
					Qty:         qty / float64(len(idea.TargetPrices)),
					TargetPrice: &t,
				})
			}

			trade, err := app.Mutations.PromoteIdea(ctx, idea.ID, &models.TradeCreate{
				Symbol:     idea.Symbol,
				Setup:      idea.Setup,
				Rating:     float64(idea.Rating),
				ScalePlans: plans,
			})
			if err != nil {
				if trade != nil {
					// The trade was created but the idea status update
					// failed; surface both facts.
					output.Warning("Trade %s created but idea was not marked live: %v", trade.ID, err)
					return err
				}
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Idea %s promoted to trade %s", idea.Symbol, trade.ID)
			return nil
		},
	}

	cmd.Flags().Float64("qty", 0, "Position size in shares")
	cmd.Flags().String("entry", "", "Entry limit price (default: idea's entry zone low)")
	cmd.Flags().Bool("short", false, "Enter short instead of long")

	return cmd
}

func targetLabel(i int) string {
	return fmt.Sprintf("Target %d", i+1)
}

// commandContext returns the bounded context used by all commands.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// reportError prints a mutation error in its friendliest available
// form and returns it for the non-zero exit code.
func reportError(output *Output, err error) error {
	var vErr *journal.ValidationError
	if errors.As(err, &vErr) {
		output.Error("Validation failed:")
		for _, issue := range vErr.Issues {
			output.Printf("  %s: %s\n", issue.Path, issue.Message)
		}
		return err
	}
	output.Error("%v", err)
	return err
}

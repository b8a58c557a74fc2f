// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"github.com/spf13/cobra"

	"tradelog/internal/models"
)

// addExecutionCommands adds fill recording commands.
func addExecutionCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "fills",
		Short: "Execution management",
		Long:  "Record and review fills against scale plans.",
	}

	cmd.AddCommand(newFillsListCmd(app))
	cmd.AddCommand(newFillsRecordCmd(app))
	cmd.AddCommand(newFillsUpdateCmd(app))
	cmd.AddCommand(newFillsDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newFillsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <trade-id>",
		Short: "List fills for a trade",
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

			if output.IsJSON() {
				return output.JSON(fills)
			}

			if len(fills) == 0 {
				output.Info("No fills recorded for this trade.")
				return nil
			}

			table := NewTable(output, "ID", "Plan", "Side", "Qty", "Price", "Commission", "Source", "Executed")
			for _, f := range fills {
				table.AddRow(
					f.ID,
					f.ScalePlanID,
					string(f.Side),
					FormatQty(f.Qty),
					FormatPrice(f.Price),
					FormatPrice(f.Commission),
					string(f.Source),
					FormatTime(f.ExecutedAt),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newFillsRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <trade-id> <plan-id>",
		Short: "Record a fill against a scale plan",
		Long: `Record a fill against a scale plan. The server updates the plan's
fill status based on the cumulative executed quantity.`,
		Example: `  tradelog fills record trade-7 plan-12 --side buy --qty 100 --price 182.45
  tradelog fills record trade-7 plan-13 --side sell --qty 50 --price 195.10 --commission 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			side, _ := cmd.Flags().GetString("side")
			qty, _ := cmd.Flags().GetFloat64("qty")
			price, _ := cmd.Flags().GetFloat64("price")
			commission, _ := cmd.Flags().GetFloat64("commission")
			notes, _ := cmd.Flags().GetString("notes")

			fill, err := app.Mutations.ExecutePlan(ctx, &models.ExecutionCreate{
				TradeID:     args[0],
				ScalePlanID: args[1],
				Side:        models.ExecutionSide(side),
				Qty:         qty,
				Price:       price,
				Commission:  commission,
				Source:      models.SourceManual,
				Notes:       notes,
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(fill)
			}
			output.Success("✓ Fill recorded: %s %s @ %s", fill.Side, FormatQty(fill.Qty), FormatPrice(fill.Price))
			return nil
		},
	}

	cmd.Flags().String("side", "buy", "Side (buy, sell)")
	cmd.Flags().Float64("qty", 0, "Filled quantity")
	cmd.Flags().Float64("price", 0, "Fill price")
	cmd.Flags().Float64("commission", 0, "Commission paid")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}

func newFillsUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <trade-id>",
		Short: "Correct a recorded fill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			payload := &models.ExecutionUpdate{}
			if cmd.Flags().Changed("qty") {
				v, _ := cmd.Flags().GetFloat64("qty")
				payload.Qty = &v
			}
			if cmd.Flags().Changed("price") {
				v, _ := cmd.Flags().GetFloat64("price")
				payload.Price = &v
			}
			if cmd.Flags().Changed("commission") {
				v, _ := cmd.Flags().GetFloat64("commission")
				payload.Commission = &v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				payload.Notes = &v
			}

			fill, err := app.Mutations.UpdateExecution(ctx, args[0], args[1], payload)
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(fill)
			}
			output.Success("✓ Fill %s updated", fill.ID)
			return nil
		},
	}

	cmd.Flags().Float64("qty", 0, "Filled quantity")
	cmd.Flags().Float64("price", 0, "Fill price")
	cmd.Flags().Float64("commission", 0, "Commission paid")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}

func newFillsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id> <trade-id>",
		Short: "Delete a recorded fill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			if err := app.Mutations.DeleteExecution(ctx, args[0], args[1]); err != nil {
				return reportError(output, err)
			}
			output.Success("✓ Fill deleted")
			return nil
		},
	}
}

// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"github.com/spf13/cobra"

	"tradelog/internal/models"
)

// addPlanCommands adds scale plan commands.
func addPlanCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Scale plan management",
		Long:  "Add, adjust and cancel scale plans on a live trade.",
	}

	cmd.AddCommand(newPlansAddCmd(app))
	cmd.AddCommand(newPlansUpdateCmd(app))
	cmd.AddCommand(newPlansCancelCmd(app))
	cmd.AddCommand(newPlansDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newPlansAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <trade-id>",
		Short: "Add a scale plan to a trade",
		Example: `  tradelog plans add trade-7 --type target --qty 50 --target 195
  tradelog plans add trade-7 --type stop_loss --qty 100 --stop 172`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			label, _ := cmd.Flags().GetString("label")
			planType, _ := cmd.Flags().GetString("type")
			orderType, _ := cmd.Flags().GetString("order")
			qty, _ := cmd.Flags().GetFloat64("qty")
			limitStr, _ := cmd.Flags().GetString("limit")
			targetStr, _ := cmd.Flags().GetString("target")
			stopStr, _ := cmd.Flags().GetString("stop")
			notes, _ := cmd.Flags().GetString("notes")
			short, _ := cmd.Flags().GetBool("short")

			limit, err := parsePrice(limitStr)
			if err != nil {
				return err
			}
			target, err := parsePrice(targetStr)
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

			plan, err := app.Mutations.CreateScalePlan(ctx, &models.ScalePlanCreate{
				LiveTradeID: args[0],
				Label:       label,
				PlanType:    models.PlanType(planType),
				OrderType:   models.OrderType(orderType),
				TradeType:   direction,
				Qty:         qty,
				LimitPrice:  limit,
				TargetPrice: target,
				StopPrice:   stop,
				Notes:       notes,
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(plan)
			}
			output.Success("✓ Scale plan %s added (%s)", plan.Label, plan.ID)
			return nil
		},
	}

	cmd.Flags().String("label", "", "Plan label")
	cmd.Flags().String("type", "target", "Plan type (entry, target, stop_loss)")
	cmd.Flags().String("order", "limit", "Order type (market, limit, stop, stop_limit)")
	cmd.Flags().Float64("qty", 0, "Quantity in shares")
	cmd.Flags().String("limit", "", "Limit price")
	cmd.Flags().String("target", "", "Target price")
	cmd.Flags().String("stop", "", "Stop price")
	cmd.Flags().String("notes", "", "Notes")
	cmd.Flags().Bool("short", false, "Short side plan")

	return cmd
}

func newPlansUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a scale plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			payload := &models.ScalePlanUpdate{}
			if cmd.Flags().Changed("label") {
				v, _ := cmd.Flags().GetString("label")
				payload.Label = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := models.PlanStatus(v)
				payload.Status = &status
			}
			if cmd.Flags().Changed("qty") {
				v, _ := cmd.Flags().GetFloat64("qty")
				payload.Qty = &v
			}
			if cmd.Flags().Changed("limit") {
				v, _ := cmd.Flags().GetString("limit")
				p, err := parsePrice(v)
				if err != nil {
					return err
				}
				payload.LimitPrice = p
			}
			if cmd.Flags().Changed("target") {
				v, _ := cmd.Flags().GetString("target")
				p, err := parsePrice(v)
				if err != nil {
					return err
				}
				payload.TargetPrice = p
			}
			if cmd.Flags().Changed("stop") {
				v, _ := cmd.Flags().GetString("stop")
				p, err := parsePrice(v)
				if err != nil {
					return err
				}
				payload.StopPrice = p
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				payload.Notes = &v
			}

			plan, err := app.Mutations.UpdateScalePlan(ctx, args[0], payload)
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(plan)
			}
			output.Success("✓ Scale plan %s updated", plan.ID)
			return nil
		},
	}

	cmd.Flags().String("label", "", "Plan label")
	cmd.Flags().String("status", "", "Status (planned, cancelled, filled, filled_partial, triggered)")
	cmd.Flags().Float64("qty", 0, "Quantity in shares")
	cmd.Flags().String("limit", "", "Limit price")
	cmd.Flags().String("target", "", "Target price")
	cmd.Flags().String("stop", "", "Stop price")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}

func newPlansCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a scale plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			status := models.PlanCancelled
			plan, err := app.Mutations.UpdateScalePlan(ctx, args[0], &models.ScalePlanUpdate{Status: &status})
			if err != nil {
				return reportError(output, err)
			}

			output.Success("✓ Scale plan %s cancelled", plan.ID)
			return nil
		},
	}
}

func newPlansDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a scale plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			if err := app.Mutations.DeleteScalePlan(ctx, args[0]); err != nil {
				return reportError(output, err)
			}
			output.Success("✓ Scale plan deleted")
			return nil
		},
	}
}

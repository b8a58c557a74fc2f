// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tradelog/internal/models"
)

// addAnnotationCommands adds the annotate command.
func addAnnotationCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "annotate <trade-id> <content...>",
		Short: "Append a note to a trade",
		Long: `Append a dated note or catalyst to a trade. Annotations are
append-only; there is no edit or delete.`,
		Example: `  tradelog annotate trade-7 held through earnings, thesis intact
  tradelog annotate trade-7 --catalyst "FDA decision expected Friday"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext()
			defer cancel()

			catalyst, _ := cmd.Flags().GetBool("catalyst")
			annType := models.AnnotationNote
			if catalyst {
				annType = models.AnnotationCatalyst
			}

			ann, err := app.Mutations.CreateAnnotation(ctx, &models.AnnotationCreate{
				TradeID: args[0],
				Type:    annType,
				Content: strings.Join(args[1:], " "),
			})
			if err != nil {
				return reportError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(ann)
			}
			output.Success("✓ %s added to trade", ann.Type)
			return nil
		},
	}

	cmd.Flags().Bool("catalyst", false, "Record as a catalyst instead of a note")

	rootCmd.AddCommand(cmd)
}

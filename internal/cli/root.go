// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradelog/internal/api"
	"tradelog/internal/config"
	"tradelog/internal/journal"
	"tradelog/internal/logging"
	"tradelog/internal/notify"
	"tradelog/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-01-01"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Client    *api.Client
	Queries   *journal.Queries
	Mutations *journal.Mutations
	Store     store.SnapshotStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Client = api.NewClient(cfg.API.BaseURL, logger, api.WithTimeout(cfg.API.Timeout))

	// Initialize snapshot store; queries degrade to live-only when it
	// is unavailable.
	var snapshot store.SnapshotStore
	sqliteStore, err := store.NewSQLiteStore(cfg.Cache.DBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize snapshot store, offline fallback unavailable")
	} else {
		snapshot = sqliteStore
		app.Store = sqliteStore
		logger.Debug().Str("path", cfg.Cache.DBPath).Msg("Snapshot store initialized")
	}

	cache := journal.NewCache(cfg.Cache.StaleAfter)
	notifier := notify.NewMultiNotifier(&cfg.Notifications)

	app.Queries, err = journal.NewQueries(app.Client, cache, snapshot, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize query service")
	}
	app.Mutations, err = journal.NewMutations(app.Client, cache, notifier, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize mutation service")
	}

	rootCmd := &cobra.Command{
		Use:   "tradelog",
		Short: "TradeLog - swing trading journal CLI",
		Long: `TradeLog is a trading journal CLI backed by a journal API server.

Track trade ideas, plan entries and exits with scale plans, record
fills, and review position P&L and journal statistics. Data is cached
locally and snapshotted to SQLite for offline review.

Use 'tradelog help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			if app.Queries != nil {
				app.Queries.Activate()
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradelog)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Add all command groups
	addCoreCommands(rootCmd, app)
	addIdeaCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addPlanCommands(rootCmd, app)
	addExecutionCommands(rootCmd, app)
	addAnnotationCommands(rootCmd, app)
	addSummaryCommands(rootCmd, app)
	addExportCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("TradeLog v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("API Configuration")
	output.Printf("  Base URL:        %s\n", cfg.API.BaseURL)
	output.Printf("  Timeout:         %s\n", cfg.API.Timeout)
	output.Println()

	output.Bold("Cache Configuration")
	output.Printf("  Stale After:     %s\n", cfg.Cache.StaleAfter)
	output.Printf("  Snapshot DB:     %s\n", cfg.Cache.DBPath)
	output.Println()

	output.Bold("Notifications")
	output.Printf("  Terminal:        %v\n", cfg.Notifications.Terminal.Enabled)
	output.Printf("  Webhook:         %v\n", cfg.Notifications.Webhook.Enabled)
}

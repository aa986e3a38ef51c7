package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sorucat/internal/app"
	"sorucat/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sorucat",
	Short: "Question categorization service",
	Long: `Sorucat classifies customer support questions into nine fixed
categories using embedding similarity. It can run as an HTTP API (serve)
or classify single questions from the command line (categorize).`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize the app once. This embeds every category example and
		// builds the prototype cache, so it is the slow part of startup.
		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check embedding provider connectivity and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Printf("Embedding provider: %s (%s), status: %s\n",
			appInstance.EmbeddingService.Name(),
			appInstance.EmbeddingService.ModelName(),
			appInstance.EmbeddingService.Status())

		fmt.Println("Embedding a probe sentence...")
		vec, err := appInstance.EmbeddingService.GenerateEmbedding(ctx, "Bu bir bağlantı testidir")
		if err != nil {
			return fmt.Errorf("embedding probe failed: %w", err)
		}
		fmt.Printf("Provider reachable, returned a %d-dimensional vector.\n", len(vec.Slice()))

		if appInstance.Engine.Ready() {
			fmt.Printf("Engine ready with %d categories (dimension %d).\n",
				len(appInstance.Engine.Categories()), appInstance.Engine.Dimension())
		}
		return nil
	},
}

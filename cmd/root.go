package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	envFile string

	// Set up by PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "orbit-aether",
	Short: "Back-office (Orbit) and storefront (Aether) API servers",
	Long: `orbit-aether runs the two REST back ends:

  orbit   back-office API: clients, suppliers, orders, inventory, team, tasks
  aether  storefront API: catalog, checkout orders, newsletter

Configuration is read from the environment, optionally seeded from --env-file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		logger.Debug("configuration loaded", zap.String("env", cfg.Env))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional file of environment variables")

	serveCmd.AddCommand(serveOrbitCmd)
	serveCmd.AddCommand(serveAetherCmd)
	serveCmd.AddCommand(serveAllCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

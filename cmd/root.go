package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocode/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "census-geocode",
	Short: "Geocode US postal addresses via the Census Bureau geocoder",
	Long:  "Resolves free-form US address strings to coordinates through the Census Bureau geocoding service, with normalization, caching, and rate limiting.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

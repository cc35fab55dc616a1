package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh-token",
	Short: "Exchange the stored refresh token for a new pair",
	Long: "Runs a single OAuth refresh against MercadoLibre and persists the rotated " +
		"pair. Tokens are never printed.",
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	m := newMarketplace(cfg.Marketplace, pg.Credentials(), log,
		otel.GetTracerProvider(), otel.GetMeterProvider())

	pair, err := m.refresher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}

	expiry := time.Duration(pair.ExpiresIn) * time.Second
	fmt.Fprintf(cmd.OutOrStdout(), "token refreshed; new access token expires in %s\n", expiry)
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/app"
)

var version = "dev"

//	@title			Affiliate API
//	@version		1.0
//	@description	Referral commissions, fraud review and partner payouts.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	affiliate := app.New()
	if err := affiliate.Start(ctx); err != nil {
		// the zap logger may not be initialised yet
		log.Error().Err(err).Str("version", version).Msg("can't start affiliate service")
		os.Exit(1)
	}
	zap.L().Info("affiliate service running", zap.String("version", version))

	if err := affiliate.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("affiliate service stopped with errors", zap.Error(err))
	}
	zap.L().Info("affiliate service stopped")
	_ = zap.L().Sync()
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-dashboard/bootstrap"

	"github.com/rs/zerolog/log"
)

func main() {
	app, cfg, deps, err := bootstrap.New()
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	if deps.Rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := deps.Rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}
	if deps.DB != nil {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Postgres connection failed")
		}
		log.Info().Msg("Postgres connected")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	if deps.Rdb != nil {
		_ = deps.Rdb.Close()
	}
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"spotline/config"
	"spotline/internal/cache"
	"spotline/internal/database"
	"spotline/internal/repository"
	"spotline/internal/router"
	"spotline/internal/service"
	"spotline/pkg/cloudinary"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cch, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, safety stats cache disabled")
	} else if cch == nil {
		logger.Info("redis not configured, safety stats cache disabled")
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			logger.WithError(err).Fatal("cloudinary init failed")
		}
	} else {
		logger.Info("cloudinary not configured, avatar uploads disabled")
	}

	sweeper := service.NewSweeper(
		repository.NewCheckInRepository(db),
		repository.NewAlertRepository(db),
		cfg.Sweep.Interval,
		logger,
	)
	go sweeper.Run(ctx)

	engine := router.Setup(cfg, db, cch, cloud)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("listen failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}
	if cch != nil {
		_ = cch.Close()
	}
	logger.Info("server stopped")
}

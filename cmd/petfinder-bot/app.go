package main

import (
	"context"
	"fmt"

	"petfinder-bot/internal/common/aws"
	"petfinder-bot/internal/common/config"
	"petfinder-bot/internal/common/database"
	"petfinder-bot/internal/common/history"
	"petfinder-bot/internal/common/logger"
	"petfinder-bot/internal/common/observability"
	"petfinder-bot/internal/common/petfinder"
	"petfinder-bot/internal/dialog"
	findpet "petfinder-bot/internal/intents/find-pet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the wiring shared by every run mode.
type app struct {
	cfg        *config.Config
	zapLog     *zap.Logger
	log        logger.Logger
	obs        *observability.Observability
	redis      *database.RedisClient
	dispatcher *dialog.Dispatcher
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	if err := config.ApplyTimezone(cfg.App.Timezone); err != nil {
		return nil, err
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	a := &app{
		cfg:    cfg,
		zapLog: zapLog,
		log:    log,
		obs:    observability.New(cfg.App.Name, log),
	}

	directory := petfinder.NewClient(&petfinder.Config{
		BaseURL: cfg.Petfinder.BaseURL,
		APIKey:  cfg.Petfinder.APIKey,
		Timeout: config.GetDuration(cfg.Petfinder.Timeout),
	})

	var opts findpet.HandlerOptions

	if cfg.History.Enabled {
		rc, err := database.NewRedis(cfg.Redis)
		if err != nil {
			a.close()
			return nil, err
		}
		if err := rc.Ping(ctx); err != nil {
			log.Warn("redis unavailable, match history writes will fail", map[string]interface{}{
				"address": cfg.Redis.Address,
				"error":   err.Error(),
			})
		}
		a.redis = rc
		opts.Recorder = history.NewStore(rc.Client, &history.Config{
			KeyPrefix:  cfg.History.KeyPrefix,
			MaxEntries: cfg.History.MaxEntries,
			TTL:        config.GetDuration(cfg.History.TTL),
		})
	}

	if cfg.Notifications.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.AWS.Region)
		if err != nil {
			a.close()
			return nil, err
		}
		opts.Publisher = aws.NewMatchPublisher(snsClient, cfg.Notifications.SNS.TopicARN)
	}

	handler := findpet.NewHandler(&findpet.Config{PhotoMarker: cfg.Petfinder.PhotoMarker}, directory, log, opts)

	a.dispatcher = dialog.NewDispatcher(&dialog.Config{
		ExpectedBotName: cfg.Bot.ExpectedName,
		Version:         cfg.App.Version,
	}, log, dialog.WithObservability(a.obs))
	a.dispatcher.Register(findpet.IntentName, handler)

	log.Info("petfinder-bot initialized", map[string]interface{}{
		"intents":       a.dispatcher.Intents(),
		"timezone":      cfg.App.Timezone,
		"history":       cfg.History.Enabled,
		"notifications": cfg.Notifications.SNS.Enabled,
	})

	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.obs.Shutdown()
	_ = a.zapLog.Sync()
}

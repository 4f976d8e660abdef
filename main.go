package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/akira02/tg-jpg/pkg/assets"
	"github.com/akira02/tg-jpg/pkg/database"
	"github.com/akira02/tg-jpg/pkg/fetcher"
	"github.com/akira02/tg-jpg/pkg/google"
	"github.com/akira02/tg-jpg/pkg/logger"
	"github.com/akira02/tg-jpg/pkg/repository"
	"github.com/akira02/tg-jpg/pkg/services"
	"github.com/akira02/tg-jpg/pkg/telegram"
	"github.com/akira02/tg-jpg/pkg/telegram/handler"
	"github.com/akira02/tg-jpg/pkg/workers"
)

type Config struct {
	TelegramBotToken    string        `env:"TELEGRAM_BOT_TOKEN,required"`
	AssetsDir           string        `env:"ASSETS_DIR" envDefault:"assets"`
	AssetsPublicBaseURL string        `env:"ASSETS_PUBLIC_BASE_URL"`
	DatabasePath        string        `env:"DATABASE_PATH" envDefault:"tgjpg.db"`
	SearchTimeout       time.Duration `env:"SEARCH_TIMEOUT" envDefault:"15s"`
	SearchLang          string        `env:"SEARCH_LANG" envDefault:"zh-TW"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	db, err := database.NewSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("creating db: %w", err)
	}

	settingsRepository := repository.NewSettingsRepository(db)
	assetFinder := assets.NewFinder(cfg.AssetsDir)
	pageFetcher := fetcher.New(cfg.SearchTimeout, cfg.SearchLang)
	searchClient := google.NewClient(pageFetcher, cfg.SearchLang)

	mediaService := services.NewMediaService(
		settingsRepository,
		assetFinder,
		searchClient,
		pageFetcher,
	)

	handlers := []telegram.Handler{
		handler.NewShowWelcomeMessage(telegramClient),
		handler.NewEnableMyGo(settingsRepository, telegramClient),
		handler.NewDisableMyGo(settingsRepository, telegramClient),
		handler.NewShowStatus(settingsRepository, telegramClient),
		handler.NewMediaRequestMessage(mediaService, telegramClient),
	}
	if cfg.AssetsPublicBaseURL != "" {
		handlers = append(handlers, handler.NewInlineQuery(assetFinder, telegramClient, cfg.AssetsPublicBaseURL))
	}

	registry := telegram.NewRegistry(handlers...)

	return workers.Group{
		workers.NewTelegramUpdateListener(telegramClient, registry),
	}, nil
}

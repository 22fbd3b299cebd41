package cmd

import (
	"context"
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kasuboski/serialz/config"
	"github.com/kasuboski/serialz/pkg/catalog"
	mhttp "github.com/kasuboski/serialz/pkg/http"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite"
	"github.com/kasuboski/serialz/pkg/tmdb"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loadConfig reads the configuration and applies the log level. Commands that talk to
// telegram or tmdb validate the whole config.
func loadConfig(validate bool) config.Config {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	if validate {
		if err := cfg.Validate(); err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}
	}

	if cfg.Log.Level != "" {
		if err := logger.SetLevel(cfg.Log.Level); err != nil {
			log.Warnw("invalid log level", "level", cfg.Log.Level, zap.Error(err))
		}
	}

	return cfg
}

func openStore(ctx context.Context, cfg config.Config) storage.Storage {
	log := logger.FromCtx(ctx)

	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		log.Fatal("failed to create storage connection", zap.Error(err))
	}

	if err := store.RunMigrations(ctx); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	return store
}

// newCatalog builds the tmdb client behind retries for 429s and a circuit breaker
func newCatalog(cfg config.Config) *catalog.TMDB {
	log := logger.Get()

	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
	}

	rateLimited := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithMaxRetries(cfg.TMDB.MaxRetries),
		mhttp.WithBaseBackoff(cfg.TMDB.BaseBackoff),
		mhttp.WithJitter(),
	)
	breaker := mhttp.NewBreakerClient("tmdb", rateLimited)

	client, err := tmdb.NewFromURL(tmdbURL.String(), cfg.TMDB.APIKey, cfg.TMDB.Language, tmdb.WithHTTPClient(breaker))
	if err != nil {
		log.Fatal("failed to create tmdb client", zap.Error(err))
	}

	return catalog.New(client, catalog.WithSearchLimit(cfg.TMDB.SearchLimit))
}

func newBotAPI(cfg config.Config) *tgbotapi.BotAPI {
	log := logger.Get()

	if err := tgbotapi.SetLogger(logger.NewBotLogger(log)); err != nil {
		log.Warnw("failed to set telegram logger", zap.Error(err))
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatal("failed to create telegram client", zap.Error(err))
	}
	api.Debug = cfg.Telegram.Debug

	log.Infow("authorized", "bot", api.Self.UserName)
	return api
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kasuboski/serialz/pkg/bot"
	"github.com/kasuboski/serialz/pkg/conversation"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/notifier"
	"github.com/kasuboski/serialz/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

const webhookBuffer = 100

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the bot and the notifier",
	Long: `run the bot and the notifier.

Updates are received through a webhook when telegram.webhookURL is set and long polled otherwise.
Metrics are served on server.port in both modes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := loadConfig(true)
		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		store := openStore(ctx, cfg)
		defer store.Close()

		cat := newCatalog(cfg)
		api := newBotAPI(cfg)
		sender := bot.NewSender(api)

		engine := conversation.New(store, cat, sender, conversation.WithSessionTTL(cfg.Conversation.SessionTTL))

		location, err := cfg.Notifier.Location()
		if err != nil {
			log.Fatal("invalid notifier timezone", zap.Error(err))
		}

		n := notifier.New(store, cat, sender, notifier.Config{
			Daily:       cfg.Notifier.Daily,
			Weekly:      cfg.Notifier.Weekly,
			Location:    location,
			SendRate:    cfg.Notifier.SendRate,
			StopTimeout: cfg.Notifier.StopTimeout,
		})
		if err := n.Start(ctx); err != nil {
			log.Fatal("failed to start notifier", zap.Error(err))
		}
		defer n.Stop()

		b := bot.New(api, engine)
		if err := b.RegisterCommands(); err != nil {
			log.Warnw("failed to register commands", zap.Error(err))
		}

		var updates chan tgbotapi.Update
		if cfg.Telegram.WebhookURL != "" {
			updates = make(chan tgbotapi.Update, webhookBuffer)
			if err := b.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
				log.Fatal("failed to set webhook", zap.Error(err))
			}
		}

		srv := server.New(log, cfg.Telegram.WebhookPath, updates)
		go func() {
			if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
				log.Errorw("server stopped", zap.Error(err))
				stop()
			}
		}()

		if updates != nil {
			log.Infow("receiving updates through webhook", "path", cfg.Telegram.WebhookPath)
			err = b.Run(ctx, updates)
		} else {
			log.Info("polling for updates")
			err = b.Poll(ctx)
		}
		if err != nil {
			log.Error("bot stopped", zap.Error(err))
		}

		log.Info("shutting down")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"context"

	"github.com/kasuboski/serialz/pkg/bot"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/notifier"
	"github.com/spf13/cobra"
)

var fullCheck bool

// notifyCmd runs a single sweep outside the schedule
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "check for new episodes now",
	Long:  `check the series people are watching for new content and message every watcher`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(true)
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		store := openStore(ctx, cfg)
		defer store.Close()

		n := notifier.New(store, newCatalog(cfg), bot.NewSender(newBotAPI(cfg)), notifier.Config{
			SendRate: cfg.Notifier.SendRate,
		})

		var report notifier.Report
		if fullCheck {
			report = n.FullContentCheck(ctx)
		} else {
			report = n.CheckForUpdates(ctx)
		}

		log.Infow("sweep finished",
			"checked", report.Checked,
			"refreshed", report.Refreshed,
			"notified", report.Notified,
			"failed", report.Failed,
		)
	},
}

func init() {
	notifyCmd.Flags().BoolVar(&fullCheck, "full", false, "refresh cached series metadata before checking")
	rootCmd.AddCommand(notifyCmd)
}

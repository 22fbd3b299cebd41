package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var trackedKind string

// trackedCmd prints one of a user's lists straight from the database
var trackedCmd = &cobra.Command{
	Use:   "tracked <telegram-id>",
	Short: "show the series a user tracks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(false)
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := storage.ParseListKind(trackedKind)
		if err != nil {
			log.Fatal("invalid kind", zap.Error(err))
		}

		store := openStore(ctx, cfg)
		defer store.Close()

		user, err := store.GetUser(ctx, args[0])
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("no user with telegram id %s\n", args[0])
			return
		}
		if err != nil {
			log.Fatal("failed to get user", zap.Error(err))
		}

		tracked, err := store.ListTracked(ctx, user.ID, kind)
		if err != nil {
			log.Fatal("failed to list series", zap.Error(err))
		}

		fmt.Printf("%s (%d)\n", cases.Title(language.English).String(string(kind)), len(tracked))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPROGRESS\tUPDATED")
		for _, t := range tracked {
			progress := fmt.Sprintf("S%dE%d", t.CurrentSeason, t.CurrentEpisode)
			if t.IsWatched && t.WatchedDate != nil {
				progress = "finished " + t.WatchedDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Series.Name, progress, humanize.Time(t.LastUpdated))
		}
		w.Flush()
	},
}

func init() {
	trackedCmd.Flags().StringVar(&trackedKind, "kind", string(storage.ListWatching), "watching, watchlist or watched")
	rootCmd.AddCommand(trackedCmd)
}

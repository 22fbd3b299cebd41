package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/spf13/cobra"
)

// searchCmd queries tmdb the same way the bot does
var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "search tmdb for a series",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(false)
		log := logger.Get()
		if cfg.TMDB.APIKey == "" {
			log.Fatal("tmdb.apiKey is required")
		}

		ctx := logger.WithCtx(context.Background(), log)
		results := newCatalog(cfg).Search(ctx, strings.Join(args, " "))
		if len(results) == 0 {
			fmt.Println("no results")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tYEAR\tOVERVIEW")
		for _, r := range results {
			year := "-"
			if r.Year != nil {
				year = fmt.Sprint(*r.Year)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Name, year, shorten(r.Overview, 60))
		}
		w.Flush()
	},
}

func shorten(s string, n int) string {
	runes := []rune(strings.Join(strings.Fields(s), " "))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-3]) + "..."
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

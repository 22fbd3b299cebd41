package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type migrationVersioner interface {
	GetMigrationVersion(ctx context.Context) (version uint, dirty bool, err error)
}

// migrateCmd applies pending migrations without starting the bot
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(false)
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		store := openStore(ctx, cfg)
		defer store.Close()

		v, ok := store.(migrationVersioner)
		if !ok {
			return
		}

		version, dirty, err := v.GetMigrationVersion(ctx)
		if err != nil {
			log.Fatal("failed to read migration version", zap.Error(err))
		}
		fmt.Printf("schema version %d (dirty: %t)\n", version, dirty)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

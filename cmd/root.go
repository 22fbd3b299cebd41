package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kasuboski/serialz/pkg/catalog"
	"github.com/kasuboski/serialz/pkg/notifier"
	"github.com/kasuboski/serialz/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "serialz",
	Short: "serialz telegram bot",
	Long:  `serialz tracks the tv series you watch and tells you when new episodes air`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("SERIALZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	// the names used by existing deployments
	viper.BindEnv("telegram.token", "SERIALZ_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN")
	viper.BindEnv("tmdb.apiKey", "SERIALZ_TMDB_APIKEY", "TMDB_API_KEY")
	viper.BindEnv("telegram.webhookURL", "SERIALZ_TELEGRAM_WEBHOOKURL", "WEBHOOK_URL")

	viper.SetDefault("telegram.token", "")
	viper.SetDefault("telegram.webhookURL", "")
	viper.SetDefault("telegram.webhookPath", server.DefaultWebhookPath)
	viper.SetDefault("telegram.debug", false)

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.backoff", "500ms")
	viper.SetDefault("tmdb.maxRetries", 3)
	viper.SetDefault("tmdb.searchLimit", catalog.DefaultSearchLimit)

	viper.SetDefault("storage.filePath", "serialz.sqlite")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("notifier.daily", notifier.DefaultDaily)
	viper.SetDefault("notifier.weekly", notifier.DefaultWeekly)
	viper.SetDefault("notifier.timezone", "")
	viper.SetDefault("notifier.sendRate", notifier.DefaultSendRate)
	viper.SetDefault("notifier.stopTimeout", notifier.DefaultStopTimeout)

	viper.SetDefault("conversation.sessionTTL", "24h")

	viper.SetDefault("log.level", "")
}

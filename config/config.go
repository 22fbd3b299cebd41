package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram     Telegram     `json:"telegram" yaml:"telegram" mapstructure:"telegram"`
	TMDB         TMDB         `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Storage      Storage      `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server       Server       `json:"server" yaml:"server" mapstructure:"server"`
	Notifier     Notifier     `json:"notifier" yaml:"notifier" mapstructure:"notifier"`
	Conversation Conversation `json:"conversation" yaml:"conversation" mapstructure:"conversation"`
	Log          Log          `json:"log" yaml:"log" mapstructure:"log"`
}

// Telegram configures the bot. An empty WebhookURL means updates are long polled.
type Telegram struct {
	Token       string `json:"token" yaml:"token" mapstructure:"token" validate:"required"`
	WebhookURL  string `json:"webhookURL" yaml:"webhookURL" mapstructure:"webhookURL" validate:"omitempty,url"`
	WebhookPath string `json:"webhookPath" yaml:"webhookPath" mapstructure:"webhookPath" validate:"omitempty,startswith=/"`
	Debug       bool   `json:"debug" yaml:"debug" mapstructure:"debug"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
	Language    string        `json:"language" yaml:"language" mapstructure:"language"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff" validate:"gte=0"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	SearchLimit int           `json:"searchLimit" yaml:"searchLimit" mapstructure:"searchLimit" validate:"gte=0"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Notifier houses the cron schedules for new content checks
type Notifier struct {
	Daily       string        `json:"daily" yaml:"daily" mapstructure:"daily"`
	Weekly      string        `json:"weekly" yaml:"weekly" mapstructure:"weekly"`
	Timezone    string        `json:"timezone" yaml:"timezone" mapstructure:"timezone" validate:"omitempty,timezone"`
	SendRate    float64       `json:"sendRate" yaml:"sendRate" mapstructure:"sendRate" validate:"gte=0"`
	StopTimeout time.Duration `json:"stopTimeout" yaml:"stopTimeout" mapstructure:"stopTimeout" validate:"gte=0"`
}

type Conversation struct {
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL" mapstructure:"sessionTTL" validate:"gte=0"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Location resolves the notifier timezone, UTC when unset
func (n Notifier) Location() (*time.Location, error) {
	if n.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(n.Timezone)
}

var validate = validator.New()

// Validate checks the fields every command needs. Commands that only touch the database can
// skip it.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/serialz/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Telegram: Telegram{
				Token:      "my-bot-token",
				WebhookURL: "https://bot.example.com/telegram",
			},
			TMDB: TMDB{
				Scheme: "https",
				Host:   "my-host",
				APIKey: "my-api-key",
			},
			Storage: Storage{
				FilePath: "serialz.db",
			},
			Notifier: Notifier{
				Timezone:    "Europe/Berlin",
				StopTimeout: 10 * time.Second,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("tmdb.scheme", "https")
		cu.SetDefault("conversation.sessionTTL", "24h")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Scheme: "https",
			},
			Conversation: Conversation{
				SessionTTL: 24 * time.Hour,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func validConfig() Config {
	return Config{
		Telegram: Telegram{Token: "token"},
		TMDB:     TMDB{Scheme: "https", APIKey: "key"},
		Storage:  Storage{FilePath: "serialz.db"},
		Server:   Server{Port: 8080},
		Log:      Log{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.Telegram.Token = "" }, wantErr: true},
		{name: "missing api key", mutate: func(c *Config) { c.TMDB.APIKey = "" }, wantErr: true},
		{name: "missing database", mutate: func(c *Config) { c.Storage.FilePath = "" }, wantErr: true},
		{name: "bad webhook url", mutate: func(c *Config) { c.Telegram.WebhookURL = "not a url" }, wantErr: true},
		{name: "webhook path without slash", mutate: func(c *Config) { c.Telegram.WebhookPath = "hook" }, wantErr: true},
		{name: "bad scheme", mutate: func(c *Config) { c.TMDB.Scheme = "ftp" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Notifier.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "negative search limit", mutate: func(c *Config) { c.TMDB.SearchLimit = -1 }, wantErr: true},
		{name: "negative ttl", mutate: func(c *Config) { c.Conversation.SessionTTL = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotifierLocation(t *testing.T) {
	loc, err := Notifier{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = Notifier{Timezone: "Europe/Berlin"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

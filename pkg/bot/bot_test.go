package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kasuboski/serialz/pkg/bot/mocks"
	"github.com/kasuboski/serialz/pkg/catalog"
	catalogMocks "github.com/kasuboski/serialz/pkg/catalog/mocks"
	"github.com/kasuboski/serialz/pkg/conversation"
	"github.com/kasuboski/serialz/pkg/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testBot struct {
	bot     *Bot
	api     *mocks.MockBotAPI
	catalog *catalogMocks.MockCatalog
}

func newTestBot(t *testing.T) testBot {
	t.Helper()

	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	require.NoError(t, store.RunMigrations(ctx))

	api := mocks.NewMockBotAPI(ctrl)
	cat := catalogMocks.NewMockCatalog(ctrl)
	engine := conversation.New(store, cat, NewSender(api))

	return testBot{
		bot:     New(api, engine),
		api:     api,
		catalog: cat,
	}
}

func commandUpdate(text string, length int) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 5,
			From:      &tgbotapi.User{ID: 10, FirstName: "Ann", UserName: "ann"},
			Chat:      &tgbotapi.Chat{ID: 10},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
		},
	}
}

func TestChattable(t *testing.T) {
	t.Run("new message", func(t *testing.T) {
		c := chattable(conversation.Message{
			ChatID:   1,
			Text:     "*hi*",
			Markdown: true,
			Keyboard: [][]conversation.Button{{{Text: "Cancel", Data: "cancel"}}},
		})

		msg, ok := c.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(1), msg.ChatID)
		assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)

		markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		require.True(t, ok)
		require.Len(t, markup.InlineKeyboard, 1)
		assert.Equal(t, "cancel", *markup.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("edit", func(t *testing.T) {
		c := chattable(conversation.Message{ChatID: 1, Text: "done", EditMessageID: 9})

		edit, ok := c.(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Equal(t, 9, edit.MessageID)
		assert.Equal(t, "done", edit.Text)
		assert.Empty(t, edit.ParseMode)
		assert.Nil(t, edit.ReplyMarkup)
	})

	t.Run("no keyboard", func(t *testing.T) {
		msg := chattable(conversation.Message{ChatID: 1, Text: "plain"}).(tgbotapi.MessageConfig)
		assert.Nil(t, msg.ReplyMarkup)
	})
}

func TestSenderHonorsContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBotAPI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSender(api).Send(ctx, conversation.Message{ChatID: 1, Text: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandleCommand(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		msg, ok := c.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(10), msg.ChatID)
		assert.Contains(t, msg.Text, "Hi, Ann!")
		return tgbotapi.Message{}, nil
	})

	tb.bot.Handle(context.Background(), commandUpdate("/start", 6))
}

func TestHandleCallback(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Request(gomock.AssignableToTypeOf(tgbotapi.CallbackConfig{})).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	tb.api.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		edit, ok := c.(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Equal(t, 3, edit.MessageID)
		assert.Equal(t, "Operation cancelled.", edit.Text)
		return tgbotapi.Message{}, nil
	})

	tb.bot.Handle(context.Background(), tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: 10},
			Message: &tgbotapi.Message{
				MessageID: 3,
				Chat:      &tgbotapi.Chat{ID: 10},
			},
			Data: "cancel",
		},
	})
}

func TestHandleRecoversFromPanic(t *testing.T) {
	tb := newTestBot(t)

	tb.catalog.EXPECT().Search(gomock.Any(), "Foo").DoAndReturn(func(context.Context, string) []catalog.SearchResult {
		panic("boom")
	})
	tb.api.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		msg := c.(tgbotapi.MessageConfig)
		assert.Equal(t, apologyText, msg.Text)
		return tgbotapi.Message{}, nil
	})

	assert.NotPanics(t, func() {
		tb.bot.Handle(context.Background(), commandUpdate("/add Foo", 4))
	})
}

func TestHandleSendFailure(t *testing.T) {
	tb := newTestBot(t)

	// the reply, the engine's failure notice and the apology all fail
	tb.api.EXPECT().Send(gomock.Any()).Return(tgbotapi.Message{}, errors.New("forbidden")).Times(3)

	tb.bot.Handle(context.Background(), commandUpdate("/help", 5))
}

func TestHandleIgnoresUnsupported(t *testing.T) {
	tb := newTestBot(t)

	tb.bot.Handle(context.Background(), tgbotapi.Update{UpdateID: 3})
	tb.bot.Handle(context.Background(), tgbotapi.Update{
		UpdateID: 4,
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 10},
			Chat: &tgbotapi.Chat{ID: 10},
		},
	})
}

func TestRun(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Send(gomock.Any()).Return(tgbotapi.Message{}, nil).Times(2)

	updates := make(chan tgbotapi.Update, 2)
	updates <- commandUpdate("/start", 6)
	updates <- commandUpdate("/help", 5)
	close(updates)

	assert.NoError(t, tb.bot.Run(context.Background(), updates))
}

func TestRunStopsOnCancel(t *testing.T) {
	tb := newTestBot(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, tb.bot.Run(ctx, make(chan tgbotapi.Update)))
}

func TestPoll(t *testing.T) {
	tb := newTestBot(t)

	updates := make(chan tgbotapi.Update)
	close(updates)

	gomock.InOrder(
		tb.api.EXPECT().Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}).Return(&tgbotapi.APIResponse{Ok: true}, nil),
		tb.api.EXPECT().GetUpdatesChan(gomock.Any()).DoAndReturn(func(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
			assert.Equal(t, pollTimeout, config.Timeout)
			return updates
		}),
		tb.api.EXPECT().StopReceivingUpdates(),
	)

	assert.NoError(t, tb.bot.Poll(context.Background()))
}

func TestPollDeleteWebhookFails(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Request(gomock.Any()).Return(nil, errors.New("unauthorized"))

	assert.Error(t, tb.bot.Poll(context.Background()))
}

func TestRegisterCommands(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Request(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
		config, ok := c.(tgbotapi.SetMyCommandsConfig)
		require.True(t, ok)
		assert.Len(t, config.Commands, len(conversation.Commands))
		assert.Equal(t, "start", config.Commands[0].Command)
		return &tgbotapi.APIResponse{Ok: true}, nil
	})

	assert.NoError(t, tb.bot.RegisterCommands())
}

func TestSetWebhook(t *testing.T) {
	tb := newTestBot(t)

	tb.api.EXPECT().Request(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
		webhook, ok := c.(tgbotapi.WebhookConfig)
		require.True(t, ok)
		assert.Equal(t, "example.com", webhook.URL.Host)
		assert.True(t, webhook.DropPendingUpdates)
		return &tgbotapi.APIResponse{Ok: true}, nil
	})

	assert.NoError(t, tb.bot.SetWebhook("https://example.com/hook"))
}

package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/conversation"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/metrics"
	"go.uber.org/zap"
)

const (
	pollTimeout     = 60
	pruneInterval   = time.Hour
	apologyText     = "Sorry, an error occurred. Please try again later."
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomePanic    = "panic"
	kindMessage     = "message"
	kindCommand     = "command"
	kindCallback    = "callback"
	kindUnsupported = "unsupported"
)

// Bot feeds telegram updates into the conversation engine one at a time
type Bot struct {
	api    BotAPI
	engine *conversation.Engine
	clock  clockwork.Clock
}

type Option func(*Bot)

func WithClock(clock clockwork.Clock) Option {
	return func(b *Bot) {
		b.clock = clock
	}
}

func New(api BotAPI, engine *conversation.Engine, opts ...Option) *Bot {
	b := &Bot{
		api:    api,
		engine: engine,
		clock:  clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// RegisterCommands publishes the command menu shown by telegram clients
func (b *Bot) RegisterCommands() error {
	commands := make([]tgbotapi.BotCommand, 0, len(conversation.Commands))
	for _, c := range conversation.Commands {
		commands = append(commands, tgbotapi.BotCommand{Command: c.Name, Description: c.Description})
	}

	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// SetWebhook points telegram at url and drops updates queued while the bot was down
func (b *Bot) SetWebhook(url string) error {
	webhook, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}
	webhook.DropPendingUpdates = true

	if _, err := b.api.Request(webhook); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// Poll removes any webhook, drops pending updates and long polls until ctx is done
func (b *Bot) Poll(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	config := tgbotapi.NewUpdate(0)
	config.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(config)
	defer b.api.StopReceivingUpdates()

	return b.Run(ctx, updates)
}

// Run handles updates sequentially until ctx is done or updates is closed
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	log := logger.FromCtx(ctx)

	ticker := b.clock.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("bot context cancelled")
			return nil
		case <-ticker.Chan():
			if removed := b.engine.PruneSessions(); removed > 0 {
				log.Debugw("pruned expired conversations", "count", removed)
			}
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			b.Handle(ctx, u)
		}
	}
}

// Handle processes one update. Errors and panics are logged and answered with an apology so
// the loop keeps going.
func (b *Bot) Handle(ctx context.Context, u tgbotapi.Update) {
	var chatID int64
	if chat := u.FromChat(); chat != nil {
		chatID = chat.ID
	}

	log := logger.FromCtx(ctx, "update_id", u.UpdateID, "chat_id", chatID, "id", uuid.NewString())
	ctx = logger.WithCtx(ctx, log)

	kind := updateKind(u)
	outcome := outcomeOK
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("panic while handling update", "panic", r, "stack", string(debug.Stack()))
			outcome = outcomePanic
			b.apologize(ctx, chatID)
		}
		metrics.UpdatesHandled.WithLabelValues(kind, outcome).Inc()
	}()

	if err := b.dispatch(ctx, u); err != nil {
		log.Errorw("failed to handle update", zap.Error(err))
		outcome = outcomeError
		b.apologize(ctx, chatID)
	}
}

func (b *Bot) dispatch(ctx context.Context, u tgbotapi.Update) error {
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			logger.FromCtx(ctx).Debugw("failed to answer callback", zap.Error(err))
		}
		if cq.Message == nil || cq.Message.Chat == nil || cq.From == nil {
			return nil
		}

		in := conversation.Update{
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			From:      fromUser(cq.From),
			Callback:  true,
		}
		return b.engine.HandleCallback(ctx, in, cq.Data)
	case u.Message != nil:
		m := u.Message
		if m.From == nil || m.Chat == nil {
			return nil
		}

		in := conversation.Update{
			ChatID:    m.Chat.ID,
			MessageID: m.MessageID,
			From:      fromUser(m.From),
		}
		if m.IsCommand() {
			return b.engine.HandleCommand(ctx, in, m.Command(), m.CommandArguments())
		}
		if m.Text == "" {
			return nil
		}
		return b.engine.HandleText(ctx, in, m.Text)
	}

	return nil
}

func (b *Bot) apologize(ctx context.Context, chatID int64) {
	if chatID == 0 {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, apologyText)); err != nil {
		logger.FromCtx(ctx).Warnw("failed to send apology", zap.Error(err))
	}
}

func updateKind(u tgbotapi.Update) string {
	switch {
	case u.CallbackQuery != nil:
		return kindCallback
	case u.Message != nil && u.Message.IsCommand():
		return kindCommand
	case u.Message != nil:
		return kindMessage
	default:
		return kindUnsupported
	}
}

func fromUser(u *tgbotapi.User) conversation.User {
	return conversation.User{
		ID:        u.ID,
		Username:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kasuboski/serialz/pkg/conversation"
)

// Sender delivers conversation messages through the telegram api
type Sender struct {
	api BotAPI
}

func NewSender(api BotAPI) *Sender {
	return &Sender{api: api}
}

func (s *Sender) Send(ctx context.Context, msg conversation.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.api.Send(chattable(msg))
	return err
}

func chattable(msg conversation.Message) tgbotapi.Chattable {
	parseMode := ""
	if msg.Markdown {
		parseMode = tgbotapi.ModeMarkdown
	}

	markup := inlineKeyboard(msg.Keyboard)

	if msg.EditMessageID != 0 {
		edit := tgbotapi.NewEditMessageText(msg.ChatID, msg.EditMessageID, msg.Text)
		edit.ParseMode = parseMode
		edit.ReplyMarkup = markup
		return edit
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	out.ParseMode = parseMode
	if markup != nil {
		out.ReplyMarkup = *markup
	}
	return out
}

func inlineKeyboard(keyboard [][]conversation.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, buttons)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// send delivers any outgoing request, logging failures
func (b *Bot) send(c tgbotapi.Chattable) {
	if b.api == nil {
		return // For testing
	}
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("Failed to send message", zap.Error(err))
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	b.send(msg)
}

// editWithKeyboard replaces the text and keyboard of a message the bot sent
func (b *Bot) editWithKeyboard(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if keyboard == nil {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
		return
	}
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *keyboard))
}

// answerCallback removes the loading state of a button, optionally with a toast
func (b *Bot) answerCallback(queryID, text string) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}

package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const genericError = "An error occurred while processing your request. Please try again."

// handleMessage processes a single message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
			b.sendText(message.Chat.ID, genericError)
		}
	}()

	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// Plain text gets the home screen and the command list
	s, err := b.commandScreen(ctx, message.From.ID, "")
	if err != nil {
		b.replyError(message.Chat.ID, "message", err)
		return
	}
	b.sendWithKeyboard(message.Chat.ID, s.text, s.keyboard)
}

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	ctx := context.Background()

	s, notice, err := b.callbackScreen(ctx, query.From.ID, query.Data)
	if err != nil {
		b.logger.Error("Failed to handle callback",
			zap.Error(err),
			zap.Int64("user_id", query.From.ID),
			zap.String("callback_data", query.Data),
		)
		b.answerCallback(query.ID, genericError)
		return
	}

	// Answer the callback query to remove loading state
	b.answerCallback(query.ID, notice)

	if query.Message != nil && s.text != "" {
		b.editWithKeyboard(query.Message.Chat.ID, query.Message.MessageID, s.text, s.keyboard)
	}
}

func (b *Bot) replyError(chatID int64, action string, err error) {
	b.logger.Error("Failed to render view",
		zap.Error(err),
		zap.String("action", action),
		zap.Int64("chat_id", chatID),
	)
	b.sendText(chatID, genericError)
}

package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"shelf/internal/views"
)

// NewBot creates a new Telegram bot
func NewBot(token string, builder *views.Builder, allowedUserIDs []int64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	b := newBot(builder, allowedUserIDs, logger)
	b.api = api
	return b, nil
}

func newBot(builder *views.Builder, allowedUserIDs []int64, logger *zap.Logger) *Bot {
	allowedUsers := make(map[int64]bool)
	for _, id := range allowedUserIDs {
		allowedUsers[id] = true
	}

	return &Bot{
		views:        builder,
		allowedUsers: allowedUsers,
		states:       make(map[int64]*Selection),
		logger:       logger,
	}
}

package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"shelf/internal/views"
)

// Bot represents the Telegram bot wrapper
type Bot struct {
	api          *tgbotapi.BotAPI
	views        *views.Builder
	allowedUsers map[int64]bool
	states       map[int64]*Selection
	statesMu     sync.RWMutex
	logger       *zap.Logger
}

// Selection tracks the interactive choices of one user across messages
type Selection struct {
	Genre  string
	Tab    views.LibraryTab
	Option string
}

// selection returns a copy of the user's current selection
func (b *Bot) selection(userID int64) Selection {
	b.statesMu.RLock()
	defer b.statesMu.RUnlock()
	if s, ok := b.states[userID]; ok {
		return *s
	}
	return Selection{}
}

// updateSelection applies fn to the user's selection and returns the result
func (b *Bot) updateSelection(userID int64, fn func(*Selection)) Selection {
	b.statesMu.Lock()
	defer b.statesMu.Unlock()
	s, ok := b.states[userID]
	if !ok {
		s = &Selection{}
		b.states[userID] = s
	}
	fn(s)
	return *s
}

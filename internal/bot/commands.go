package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"shelf/internal/nav"
	"shelf/internal/views"
)

// pageScreen renders one of the navigable pages for the given selection
func (b *Bot) pageScreen(ctx context.Context, page nav.Page, sel Selection) (screen, error) {
	switch page {
	case nav.Library:
		v, err := b.views.Library(ctx, views.LibrarySelection{Genre: sel.Genre, Tab: sel.Tab})
		if err != nil {
			return screen{}, err
		}
		return screen{text: renderLibrary(v), keyboard: libraryKeyboard(v)}, nil
	case nav.Discussion:
		v, err := b.views.Discussion(ctx, views.DiscussionSelection{Option: sel.Option})
		if err != nil {
			return screen{}, err
		}
		return screen{text: renderDiscussion(v), keyboard: discussionKeyboard(v)}, nil
	case nav.Meetings:
		v, err := b.views.Meetings(ctx)
		if err != nil {
			return screen{}, err
		}
		return screen{text: renderMeetings(v), keyboard: navKeyboard()}, nil
	case nav.Discover:
		v, err := b.views.Discover(ctx)
		if err != nil {
			return screen{}, err
		}
		return screen{text: renderDiscover(v), keyboard: navKeyboard()}, nil
	default:
		v, err := b.views.Home(ctx)
		if err != nil {
			return screen{}, err
		}
		return screen{text: renderHome(v), keyboard: navKeyboard()}, nil
	}
}

func (b *Bot) membersScreen(ctx context.Context) (screen, error) {
	v, err := b.views.Members(ctx)
	if err != nil {
		return screen{}, err
	}
	return screen{text: renderMembers(v), keyboard: navKeyboard()}, nil
}

// commandScreen maps a command to its screen. Unknown commands show home
// followed by the command list.
func (b *Bot) commandScreen(ctx context.Context, userID int64, command string) (screen, error) {
	switch command {
	case "members":
		return b.membersScreen(ctx)
	case string(nav.Home), string(nav.Library), string(nav.Discussion), string(nav.Meetings), string(nav.Discover):
		return b.pageScreen(ctx, nav.Parse(command), b.selection(userID))
	}

	s, err := b.pageScreen(ctx, nav.Home, b.selection(userID))
	if err != nil {
		return screen{}, err
	}
	s.text += "\n" + commandList
	return s, nil
}

// handleCommand answers a slash command with the matching screen
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.Command() == "post" {
		b.handlePost(ctx, message)
		return
	}

	s, err := b.commandScreen(ctx, message.From.ID, message.Command())
	if err != nil {
		b.replyError(message.Chat.ID, "command", err)
		return
	}
	b.sendWithKeyboard(message.Chat.ID, s.text, s.keyboard)
}

// parsePost splits "/post Title | content" arguments
func parsePost(args string) views.DiscussionSelection {
	title, content, _ := strings.Cut(args, "|")
	return views.DiscussionSelection{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
}

// handlePost acknowledges a new discussion thread. The thread list is not changed.
func (b *Bot) handlePost(ctx context.Context, message *tgbotapi.Message) {
	_, notice, err := b.views.PostDiscussion(ctx, parsePost(message.CommandArguments()))
	if err != nil {
		b.replyError(message.Chat.ID, "post", err)
		return
	}
	b.sendText(message.Chat.ID, notice)
}

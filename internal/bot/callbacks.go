package bot

import (
	"context"
	"strings"

	"shelf/internal/nav"
	"shelf/internal/views"
)

// callbackScreen applies a button click to the user's selection and returns the
// screen to show in place, plus an optional toast. Unknown data is ignored.
func (b *Bot) callbackScreen(ctx context.Context, userID int64, data string) (screen, string, error) {
	prefix, value, _ := strings.Cut(data, ":")

	switch prefix {
	case "page":
		s, err := b.pageScreen(ctx, nav.Parse(value), b.selection(userID))
		return s, "", err

	case "genre":
		sel := b.updateSelection(userID, func(s *Selection) { s.Genre = value })
		s, err := b.pageScreen(ctx, nav.Library, sel)
		return s, "", err

	case "tab":
		sel := b.updateSelection(userID, func(s *Selection) { s.Tab = views.ParseTab(value) })
		s, err := b.pageScreen(ctx, nav.Library, sel)
		return s, "", err

	case "poll":
		sel := b.updateSelection(userID, func(s *Selection) { s.Option = value })
		s, err := b.pageScreen(ctx, nav.Discussion, sel)
		return s, "", err

	case "vote":
		sel := b.selection(userID)
		v, notice, err := b.views.SubmitVote(ctx, views.DiscussionSelection{Option: sel.Option})
		if err != nil {
			return screen{}, "", err
		}
		return screen{text: renderDiscussion(v), keyboard: discussionKeyboard(v)}, notice, nil
	}

	return screen{}, "", nil
}

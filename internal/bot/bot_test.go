package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"shelf/internal/nav"
	"shelf/internal/storage/fixtures"
	"shelf/internal/views"
)

// Note: We can't easily mock tgbotapi.BotAPI, so tests focus on internal logic
// without actually sending messages to Telegram

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	db := fixtures.NewCatalog()
	if err := db.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize catalog: %v", err)
	}
	clock := func() time.Time {
		return time.Date(2025, time.October, 5, 10, 0, 0, 0, time.UTC)
	}

	return &Bot{
		api:          nil, // Not needed for internal logic tests
		views:        views.NewBuilder(db, fixtures.Showcase(), views.WithClock(clock)),
		allowedUsers: map[int64]bool{123: true},
		states:       make(map[int64]*Selection),
		logger:       zap.NewNop(), // Use nop logger for tests
	}
}

func TestBot_CommandScreens(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()

	tests := []struct {
		command string
		want    string
	}{
		{"home", "Next meeting: The Midnight Library"},
		{"library", "Library · My Readings · genre: all"},
		{"discussion", "What should we read for November 2025?"},
		{"meetings", "Past meetings"},
		{"discover", "Featured author: Matt Haig"},
		{"members", "Books read: 129"},
	}

	for _, tt := range tests {
		s, err := bot.commandScreen(ctx, 123, tt.command)
		if err != nil {
			t.Fatalf("/%s: unexpected error: %v", tt.command, err)
		}
		if !strings.Contains(s.text, tt.want) {
			t.Errorf("/%s: expected %q in\n%s", tt.command, tt.want, s.text)
		}
		if strings.Contains(s.text, "Available commands") {
			t.Errorf("/%s: command list should only follow unknown commands", tt.command)
		}
		if s.keyboard == nil {
			t.Errorf("/%s: expected a keyboard", tt.command)
		}
	}
}

func TestBot_UnknownCommandShowsHome(t *testing.T) {
	bot := newTestBot(t)

	for _, command := range []string{"start", "bogus", ""} {
		s, err := bot.commandScreen(context.Background(), 123, command)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(s.text, "Pick of the month") {
			t.Errorf("/%s: expected the home screen", command)
		}
		if !strings.Contains(s.text, "Available commands") {
			t.Errorf("/%s: expected the command list", command)
		}
	}
}

func TestBot_GenreAndTabCallbacks(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()
	userID := int64(123)

	s, _, err := bot.callbackScreen(ctx, userID, "genre:Mystery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bot.selection(userID).Genre; got != "Mystery" {
		t.Errorf("Expected genre 'Mystery', got '%s'", got)
	}
	if !strings.Contains(s.text, "Finished: 2 · Reading: 0 · Avg rating: 4.5") {
		t.Errorf("Expected Mystery stats, got\n%s", s.text)
	}

	s, _, err = bot.callbackScreen(ctx, userID, "tab:club-archive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bot.selection(userID).Tab; got != views.TabClubArchive {
		t.Errorf("Expected tab club-archive, got '%s'", got)
	}
	if !strings.Contains(s.text, "Where the Crawdads Sing") || !strings.Contains(s.text, "The Thursday Murder Club") {
		t.Errorf("Expected both Mystery books in the archive, got\n%s", s.text)
	}
	if strings.Contains(s.text, "Educated") {
		t.Errorf("Did not expect non-Mystery books, got\n%s", s.text)
	}

	// Genre survives the tab change and unknown tabs fall back to the first tab
	_, _, err = bot.callbackScreen(ctx, userID, "tab:nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel := bot.selection(userID)
	if sel.Genre != "Mystery" || sel.Tab != views.TabMyReadings {
		t.Errorf("Unexpected selection %+v", sel)
	}
}

func TestBot_SelectionsArePerUser(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()

	if _, _, err := bot.callbackScreen(ctx, 1, "genre:Fantasy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bot.selection(2).Genre; got != "" {
		t.Errorf("Expected no selection for another user, got '%s'", got)
	}
}

func TestBot_PollAndVote(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()
	userID := int64(123)

	// Voting without an option asks for one
	_, notice, err := bot.callbackScreen(ctx, userID, "vote")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notice != views.NoticeSelectOption {
		t.Errorf("Expected select-option notice, got '%s'", notice)
	}

	s, _, err := bot.callbackScreen(ctx, userID, "poll:option3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.text, "● Circe by Madeline Miller: 18 votes (34%)") {
		t.Errorf("Expected option3 selected, got\n%s", s.text)
	}
	if !hasButton(s.keyboard, "vote") {
		t.Error("Expected a vote button once an option is selected")
	}

	s, notice, err = bot.callbackScreen(ctx, userID, "vote")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notice != views.NoticeVoteReceived {
		t.Errorf("Expected vote-received notice, got '%s'", notice)
	}
	// Counts do not change
	if !strings.Contains(s.text, "18 votes (34%)") || !strings.Contains(s.text, "53 total votes") {
		t.Errorf("Expected unchanged counts, got\n%s", s.text)
	}
}

func TestBot_PageCallbackAndUnknownData(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()

	s, _, err := bot.callbackScreen(ctx, 123, "page:meetings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.text, "Meetings") {
		t.Errorf("Expected meetings screen, got\n%s", s.text)
	}

	s, _, err = bot.callbackScreen(ctx, 123, "page:nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.text, clubName) {
		t.Errorf("Expected unknown page to render home, got\n%s", s.text)
	}

	s, notice, err := bot.callbackScreen(ctx, 123, "mystery-button")
	if err != nil || s.text != "" || notice != "" {
		t.Errorf("Expected unknown data to be ignored, got %q %q %v", s.text, notice, err)
	}
}

func TestBot_HandleUpdatesWithoutAPI(t *testing.T) {
	bot := newTestBot(t)

	// Authorized and unauthorized updates must not panic without an API
	bot.HandleWebhookUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		From:     &tgbotapi.User{ID: 123},
		Chat:     &tgbotapi.Chat{ID: 456},
		Text:     "/library",
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 8}},
	}})
	bot.HandleWebhookUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: 999},
		Chat: &tgbotapi.Chat{ID: 456},
		Text: "/home",
	}})
	bot.HandleWebhookUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "q1",
		From: &tgbotapi.User{ID: 999},
		Data: "genre:Mystery",
	}})

	if got := bot.selection(999).Genre; got != "" {
		t.Errorf("Unauthorized callback must not change state, got '%s'", got)
	}
}

func TestParsePost(t *testing.T) {
	sel := parsePost("  New thread | Some thoughts ")
	if sel.Title != "New thread" || sel.Content != "Some thoughts" {
		t.Errorf("Unexpected selection %+v", sel)
	}

	sel = parsePost("Only a title")
	if sel.Title != "Only a title" || sel.Content != "" {
		t.Errorf("Unexpected selection %+v", sel)
	}
}

func TestNavRow(t *testing.T) {
	row := navRow()
	if len(row) != len(nav.Entries()) {
		t.Fatalf("Expected %d buttons, got %d", len(nav.Entries()), len(row))
	}
	if row[0].CallbackData == nil || *row[0].CallbackData != "page:home" {
		t.Errorf("Expected first button to open home")
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{4, "★★★★☆"},
		{7, "★★★★★"},
		{-2, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := stars(tt.rating); got != tt.want {
			t.Errorf("stars(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func hasButton(k *tgbotapi.InlineKeyboardMarkup, data string) bool {
	if k == nil {
		return false
	}
	for _, row := range k.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == data {
				return true
			}
		}
	}
	return false
}

package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"shelf/internal/nav"
	"shelf/internal/views"
)

const (
	clubName    = "Shelf Indulgence"
	clubTagline = "Reading and sipping in the 6ix."
)

const commandList = `Available commands:
/home - Pick of the month and next meeting
/library - Club books by genre and shelf
/discussion - Next-pick poll and threads
/meetings - Upcoming and past meetings
/discover - Featured authors and events
/members - Members, badges and club stats
/post Title | Your thoughts - Start a discussion`

// screen is a rendered view ready to be sent or edited in place
type screen struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

// stars draws a rating out of five, clamping out-of-range values
func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func renderHome(v views.Home) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 %s\n%s\n", clubName, clubTagline)

	if v.HasPick {
		fmt.Fprintf(&sb, "\nPick of the month (%s)\n%s by %s\n%s\nProgress: %d%%\n",
			v.Pick.Label, v.PickBook.Title, v.PickBook.Author, v.Pick.Blurb, v.Progress)
	}

	if v.HasMeeting {
		m := v.NextMeeting
		fmt.Fprintf(&sb, "\nNext meeting: %s\n%s · %s\n%s\nRSVP %d/%d · in %d days\n",
			m.Book, m.Date.Format("Mon, Jan 2"), m.Time, m.Location, m.RSVP, m.Capacity, v.DaysUntil)
	} else {
		sb.WriteString("\nNo upcoming meetings scheduled.\n")
	}

	if v.Quote.Text != "" {
		fmt.Fprintf(&sb, "\nQuote of the week\n“%s”\n- %s (shared by %s)\n", v.Quote.Text, v.Quote.Source, v.Quote.SharedBy)
	}

	if len(v.Highlights) > 0 {
		sb.WriteString("\nCommunity highlights\n")
		for _, h := range v.Highlights {
			fmt.Fprintf(&sb, "• %s %s\n  %s\n", h.Member, h.Headline, h.Detail)
		}
	}
	return sb.String()
}

func renderLibrary(v views.Library) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 Library · %s · genre: %s\n\n", v.Tab.Label(), v.Genre)

	switch v.Tab {
	case views.TabClubArchive:
		if len(v.Archive) == 0 {
			sb.WriteString("No finished club books for this genre.\n")
		}
		for _, b := range v.Archive {
			fmt.Fprintf(&sb, "%s by %s\n  %s %d · %s\n", b.Title, b.Author, b.Month, b.Year, stars(b.Rating))
		}
	case views.TabWantToRead:
		if len(v.WantToRead) == 0 {
			sb.WriteString("Nothing on the want-to-read shelf for this genre.\n")
		}
		for _, b := range v.WantToRead {
			fmt.Fprintf(&sb, "%s by %s (%s)\n", b.Title, b.Author, b.Genre)
		}
	default:
		if len(v.Reading) == 0 {
			sb.WriteString("Nothing being read in this genre.\n")
		}
		for _, b := range v.Reading {
			fmt.Fprintf(&sb, "%s by %s\n  Progress: %d%%\n", b.Title, b.Author, b.Progress)
		}
	}

	avg := "-"
	if v.Stats.HasRating {
		avg = fmt.Sprintf("%.1f", v.Stats.AvgRating)
	}
	fmt.Fprintf(&sb, "\nFinished: %d · Reading: %d · Avg rating: %s\n", v.Stats.Finished, v.Stats.Reading, avg)
	return sb.String()
}

func renderDiscussion(v views.Discussion) string {
	var sb strings.Builder
	sb.WriteString("💬 Discussion\n")

	if v.HasPoll {
		fmt.Fprintf(&sb, "\n%s\n", v.Poll.Question)
		for _, o := range v.Poll.Options {
			mark := "○"
			if o.Selected {
				mark = "●"
			}
			fmt.Fprintf(&sb, "%s %s: %d votes (%d%%)\n", mark, o.Text, o.Votes, o.Percent)
		}
		fmt.Fprintf(&sb, "%d total votes · ends in %s\n", v.Poll.TotalVotes, v.Poll.EndsIn)
	}

	sb.WriteString("\nRecent discussions\n")
	for _, t := range v.Threads {
		fmt.Fprintf(&sb, "\n%s", t.Title)
		if t.Tag != "" {
			fmt.Fprintf(&sb, " [%s]", t.Tag)
		}
		fmt.Fprintf(&sb, "\n%s · %s\n%s\n%d replies · %d likes\n", t.Author, t.Time, t.Content, t.Replies, t.Likes)
	}
	return sb.String()
}

func renderMeetings(v views.Meetings) string {
	var sb strings.Builder
	sb.WriteString("📅 Meetings\n\nUpcoming\n")
	if len(v.Upcoming) == 0 {
		sb.WriteString("No upcoming meetings scheduled.\n")
	}
	for _, m := range v.Upcoming {
		fmt.Fprintf(&sb, "%s\n%s · %s\n%s\nRSVP %d/%d\n", m.Book, m.Date.Format("Monday, January 2, 2006"), m.Time, m.Location, m.RSVP, m.Capacity)
		for _, p := range m.Prompts {
			fmt.Fprintf(&sb, "  ? %s\n", p)
		}
	}

	sb.WriteString("\nPast meetings\n")
	for _, m := range v.Past {
		fmt.Fprintf(&sb, "%s · %s · %d attended\n", m.Book, m.Date.Format("Jan 2, 2006"), m.RSVP)
		if m.Notes != "" {
			fmt.Fprintf(&sb, "  %s\n", m.Notes)
		}
		for _, k := range m.KeyTakeaways {
			fmt.Fprintf(&sb, "  • %s\n", k)
		}
	}

	if len(v.Guidelines) > 0 {
		sb.WriteString("\nMeeting guidelines\n")
		for _, g := range v.Guidelines {
			fmt.Fprintf(&sb, "• %s\n", g)
		}
	}
	return sb.String()
}

func renderDiscover(v views.Discover) string {
	var sb strings.Builder
	sb.WriteString("✨ Discover\n")

	if v.HasFeatured {
		a := v.Featured
		fmt.Fprintf(&sb, "\nFeatured author: %s (b. %d)\n%s\nNotable works: %s\n", a.Name, a.BirthYear, a.Bio, strings.Join(a.NotableWorks, ", "))
		for _, f := range a.FunFacts {
			fmt.Fprintf(&sb, "• %s\n", f)
		}
	}

	if len(v.More) > 0 {
		sb.WriteString("\nMore authors\n")
		for _, a := range v.More {
			fmt.Fprintf(&sb, "%s · %s\n", a.Name, strings.Join(a.WorksPreview, ", "))
		}
	}

	if len(v.Lists) > 0 {
		sb.WriteString("\nReading lists\n")
		for _, l := range v.Lists {
			fmt.Fprintf(&sb, "• %s (%d books)\n", l.Title, l.Count)
		}
	}

	if len(v.Events) > 0 {
		sb.WriteString("\nLiterary events\n")
		for _, e := range v.Events {
			fmt.Fprintf(&sb, "• %s · %s\n", e.Title, e.When)
		}
	}
	return sb.String()
}

func renderMembers(v views.Members) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👥 Members\n\nMembers: %d · Books read: %d · Avg per member: %d · Badges: %d\n",
		v.Stats.Members, v.Stats.TotalBooksRead, v.Stats.AvgBooksRead, v.Stats.BadgesEarned)

	for _, m := range v.Members {
		fmt.Fprintf(&sb, "\n%s (%s) · %d books\nReading: %s\nLoves: %s\n",
			m.Name, m.Initials, m.BooksRead, m.CurrentlyReading, strings.Join(m.FavoriteGenres, ", "))
		names := make([]string, 0, len(m.BadgeStyles))
		for _, s := range m.BadgeStyles {
			names = append(names, s.Name)
		}
		if len(names) > 0 {
			fmt.Fprintf(&sb, "Badges: %s\n", strings.Join(names, ", "))
		}
	}
	return sb.String()
}

// navRow links to every dashboard page
func navRow() []tgbotapi.InlineKeyboardButton {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(nav.Entries()))
	for _, e := range nav.Entries() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(e.Label, "page:"+string(e.Page)))
	}
	return row
}

func navKeyboard() *tgbotapi.InlineKeyboardMarkup {
	k := tgbotapi.NewInlineKeyboardMarkup(navRow())
	return &k
}

// libraryKeyboard offers genre buttons (3 per row) and the shelf tabs
func libraryKeyboard(v views.Library) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var current []tgbotapi.InlineKeyboardButton
	for i, g := range v.Genres {
		label := g
		if g == v.Genre {
			label = "✓ " + g
		}
		current = append(current, tgbotapi.NewInlineKeyboardButtonData(label, "genre:"+g))
		if len(current) == 3 || i == len(v.Genres)-1 {
			rows = append(rows, current)
			current = nil
		}
	}

	tabs := make([]tgbotapi.InlineKeyboardButton, 0, len(views.LibraryTabs))
	for _, t := range views.LibraryTabs {
		label := t.Label()
		if t == v.Tab {
			label = "✓ " + label
		}
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(label, "tab:"+string(t)))
	}
	rows = append(rows, tabs, navRow())

	k := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &k
}

// discussionKeyboard offers one button per poll option plus a vote button once
// an option is selected
func discussionKeyboard(v views.Discussion) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if v.HasPoll {
		for _, o := range v.Poll.Options {
			label := o.Text
			if o.Selected {
				label = "● " + label
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, "poll:"+o.ID)))
		}
		if v.CanSubmitVote {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Submit vote", "vote")))
		}
	}
	rows = append(rows, navRow())

	k := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &k
}

package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"shelf/internal/badges"
	"shelf/internal/models"
	"shelf/internal/shelf"
	"shelf/internal/storage"
)

// Builder composes view models from the catalog. It holds no per-user state:
// every selection arrives with the call.
type Builder struct {
	db       storage.Storage
	showcase models.Showcase
	now      func() time.Time
}

// Option configures a Builder
type Option func(*Builder)

// WithClock overrides the time source used for countdowns
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a view builder over the catalog and editorial copy
func NewBuilder(db storage.Storage, showcase models.Showcase, opts ...Option) *Builder {
	b := &Builder{
		db:       db,
		showcase: showcase,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Home is the landing view
type Home struct {
	Pick        models.PickOfMonth
	PickBook    models.Book
	HasPick     bool
	Progress    int
	NextMeeting models.Meeting
	HasMeeting  bool
	DaysUntil   int
	Quote       models.Quote
	Highlights  []models.Highlight
}

// Home builds the landing view
func (b *Builder) Home(ctx context.Context) (Home, error) {
	books, err := b.db.ListBooks(ctx)
	if err != nil {
		return Home{}, fmt.Errorf("failed to load books: %w", err)
	}
	meetings, err := b.db.ListMeetings(ctx)
	if err != nil {
		return Home{}, fmt.Errorf("failed to load meetings: %w", err)
	}

	v := Home{
		Pick:       b.showcase.Pick,
		Quote:      b.showcase.Quote,
		Highlights: b.showcase.Highlights,
	}
	for _, book := range books {
		if book.ID == v.Pick.BookID {
			v.PickBook = book
			v.HasPick = true
			v.Progress = book.Progress
			break
		}
	}

	// The next meeting is the earliest upcoming one, whatever the storage order
	if upcoming := shelf.MeetingsWithStatus(meetings, models.MeetingUpcoming); len(upcoming) > 0 {
		v.NextMeeting = lo.MinBy(upcoming, func(a, b models.Meeting) bool {
			return a.Date.Before(b.Date)
		})
		v.HasMeeting = true
		v.DaysUntil = shelf.DaysUntil(b.now(), v.NextMeeting.Date)
	}
	return v, nil
}

// LibraryTab is a shelf of the library view
type LibraryTab string

const (
	TabMyReadings  LibraryTab = "my-readings"
	TabClubArchive LibraryTab = "club-archive"
	TabWantToRead  LibraryTab = "want-to-read"
)

// LibraryTabs lists the tabs in display order
var LibraryTabs = []LibraryTab{TabMyReadings, TabClubArchive, TabWantToRead}

// ParseTab maps a tab identifier, defaulting to the first tab
func ParseTab(s string) LibraryTab {
	for _, t := range LibraryTabs {
		if string(t) == s {
			return t
		}
	}
	return TabMyReadings
}

// Label returns the tab caption
func (t LibraryTab) Label() string {
	switch t {
	case TabClubArchive:
		return "Club Archive"
	case TabWantToRead:
		return "Want to Read"
	default:
		return "My Readings"
	}
}

// LibrarySelection is the interactive state of the library view
type LibrarySelection struct {
	Genre string
	Tab   LibraryTab
}

// ReadingStats are the counters shown under the current reads
type ReadingStats struct {
	Finished  int
	Reading   int
	AvgRating float64
	HasRating bool
}

// Library is the library view
type Library struct {
	Genre      string
	Tab        LibraryTab
	Genres     []string
	Reading    []models.Book
	Archive    []models.Book
	WantToRead []models.Book
	Stats      ReadingStats
}

// Library builds the library view for the given selection. An empty genre
// means no filtering; an unknown genre yields empty shelves.
func (b *Builder) Library(ctx context.Context, sel LibrarySelection) (Library, error) {
	books, err := b.db.ListBooks(ctx)
	if err != nil {
		return Library{}, fmt.Errorf("failed to load books: %w", err)
	}

	genre := sel.Genre
	if genre == "" {
		genre = shelf.AllGenres
	}
	filtered := shelf.FilterByGenre(books, genre)
	groups := shelf.PartitionBooks(filtered)

	v := Library{
		Genre:      genre,
		Tab:        ParseTab(string(sel.Tab)),
		Genres:     shelf.GenreOptions(books),
		Reading:    groups[models.StatusReading],
		WantToRead: groups[models.StatusWantToRead],
		Archive:    make([]models.Book, 0),
	}
	for _, book := range groups[models.StatusFinished] {
		if book.Month != "" {
			v.Archive = append(v.Archive, book)
		}
	}

	counts := shelf.CountBooksByStatus(filtered)
	v.Stats.Finished = counts[models.StatusFinished]
	v.Stats.Reading = counts[models.StatusReading]
	v.Stats.AvgRating, v.Stats.HasRating = shelf.AverageRating(filtered)
	return v, nil
}

// DiscussionSelection is the interactive state of the discussion view
type DiscussionSelection struct {
	Option  string
	Title   string
	Content string
}

// PollOptionView is a poll option with its share of the vote
type PollOptionView struct {
	models.PollOption
	Percent  int
	Selected bool
}

// PollView is the active poll as displayed
type PollView struct {
	models.Poll
	Options []PollOptionView
}

// Thread is a discussion with the author's avatar initials
type Thread struct {
	models.Discussion
	Initials string
}

// Discussion is the discussion view
type Discussion struct {
	Poll          PollView
	HasPoll       bool
	Selected      string
	CanSubmitVote bool
	Title         string
	Content       string
	CanPost       bool
	Threads       []Thread
}

// Discussion builds the discussion view. A missing poll is not an error.
func (b *Builder) Discussion(ctx context.Context, sel DiscussionSelection) (Discussion, error) {
	discussions, err := b.db.ListDiscussions(ctx)
	if err != nil {
		return Discussion{}, fmt.Errorf("failed to load discussions: %w", err)
	}

	v := Discussion{
		Selected: sel.Option,
		Title:    sel.Title,
		Content:  sel.Content,
		CanPost:  strings.TrimSpace(sel.Title) != "" && strings.TrimSpace(sel.Content) != "",
		Threads:  make([]Thread, 0, len(discussions)),
	}
	for _, d := range discussions {
		v.Threads = append(v.Threads, Thread{Discussion: d, Initials: Initials(d.Author)})
	}

	p, err := b.db.GetActivePoll(ctx)
	switch {
	case errors.Is(err, storage.ErrNoActivePoll):
		return v, nil
	case err != nil:
		return Discussion{}, fmt.Errorf("failed to load poll: %w", err)
	}

	percents := shelf.PollPercentages(p)
	v.HasPoll = true
	v.Poll = PollView{Poll: p, Options: make([]PollOptionView, 0, len(p.Options))}
	for i, o := range p.Options {
		v.Poll.Options = append(v.Poll.Options, PollOptionView{
			PollOption: o,
			Percent:    percents[i],
			Selected:   o.ID == sel.Option,
		})
	}
	v.CanSubmitVote = p.HasOption(sel.Option)
	return v, nil
}

// Meetings is the meetings view
type Meetings struct {
	Upcoming   []models.Meeting
	Past       []models.Meeting
	Guidelines []string
}

// Meetings builds the meetings view
func (b *Builder) Meetings(ctx context.Context) (Meetings, error) {
	meetings, err := b.db.ListMeetings(ctx)
	if err != nil {
		return Meetings{}, fmt.Errorf("failed to load meetings: %w", err)
	}

	groups := shelf.PartitionMeetings(meetings)
	return Meetings{
		Upcoming:   groups[models.MeetingUpcoming],
		Past:       groups[models.MeetingPast],
		Guidelines: b.showcase.Guidelines,
	}, nil
}

// maxWorksPreview caps the notable works listed on an author card
const maxWorksPreview = 3

// AuthorCard is an author in the "more authors" grid
type AuthorCard struct {
	models.Author
	WorksPreview []string
}

// Discover is the discover view
type Discover struct {
	Featured    models.Author
	HasFeatured bool
	More        []AuthorCard
	Lists       []models.ReadingList
	Events      []models.LiteraryEvent
}

// Discover builds the discover view. The first author is featured.
func (b *Builder) Discover(ctx context.Context) (Discover, error) {
	authors, err := b.db.ListAuthors(ctx)
	if err != nil {
		return Discover{}, fmt.Errorf("failed to load authors: %w", err)
	}

	v := Discover{
		More:   make([]AuthorCard, 0),
		Lists:  b.showcase.Lists,
		Events: b.showcase.Events,
	}
	if len(authors) == 0 {
		return v, nil
	}

	v.Featured = authors[0]
	v.HasFeatured = true
	for _, a := range authors[1:] {
		works := a.NotableWorks
		if len(works) > maxWorksPreview {
			works = works[:maxWorksPreview]
		}
		v.More = append(v.More, AuthorCard{Author: a, WorksPreview: works})
	}
	return v, nil
}

// MemberCard is a member with styled badges
type MemberCard struct {
	models.Member
	BadgeStyles []badges.Style
}

// Members is the members view
type Members struct {
	Members []MemberCard
	Stats   shelf.ClubStats
	Guide   []badges.GuideEntry
}

// Members builds the members view
func (b *Builder) Members(ctx context.Context) (Members, error) {
	members, err := b.db.ListMembers(ctx)
	if err != nil {
		return Members{}, fmt.Errorf("failed to load members: %w", err)
	}

	v := Members{
		Members: make([]MemberCard, 0, len(members)),
		Stats:   shelf.Summarize(members),
		Guide:   badges.Guide(),
	}
	for _, m := range members {
		v.Members = append(v.Members, MemberCard{Member: m, BadgeStyles: badges.LookupAll(m.Badges)})
	}
	return v, nil
}

// Initials returns the first letter of every word of name
func Initials(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			sb.WriteRune(r)
			break
		}
	}
	return sb.String()
}

// Acknowledgements for the discussion actions. Neither action changes the
// catalog: vote counts and the thread list stay as loaded.
const (
	NoticeVoteReceived = "Vote received. Thanks for weighing in!"
	NoticeSelectOption = "Select an option to vote."
	NoticePostReceived = "Discussion received. Thanks for sharing!"
	NoticeIncomplete   = "Add a title and your thoughts before posting."
)

// SubmitVote acknowledges a vote for sel.Option
func (b *Builder) SubmitVote(ctx context.Context, sel DiscussionSelection) (Discussion, string, error) {
	v, err := b.Discussion(ctx, sel)
	if err != nil {
		return Discussion{}, "", err
	}
	if !v.CanSubmitVote {
		return v, NoticeSelectOption, nil
	}
	return v, NoticeVoteReceived, nil
}

// PostDiscussion acknowledges a new discussion. The draft is kept only when
// it could not be posted.
func (b *Builder) PostDiscussion(ctx context.Context, sel DiscussionSelection) (Discussion, string, error) {
	v, err := b.Discussion(ctx, sel)
	if err != nil {
		return Discussion{}, "", err
	}
	if !v.CanPost {
		return v, NoticeIncomplete, nil
	}
	v.Title, v.Content, v.CanPost = "", "", false
	return v, NoticePostReceived, nil
}

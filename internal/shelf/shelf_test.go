package shelf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf/internal/models"
	"shelf/internal/storage/fixtures"
)

func TestFilterByGenre(t *testing.T) {
	books := fixtures.Default().Books

	t.Run("mystery", func(t *testing.T) {
		got := FilterByGenre(books, "Mystery")
		titles := make([]string, 0, len(got))
		for _, b := range got {
			titles = append(titles, b.Title)
		}
		assert.Equal(t, []string{"Where the Crawdads Sing", "The Thursday Murder Club"}, titles)
	})

	t.Run("all returns everything", func(t *testing.T) {
		assert.Equal(t, books, FilterByGenre(books, AllGenres))
	})

	t.Run("unknown genre is empty", func(t *testing.T) {
		got := FilterByGenre(books, "Cookbooks")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("genre match is exact", func(t *testing.T) {
		assert.Empty(t, FilterByGenre(books, "mystery"))
	})
}

func TestFilterByGenre_Partition(t *testing.T) {
	books := fixtures.Default().Books

	seen := make(map[int]int)
	for _, g := range GenreOptions(books)[1:] {
		for _, b := range FilterByGenre(books, g) {
			assert.Equal(t, g, b.Genre)
			seen[b.ID]++
		}
	}

	require.Len(t, seen, len(books))
	for id, n := range seen {
		assert.Equal(t, 1, n, "book %d appears in %d genre buckets", id, n)
	}
}

func TestGenreOptions(t *testing.T) {
	got := GenreOptions(fixtures.Default().Books)
	assert.Equal(t, []string{
		"all", "Fiction", "Memoir", "Historical Fiction", "Self-Help",
		"Mystery", "Science Fiction", "Fantasy",
	}, got)

	assert.Equal(t, []string{"all"}, GenreOptions(nil))
}

func TestPartitionBooks(t *testing.T) {
	books := fixtures.Default().Books
	groups := PartitionBooks(books)

	total := 0
	ids := make(map[int]bool)
	for status, group := range groups {
		for _, b := range group {
			assert.Equal(t, status, b.Status)
			assert.False(t, ids[b.ID], "book %d in more than one bucket", b.ID)
			ids[b.ID] = true
		}
		total += len(group)
	}
	assert.Equal(t, len(books), total)

	assert.Len(t, groups[models.StatusReading], 1)
	assert.Len(t, groups[models.StatusFinished], 5)
	assert.Len(t, groups[models.StatusWantToRead], 2)
}

func TestPartitionBooks_KeepsUnknownStatus(t *testing.T) {
	books := []models.Book{
		{ID: 1, Status: models.StatusReading},
		{ID: 2, Status: "lent-out"},
	}
	groups := PartitionBooks(books)

	assert.Len(t, groups["lent-out"], 1)
	assert.Empty(t, groups[models.StatusFinished])
	assert.Empty(t, BooksWithStatus(books, "abandoned"))
}

func TestPartitionMeetings(t *testing.T) {
	meetings := fixtures.Default().Meetings
	groups := PartitionMeetings(meetings)

	assert.Len(t, groups[models.MeetingUpcoming], 1)
	assert.Len(t, groups[models.MeetingPast], 3)
	assert.Equal(t, len(meetings), len(groups[models.MeetingUpcoming])+len(groups[models.MeetingPast]))

	assert.Equal(t, groups[models.MeetingPast], MeetingsWithStatus(meetings, models.MeetingPast))
	assert.Empty(t, MeetingsWithStatus(meetings, "cancelled"))
}

func TestCountBooksByStatus(t *testing.T) {
	counts := CountBooksByStatus(fixtures.Default().Books)
	assert.Equal(t, 5, counts[models.StatusFinished])
	assert.Equal(t, 1, counts[models.StatusReading])
	assert.Equal(t, 2, counts[models.StatusWantToRead])

	empty := CountBooksByStatus(nil)
	assert.Equal(t, map[models.BookStatus]int{
		models.StatusFinished:   0,
		models.StatusReading:    0,
		models.StatusWantToRead: 0,
	}, empty)
}

func TestCurrentlyReading_EmptyCollection(t *testing.T) {
	got := BooksWithStatus(nil, models.StatusReading)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestPollPercentages(t *testing.T) {
	p := models.Poll{
		TotalVotes: 53,
		Options: []models.PollOption{
			{ID: "a", Votes: 15},
			{ID: "b", Votes: 12},
			{ID: "c", Votes: 18},
			{ID: "d", Votes: 8},
		},
	}

	got := PollPercentages(p)
	assert.Equal(t, []int{28, 23, 34, 15}, got)

	sum := 0
	for _, v := range got {
		sum += v
	}
	assert.Equal(t, 100, sum)
}

func TestPollPercentages_NotRenormalized(t *testing.T) {
	p := models.Poll{
		TotalVotes: 3,
		Options: []models.PollOption{
			{ID: "a", Votes: 1},
			{ID: "b", Votes: 1},
			{ID: "c", Votes: 1},
		},
	}
	assert.Equal(t, []int{33, 33, 33}, PollPercentages(p))
}

func TestVotePercentage_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0, VotePercentage(5, 0))
	assert.Equal(t, 0, VotePercentage(0, -1))
	assert.Empty(t, PollPercentages(models.Poll{}))
}

func TestSummarize(t *testing.T) {
	stats := Summarize(fixtures.Default().Members)
	assert.Equal(t, ClubStats{
		Members:        6,
		TotalBooksRead: 129,
		AvgBooksRead:   22,
		BadgesEarned:   14,
	}, stats)

	assert.Equal(t, ClubStats{}, Summarize(nil))
}

func TestAverageRating(t *testing.T) {
	avg, ok := AverageRating(fixtures.Default().Books)
	require.True(t, ok)
	assert.InDelta(t, 4.6, avg, 1e-9)

	_, ok = AverageRating([]models.Book{{ID: 1, Status: models.StatusWantToRead}})
	assert.False(t, ok)
}

func TestDaysUntil(t *testing.T) {
	meeting := time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"twelve days out", time.Date(2025, time.October, 5, 9, 30, 0, 0, time.UTC), 12},
		{"late evening still counts the day", time.Date(2025, time.October, 5, 23, 59, 0, 0, time.UTC), 12},
		{"same day", time.Date(2025, time.October, 17, 18, 0, 0, 0, time.UTC), 0},
		{"already past", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysUntil(tc.now, meeting))
		})
	}
}

package shelf

import (
	"github.com/samber/lo"

	"shelf/internal/models"
)

// BooksWithStatus returns the books in the given status bucket
func BooksWithStatus(books []models.Book, status models.BookStatus) []models.Book {
	return lo.Filter(books, func(b models.Book, _ int) bool {
		return b.Status == status
	})
}

// MeetingsWithStatus returns the meetings in the given status bucket
func MeetingsWithStatus(meetings []models.Meeting, status models.MeetingStatus) []models.Meeting {
	return lo.Filter(meetings, func(m models.Meeting, _ int) bool {
		return m.Status == status
	})
}

// PartitionBooks groups books by status. Every known status has an entry,
// possibly empty; statuses outside the known set keep their own bucket so
// the union of all buckets is always the input.
func PartitionBooks(books []models.Book) map[models.BookStatus][]models.Book {
	groups := lo.GroupBy(books, func(b models.Book) models.BookStatus {
		return b.Status
	})
	for _, s := range models.BookStatuses {
		if _, ok := groups[s]; !ok {
			groups[s] = []models.Book{}
		}
	}
	return groups
}

// PartitionMeetings groups meetings by status, same contract as PartitionBooks
func PartitionMeetings(meetings []models.Meeting) map[models.MeetingStatus][]models.Meeting {
	groups := lo.GroupBy(meetings, func(m models.Meeting) models.MeetingStatus {
		return m.Status
	})
	for _, s := range models.MeetingStatuses {
		if _, ok := groups[s]; !ok {
			groups[s] = []models.Meeting{}
		}
	}
	return groups
}

// CountBooksByStatus returns the size of every status bucket.
// Known statuses are always present, with zero when empty.
func CountBooksByStatus(books []models.Book) map[models.BookStatus]int {
	counts := lo.CountValuesBy(books, func(b models.Book) models.BookStatus {
		return b.Status
	})
	for _, s := range models.BookStatuses {
		if _, ok := counts[s]; !ok {
			counts[s] = 0
		}
	}
	return counts
}

package shelf

import (
	"math"
	"time"

	"github.com/samber/lo"

	"shelf/internal/models"
)

// VotePercentage returns votes as a whole percentage of total.
// A non-positive total yields 0.
func VotePercentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}

// PollPercentages returns the percentage of every option in option order.
// Values are rounded independently and are not adjusted to sum to 100.
func PollPercentages(p models.Poll) []int {
	return lo.Map(p.Options, func(o models.PollOption, _ int) int {
		return VotePercentage(o.Votes, p.TotalVotes)
	})
}

// ClubStats summarises the membership
type ClubStats struct {
	Members        int `json:"members"`
	TotalBooksRead int `json:"total_books_read"`
	AvgBooksRead   int `json:"avg_books_read"`
	BadgesEarned   int `json:"badges_earned"`
}

// Summarize computes the club statistics. The average is the rounded mean
// of books read per member, 0 for no members.
func Summarize(members []models.Member) ClubStats {
	stats := ClubStats{
		Members: len(members),
		TotalBooksRead: lo.SumBy(members, func(m models.Member) int {
			return m.BooksRead
		}),
		BadgesEarned: lo.SumBy(members, func(m models.Member) int {
			return len(m.Badges)
		}),
	}
	if stats.Members > 0 {
		stats.AvgBooksRead = int(math.Round(float64(stats.TotalBooksRead) / float64(stats.Members)))
	}
	return stats
}

// AverageRating returns the mean rating of the rated books rounded to one
// decimal. ok is false when no book carries a rating.
func AverageRating(books []models.Book) (avg float64, ok bool) {
	rated := lo.Filter(books, func(b models.Book, _ int) bool {
		return b.Rating > 0
	})
	if len(rated) == 0 {
		return 0, false
	}
	sum := lo.SumBy(rated, func(b models.Book) int { return b.Rating })
	return math.Round(float64(sum)/float64(len(rated))*10) / 10, true
}

// DaysUntil returns the number of calendar days from now to date, in date's
// location. Dates in the past yield 0.
func DaysUntil(now, date time.Time) int {
	loc := date.Location()
	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	y, m, d = date.Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, loc)

	days := int(math.Round(target.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

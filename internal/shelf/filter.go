// Package shelf holds the derived metrics shared by the dashboard views:
// genre filtering, status partitions, poll percentages and club statistics.
//
// Every function here is total. Empty or unknown input yields an empty,
// non-nil result or a zero value, never an error.
package shelf

import (
	"github.com/samber/lo"

	"shelf/internal/models"
)

// AllGenres is the genre filter value that disables filtering
const AllGenres = "all"

// FilterByGenre returns the books whose genre equals genre exactly.
// AllGenres returns the whole collection.
func FilterByGenre(books []models.Book, genre string) []models.Book {
	if genre == AllGenres {
		return append(make([]models.Book, 0, len(books)), books...)
	}
	return lo.Filter(books, func(b models.Book, _ int) bool {
		return b.Genre == genre
	})
}

// GenreOptions returns AllGenres followed by the distinct genres of books
// in the order they first appear.
func GenreOptions(books []models.Book) []string {
	genres := lo.Uniq(lo.Map(books, func(b models.Book, _ int) string {
		return b.Genre
	}))
	return append([]string{AllGenres}, genres...)
}

package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelf/internal/models"
	"shelf/internal/shelf"
	"shelf/internal/storage"
)

func (s *Server) apiError(c *gin.Context, err error) {
	s.logger.Error("API request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// apiBooks lists books, optionally narrowed by ?genre= and ?status=
func (s *Server) apiBooks(c *gin.Context) {
	books, err := s.db.ListBooks(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}

	books = shelf.FilterByGenre(books, c.DefaultQuery("genre", shelf.AllGenres))
	if status := c.Query("status"); status != "" {
		books = shelf.BooksWithStatus(books, models.BookStatus(status))
	}
	c.JSON(http.StatusOK, books)
}

func (s *Server) apiGenres(c *gin.Context) {
	books, err := s.db.ListBooks(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelf.GenreOptions(books))
}

func (s *Server) apiDiscussions(c *gin.Context) {
	discussions, err := s.db.ListDiscussions(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, discussions)
}

func (s *Server) apiPoll(c *gin.Context) {
	poll, err := s.db.GetActivePoll(c.Request.Context())
	if errors.Is(err, storage.ErrNoActivePoll) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"poll":        poll,
		"percentages": shelf.PollPercentages(poll),
	})
}

// apiMeetings lists meetings, optionally narrowed by ?status=
func (s *Server) apiMeetings(c *gin.Context) {
	meetings, err := s.db.ListMeetings(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		meetings = shelf.MeetingsWithStatus(meetings, models.MeetingStatus(status))
	}
	c.JSON(http.StatusOK, meetings)
}

func (s *Server) apiAuthors(c *gin.Context) {
	authors, err := s.db.ListAuthors(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (s *Server) apiMembers(c *gin.Context) {
	members, err := s.db.ListMembers(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// bookCounts is the shelf summary served by /api/stats. Upcoming counts the
// want-to-read shelf.
type bookCounts struct {
	Total    int `json:"total"`
	Finished int `json:"finished"`
	Reading  int `json:"reading"`
	Upcoming int `json:"upcoming"`
}

// apiStats reports club statistics and per-shelf book counts
func (s *Server) apiStats(c *gin.Context) {
	ctx := c.Request.Context()
	members, err := s.db.ListMembers(ctx)
	if err != nil {
		s.apiError(c, err)
		return
	}
	books, err := s.db.ListBooks(ctx)
	if err != nil {
		s.apiError(c, err)
		return
	}

	counts := shelf.CountBooksByStatus(books)
	resp := gin.H{
		"club": shelf.Summarize(members),
		"books": bookCounts{
			Total:    len(books),
			Finished: counts[models.StatusFinished],
			Reading:  counts[models.StatusReading],
			Upcoming: counts[models.StatusWantToRead],
		},
	}
	if avg, ok := shelf.AverageRating(books); ok {
		resp["avg_rating"] = avg
	}
	c.JSON(http.StatusOK, resp)
}

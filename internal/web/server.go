// Package web serves the dashboard over HTTP: server-rendered pages, a
// read-only JSON API, health checks and static assets.
package web

import (
	"io/fs"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelf/internal/storage"
	"shelf/internal/views"
)

// Options tunes the HTTP surface
type Options struct {
	// Requests per second allowed per client IP; 0 disables limiting
	RateLimitPerSecond uint
}

// Server owns the gin router and the page and API handlers
type Server struct {
	router *gin.Engine
	views  *views.Builder
	db     storage.Storage
	logger *zap.Logger
}

// NewServer builds the router with every dashboard route registered
func NewServer(db storage.Storage, builder *views.Builder, logger *zap.Logger, opts Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		router: gin.New(),
		views:  builder,
		db:     db,
		logger: logger,
	}

	r := s.router
	r.Use(gin.Recovery(), requestLogger(logger))
	if opts.RateLimitPerSecond > 0 {
		r.Use(rateLimiter(opts.RateLimitPerSecond))
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handlePage)
	r.GET("/members", s.handleMembers)
	r.POST("/discussion/vote", s.handleVote)
	r.POST("/discussion/posts", s.handlePost)

	api := r.Group("/api", cors.Default())
	api.GET("/books", s.apiBooks)
	api.GET("/genres", s.apiGenres)
	api.GET("/discussions", s.apiDiscussions)
	api.GET("/poll", s.apiPoll)
	api.GET("/meetings", s.apiMeetings)
	api.GET("/authors", s.apiAuthors)
	api.GET("/members", s.apiMembers)
	api.GET("/stats", s.apiStats)

	return s, nil
}

// Router exposes the engine so the caller can mount it or add routes
func (s *Server) Router() *gin.Engine {
	return s.router
}

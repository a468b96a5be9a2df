package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelf/internal/nav"
	"shelf/internal/views"
)

const (
	clubName    = "Shelf Indulgence"
	clubTagline = "Reading and sipping in the 6ix."
	membersPage = "members"
)

type navItem struct {
	nav.Entry
	Href   string
	Active bool
}

// shell is the data every page is rendered with
type shell struct {
	Club    string
	Tagline string
	Title   string
	Nav     []navItem
	Page    string
	Notice  string
	View    any
}

func newShell(page string, title string, view any) shell {
	items := make([]navItem, 0, len(nav.Entries()))
	for _, e := range nav.Entries() {
		items = append(items, navItem{
			Entry:  e,
			Href:   "/?page=" + string(e.Page),
			Active: string(e.Page) == page,
		})
	}
	return shell{
		Club:    clubName,
		Tagline: clubTagline,
		Title:   title,
		Nav:     items,
		Page:    page,
		View:    view,
	}
}

func (s *Server) render(c *gin.Context, sh shell) {
	c.HTML(http.StatusOK, "layout.html", sh)
}

func (s *Server) fail(c *gin.Context, action string, err error) {
	s.logger.Error("Failed to build view",
		zap.Error(err),
		zap.String("action", action),
		zap.String("path", c.Request.URL.Path),
	)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// handlePage renders exactly one navigable page; unknown ids render home
func (s *Server) handlePage(c *gin.Context) {
	ctx := c.Request.Context()
	page := nav.Parse(c.Query("page"))

	var (
		view any
		err  error
	)
	switch page {
	case nav.Library:
		view, err = s.views.Library(ctx, views.LibrarySelection{
			Genre: c.Query("genre"),
			Tab:   views.LibraryTab(c.Query("tab")),
		})
	case nav.Discussion:
		view, err = s.views.Discussion(ctx, views.DiscussionSelection{Option: c.Query("option")})
	case nav.Meetings:
		view, err = s.views.Meetings(ctx)
	case nav.Discover:
		view, err = s.views.Discover(ctx)
	default:
		view, err = s.views.Home(ctx)
	}
	if err != nil {
		s.fail(c, string(page), err)
		return
	}

	s.render(c, newShell(string(page), page.Label(), view))
}

func (s *Server) handleMembers(c *gin.Context) {
	v, err := s.views.Members(c.Request.Context())
	if err != nil {
		s.fail(c, membersPage, err)
		return
	}
	s.render(c, newShell(membersPage, "Members", v))
}

// handleVote acknowledges a vote without changing any counts
func (s *Server) handleVote(c *gin.Context) {
	v, notice, err := s.views.SubmitVote(c.Request.Context(), views.DiscussionSelection{
		Option: c.PostForm("option"),
	})
	if err != nil {
		s.fail(c, "vote", err)
		return
	}

	sh := newShell(string(nav.Discussion), nav.Discussion.Label(), v)
	sh.Notice = notice
	s.render(c, sh)
}

// handlePost acknowledges a new discussion without adding it to the list
func (s *Server) handlePost(c *gin.Context) {
	v, notice, err := s.views.PostDiscussion(c.Request.Context(), views.DiscussionSelection{
		Option:  c.PostForm("option"),
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	})
	if err != nil {
		s.fail(c, "post", err)
		return
	}

	sh := newShell(string(nav.Discussion), nav.Discussion.Label(), v)
	sh.Notice = notice
	s.render(c, sh)
}

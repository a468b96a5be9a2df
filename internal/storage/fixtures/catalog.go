package fixtures

import (
	"context"
	"slices"
	"sync"

	"shelf/internal/models"
	"shelf/internal/storage"
)

// Data is a complete catalog snapshot
type Data struct {
	Books       []models.Book
	Discussions []models.Discussion
	Poll        *models.Poll
	Meetings    []models.Meeting
	Authors     []models.Author
	Members     []models.Member
}

// Default returns the club's sample data
func Default() Data {
	p := poll()
	return Data{
		Books:       books(),
		Discussions: discussions(),
		Poll:        &p,
		Meetings:    meetings(),
		Authors:     authors(),
		Members:     members(),
	}
}

// Catalog is an in-memory, read-only implementation of storage.Storage
type Catalog struct {
	mu     sync.RWMutex
	data   Data
	seeded bool
}

var _ storage.Storage = (*Catalog)(nil)

// NewCatalog creates an empty catalog; Initialize fills it with Default data
func NewCatalog() *Catalog {
	return &Catalog{}
}

// NewCatalogWith creates a catalog holding exactly the given data
func NewCatalogWith(data Data) *Catalog {
	return &Catalog{data: data, seeded: true}
}

// Initialize loads the sample data unless the catalog was created with its own
func (c *Catalog) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.seeded {
		c.data = Default()
		c.seeded = true
	}
	return nil
}

// ListBooks returns all books in catalog order
func (c *Catalog) ListBooks(ctx context.Context) ([]models.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append(make([]models.Book, 0, len(c.data.Books)), c.data.Books...), nil
}

// ListDiscussions returns all discussions, newest first
func (c *Catalog) ListDiscussions(ctx context.Context) ([]models.Discussion, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append(make([]models.Discussion, 0, len(c.data.Discussions)), c.data.Discussions...), nil
}

// GetActivePoll returns the open poll
func (c *Catalog) GetActivePoll(ctx context.Context) (models.Poll, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data.Poll == nil {
		return models.Poll{}, storage.ErrNoActivePoll
	}
	p := *c.data.Poll
	p.Options = slices.Clone(p.Options)
	return p, nil
}

// ListMeetings returns all meetings, most recent first
func (c *Catalog) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Meeting, 0, len(c.data.Meetings))
	for _, m := range c.data.Meetings {
		m.KeyTakeaways = slices.Clone(m.KeyTakeaways)
		m.Prompts = slices.Clone(m.Prompts)
		out = append(out, m)
	}
	return out, nil
}

// ListAuthors returns all authors, featured author first
func (c *Catalog) ListAuthors(ctx context.Context) ([]models.Author, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Author, 0, len(c.data.Authors))
	for _, a := range c.data.Authors {
		a.NotableWorks = slices.Clone(a.NotableWorks)
		a.Genres = slices.Clone(a.Genres)
		a.FunFacts = slices.Clone(a.FunFacts)
		out = append(out, a)
	}
	return out, nil
}

// ListMembers returns all members
func (c *Catalog) ListMembers(ctx context.Context) ([]models.Member, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Member, 0, len(c.data.Members))
	for _, m := range c.data.Members {
		m.FavoriteGenres = slices.Clone(m.FavoriteGenres)
		m.Badges = slices.Clone(m.Badges)
		out = append(out, m)
	}
	return out, nil
}

// Close does nothing for the in-memory catalog
func (c *Catalog) Close() error {
	return nil
}

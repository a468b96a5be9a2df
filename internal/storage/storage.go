package storage

import (
	"context"
	"errors"

	"shelf/internal/models"
)

// ErrNoActivePoll is returned when the catalog has no open poll
var ErrNoActivePoll = errors.New("no active poll")

// Storage defines the read-only catalog the dashboard renders from.
// Implementations return collections in display order and never hand out
// slices the caller could use to modify the catalog.
type Storage interface {
	// Book operations
	ListBooks(ctx context.Context) ([]models.Book, error)

	// Discussion operations
	ListDiscussions(ctx context.Context) ([]models.Discussion, error)
	GetActivePoll(ctx context.Context) (models.Poll, error)

	// Meeting operations
	ListMeetings(ctx context.Context) ([]models.Meeting, error)

	// People
	ListAuthors(ctx context.Context) ([]models.Author, error)
	ListMembers(ctx context.Context) ([]models.Member, error)

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}

package fixtures

import (
	"context"
	"errors"
	"testing"

	"shelf/internal/models"
	"shelf/internal/storage"
)

func TestCatalog_InitializeLoadsDefaults(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()

	books, err := c.ListBooks(ctx)
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected empty catalog before Initialize, got %d books", len(books))
	}

	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize catalog: %v", err)
	}

	books, err = c.ListBooks(ctx)
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 8 {
		t.Errorf("Expected 8 books, got %d", len(books))
	}

	members, err := c.ListMembers(ctx)
	if err != nil {
		t.Fatalf("Failed to list members: %v", err)
	}
	if len(members) != 6 {
		t.Errorf("Expected 6 members, got %d", len(members))
	}

	meetings, err := c.ListMeetings(ctx)
	if err != nil {
		t.Fatalf("Failed to list meetings: %v", err)
	}
	if len(meetings) != 4 {
		t.Errorf("Expected 4 meetings, got %d", len(meetings))
	}

	p, err := c.GetActivePoll(ctx)
	if err != nil {
		t.Fatalf("Failed to get poll: %v", err)
	}
	if p.TotalVotes != 53 || len(p.Options) != 4 {
		t.Errorf("Unexpected poll: %+v", p)
	}
}

func TestCatalog_SeededDataSurvivesInitialize(t *testing.T) {
	c := NewCatalogWith(Data{
		Books: []models.Book{{ID: 99, Title: "Only Book", Genre: "Poetry", Status: models.StatusReading}},
	})
	ctx := context.Background()

	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize catalog: %v", err)
	}

	books, _ := c.ListBooks(ctx)
	if len(books) != 1 || books[0].Title != "Only Book" {
		t.Errorf("Expected seeded book to remain, got %+v", books)
	}

	_, err := c.GetActivePoll(ctx)
	if !errors.Is(err, storage.ErrNoActivePoll) {
		t.Errorf("Expected ErrNoActivePoll, got %v", err)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize catalog: %v", err)
	}

	members, _ := c.ListMembers(ctx)
	members[0].Badges[0] = "Tampered"
	members[0].BooksRead = 1000

	again, _ := c.ListMembers(ctx)
	if again[0].Badges[0] != "Founding Member" {
		t.Errorf("Expected badge list to be unaffected, got %q", again[0].Badges[0])
	}
	if again[0].BooksRead != 24 {
		t.Errorf("Expected books read to be unaffected, got %d", again[0].BooksRead)
	}

	p, _ := c.GetActivePoll(ctx)
	p.Options[0].Votes = 0
	p2, _ := c.GetActivePoll(ctx)
	if p2.Options[0].Votes != 15 {
		t.Errorf("Expected poll votes to be unaffected, got %d", p2.Options[0].Votes)
	}
}

func TestDefault_StatusesAreKnown(t *testing.T) {
	for _, b := range Default().Books {
		switch b.Status {
		case models.StatusFinished, models.StatusReading, models.StatusWantToRead:
		default:
			t.Errorf("Book %q has unknown status %q", b.Title, b.Status)
		}
	}
	for _, m := range Default().Meetings {
		if m.Status != models.MeetingUpcoming && m.Status != models.MeetingPast {
			t.Errorf("Meeting %d has unknown status %q", m.ID, m.Status)
		}
	}
}

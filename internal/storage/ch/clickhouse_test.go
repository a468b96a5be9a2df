package ch

import (
	"context"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clickhouseTC "github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"shelf/internal/models"
	"shelf/internal/storage"
	"shelf/migrations"
)

// setupTestDB creates a migrated and seeded ClickHouse instance using testcontainers
func setupTestDB(t *testing.T) (*ClickHouseDB, func()) {
	ctx := context.Background()

	// Start ClickHouse container
	clickhouseContainer, err := clickhouseTC.Run(ctx,
		"clickhouse/clickhouse-server:24.3.3.102-alpine",
		clickhouseTC.WithUsername("default"),
		clickhouseTC.WithPassword(""),
		clickhouseTC.WithDatabase("default"),
	)
	require.NoError(t, err, "Failed to start ClickHouse container")

	// Get connection details
	host, err := clickhouseContainer.Host(ctx)
	require.NoError(t, err)

	port, err := clickhouseContainer.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	// Apply the embedded migrations through database/sql
	sqlDB := clickhouse.OpenDB(Options(host, port.Int(), "default", "default", "", false))
	err = migrations.Up(sqlDB)
	require.NoError(t, err, "Failed to run migrations")
	require.NoError(t, sqlDB.Close())

	// Create database connection
	db, err := NewClickHouseDB(host, port.Int(), "default", "default", "", false)
	require.NoError(t, err, "Failed to connect to ClickHouse")

	// Cleanup function
	cleanup := func() {
		db.Close()
		clickhouseContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestClickHouseDB_Catalog(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.Initialize(ctx))

	t.Run("Books", func(t *testing.T) {
		books, err := db.ListBooks(ctx)
		require.NoError(t, err)
		require.Len(t, books, 8)

		assert.Equal(t, "The Midnight Library", books[0].Title)
		assert.Equal(t, models.StatusReading, books[0].Status)
		assert.Equal(t, 40, books[0].Progress)
		assert.Equal(t, 0, books[0].Rating)

		assert.Equal(t, "The Thursday Murder Club", books[7].Title)
		assert.Equal(t, "Mystery", books[7].Genre)
		assert.Equal(t, 5, books[7].Rating)
	})

	t.Run("Discussions", func(t *testing.T) {
		discussions, err := db.ListDiscussions(ctx)
		require.NoError(t, err)
		require.Len(t, discussions, 4)
		assert.Equal(t, "Alex M.", discussions[0].Author)
		assert.Contains(t, discussions[0].Content, "*The Midnight Library*")
		assert.Contains(t, discussions[1].Content, "You don't have to understand life")
	})

	t.Run("Poll", func(t *testing.T) {
		poll, err := db.GetActivePoll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 53, poll.TotalVotes)
		require.Len(t, poll.Options, 4)
		assert.Equal(t, "option1", poll.Options[0].ID)
		assert.Equal(t, 15, poll.Options[0].Votes)
		assert.Equal(t, "option4", poll.Options[3].ID)
	})

	t.Run("Meetings", func(t *testing.T) {
		meetings, err := db.ListMeetings(ctx)
		require.NoError(t, err)
		require.Len(t, meetings, 4)

		// Most recent first
		assert.Equal(t, models.MeetingUpcoming, meetings[0].Status)
		assert.Equal(t, time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC), meetings[0].Date.UTC())
		assert.NotEmpty(t, meetings[1].KeyTakeaways)
		assert.NotEmpty(t, meetings[0].Prompts)
	})

	t.Run("Authors", func(t *testing.T) {
		authors, err := db.ListAuthors(ctx)
		require.NoError(t, err)
		require.Len(t, authors, 3)
		assert.Equal(t, "Matt Haig", authors[0].Name)
		assert.NotEmpty(t, authors[0].NotableWorks)
		assert.NotEmpty(t, authors[0].FunFacts)
	})

	t.Run("Members", func(t *testing.T) {
		members, err := db.ListMembers(ctx)
		require.NoError(t, err)
		require.Len(t, members, 6)

		total, badgeCount := 0, 0
		for _, m := range members {
			total += m.BooksRead
			badgeCount += len(m.Badges)
		}
		assert.Equal(t, 129, total)
		assert.Equal(t, 14, badgeCount)
	})
}

func TestClickHouseDB_NoActivePoll(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.conn.Exec(ctx, "TRUNCATE TABLE polls"))

	_, err := db.GetActivePoll(ctx)
	assert.ErrorIs(t, err, storage.ErrNoActivePoll)
}

// TestClickHouseDB_Close tests connection closing
func TestClickHouseDB_Close(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	err := db.Close()
	assert.NoError(t, err)

	// Second close should not panic
	err = db.Close()
	assert.NoError(t, err)
}

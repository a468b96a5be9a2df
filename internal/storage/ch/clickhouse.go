package ch

import (
	"context"
	"crypto/tls"
	"fmt"

	"shelf/internal/models"
	"shelf/internal/storage"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouseDB is a read-only catalog backed by ClickHouse
type ClickHouseDB struct {
	conn clickhouse.Conn
}

var _ storage.Storage = (*ClickHouseDB)(nil)

// Options builds the connection options shared by the catalog and migrations
func Options(host string, port int, database, user, password string, useTLS bool) *clickhouse.Options {
	options := &clickhouse.Options{
		Addr:     []string{fmt.Sprintf("%s:%d", host, port)},
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: database,
			Username: user,
			Password: password,
		},
	}

	// Configure TLS if enabled
	if useTLS {
		options.TLS = &tls.Config{
			InsecureSkipVerify: false,
		}
	}
	return options
}

// NewClickHouseDB creates a new ClickHouse database connection
func NewClickHouseDB(host string, port int, database, user, password string, useTLS bool) (*ClickHouseDB, error) {
	conn, err := clickhouse.Open(Options(host, port, database, user, password, useTLS))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	// Test the connection
	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &ClickHouseDB{conn: conn}, nil
}

// Initialize is a no-op - tables are managed via migrations
func (db *ClickHouseDB) Initialize(ctx context.Context) error {
	return nil
}

// ListBooks returns all books in catalog order
func (db *ClickHouseDB) ListBooks(ctx context.Context) ([]models.Book, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, title, author, genre, month, year, rating, progress, status FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var (
			book                       models.Book
			id, year, rating, progress int32
			status                     string
		)
		if err := rows.Scan(&id, &book.Title, &book.Author, &book.Genre, &book.Month, &year, &rating, &progress, &status); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		book.ID, book.Year, book.Rating, book.Progress = int(id), int(year), int(rating), int(progress)
		book.Status = models.BookStatus(status)
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}
	return books, nil
}

// ListDiscussions returns all discussions in catalog order
func (db *ClickHouseDB) ListDiscussions(ctx context.Context) ([]models.Discussion, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, author, title, content, replies, likes, time, tag FROM discussions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list discussions: %w", err)
	}
	defer rows.Close()

	discussions := make([]models.Discussion, 0)
	for rows.Next() {
		var (
			d                  models.Discussion
			id, replies, likes int32
		)
		if err := rows.Scan(&id, &d.Author, &d.Title, &d.Content, &replies, &likes, &d.Time, &d.Tag); err != nil {
			return nil, fmt.Errorf("failed to scan discussion: %w", err)
		}
		d.ID, d.Replies, d.Likes = int(id), int(replies), int(likes)
		discussions = append(discussions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate discussions: %w", err)
	}
	return discussions, nil
}

// GetActivePoll returns the most recent active poll with its options
func (db *ClickHouseDB) GetActivePoll(ctx context.Context) (models.Poll, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, question, total_votes, ends_in FROM polls WHERE active = true ORDER BY id DESC LIMIT 1`)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to get active poll: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Poll{}, fmt.Errorf("failed to get active poll: %w", err)
		}
		return models.Poll{}, storage.ErrNoActivePoll
	}

	var (
		p         models.Poll
		id, total int32
	)
	if err := rows.Scan(&id, &p.Question, &total, &p.EndsIn); err != nil {
		return models.Poll{}, fmt.Errorf("failed to scan poll: %w", err)
	}
	p.ID, p.TotalVotes = int(id), int(total)

	options, err := db.pollOptions(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}
	p.Options = options
	return p, nil
}

func (db *ClickHouseDB) pollOptions(ctx context.Context, pollID int32) ([]models.PollOption, error) {
	rows, err := db.conn.Query(ctx, `SELECT option_id, text, votes FROM poll_options WHERE poll_id = ? ORDER BY position`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll options: %w", err)
	}
	defer rows.Close()

	options := make([]models.PollOption, 0)
	for rows.Next() {
		var (
			o     models.PollOption
			votes int32
		)
		if err := rows.Scan(&o.ID, &o.Text, &votes); err != nil {
			return nil, fmt.Errorf("failed to scan poll option: %w", err)
		}
		o.Votes = int(votes)
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate poll options: %w", err)
	}
	return options, nil
}

// ListMeetings returns all meetings, most recent first
func (db *ClickHouseDB) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, date, time, location, book, rsvp, capacity, status, notes, key_takeaways, prompts FROM meetings ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]models.Meeting, 0)
	for rows.Next() {
		var (
			m                  models.Meeting
			id, rsvp, capacity int32
			status             string
		)
		if err := rows.Scan(&id, &m.Date, &m.Time, &m.Location, &m.Book, &rsvp, &capacity, &status, &m.Notes, &m.KeyTakeaways, &m.Prompts); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		m.ID, m.RSVP, m.Capacity = int(id), int(rsvp), int(capacity)
		m.Status = models.MeetingStatus(status)
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}
	return meetings, nil
}

// ListAuthors returns all authors, featured author first
func (db *ClickHouseDB) ListAuthors(ctx context.Context) ([]models.Author, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, name, bio, notable_works, genres, birth_year, image_url, fun_facts FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		var (
			a             models.Author
			id, birthYear int32
		)
		if err := rows.Scan(&id, &a.Name, &a.Bio, &a.NotableWorks, &a.Genres, &birthYear, &a.ImageURL, &a.FunFacts); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		a.ID, a.BirthYear = int(id), int(birthYear)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}
	return authors, nil
}

// ListMembers returns all members
func (db *ClickHouseDB) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, name, initials, favorite_genres, currently_reading, books_read, badges FROM members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var (
			m             models.Member
			id, booksRead int32
		)
		if err := rows.Scan(&id, &m.Name, &m.Initials, &m.FavoriteGenres, &m.CurrentlyReading, &booksRead, &m.Badges); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.ID, m.BooksRead = int(id), int(booksRead)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// Close closes the database connection
func (db *ClickHouseDB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

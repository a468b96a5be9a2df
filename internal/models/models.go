package models

import "time"

// BookStatus places a book in exactly one shelf
type BookStatus string

const (
	StatusFinished   BookStatus = "finished"
	StatusReading    BookStatus = "reading"
	StatusWantToRead BookStatus = "want-to-read"
)

// BookStatuses lists every book status in display order
var BookStatuses = []BookStatus{StatusReading, StatusFinished, StatusWantToRead}

// MeetingStatus places a meeting in exactly one group
type MeetingStatus string

const (
	MeetingUpcoming MeetingStatus = "upcoming"
	MeetingPast     MeetingStatus = "past"
)

// MeetingStatuses lists every meeting status in display order
var MeetingStatuses = []MeetingStatus{MeetingUpcoming, MeetingPast}

// Book represents a book tracked by the club.
// Rating is 0 when the book is unrated, Progress is 0 when nothing was read yet.
type Book struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	Genre    string     `json:"genre"`
	Month    string     `json:"month,omitempty"`
	Year     int        `json:"year"`
	Rating   int        `json:"rating,omitempty"`
	Progress int        `json:"progress,omitempty"`
	Status   BookStatus `json:"status"`
}

// Discussion represents a discussion thread
type Discussion struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Replies int    `json:"replies"`
	Likes   int    `json:"likes"`
	Time    string `json:"time"`
	Tag     string `json:"tag,omitempty"`
}

// PollOption is a single choice of a poll
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll represents the club vote for the next pick
type Poll struct {
	ID         int          `json:"id"`
	Question   string       `json:"question"`
	Options    []PollOption `json:"options"`
	TotalVotes int          `json:"total_votes"`
	EndsIn     string       `json:"ends_in"`
}

// HasOption reports whether id names one of the poll options
func (p Poll) HasOption(id string) bool {
	for _, o := range p.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Meeting represents a club gathering
type Meeting struct {
	ID           int           `json:"id"`
	Date         time.Time     `json:"date"`
	Time         string        `json:"time"`
	Location     string        `json:"location"`
	Book         string        `json:"book"`
	RSVP         int           `json:"rsvp"`
	Capacity     int           `json:"capacity"`
	Status       MeetingStatus `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	KeyTakeaways []string      `json:"key_takeaways,omitempty"`
	Prompts      []string      `json:"prompts,omitempty"`
}

// Author represents an author featured on the discover page
type Author struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	NotableWorks []string `json:"notable_works"`
	Genres       []string `json:"genres"`
	BirthYear    int      `json:"birth_year"`
	ImageURL     string   `json:"image_url"`
	FunFacts     []string `json:"fun_facts"`
}

// Member represents a club member
type Member struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Initials         string   `json:"initials"`
	FavoriteGenres   []string `json:"favorite_genres"`
	CurrentlyReading string   `json:"currently_reading"`
	BooksRead        int      `json:"books_read"`
	Badges           []string `json:"badges"`
}

// Link is an external call to action
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PickOfMonth describes the featured book on the home page
type PickOfMonth struct {
	BookID   int      `json:"book_id"`
	Label    string   `json:"label"`
	Blurb    string   `json:"blurb"`
	CoverURL string   `json:"cover_url"`
	Tags     []string `json:"tags"`
	Links    []Link   `json:"links"`
}

// Quote is the quote of the week
type Quote struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	SharedBy string `json:"shared_by"`
}

// Highlight is a community activity entry
type Highlight struct {
	Initials string `json:"initials"`
	Member   string `json:"member"`
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
}

// ReadingList is a curated recommendation list
type ReadingList struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// LiteraryEvent is an event outside the club
type LiteraryEvent struct {
	Title  string `json:"title"`
	When   string `json:"when"`
	Action string `json:"action"`
}

// Showcase holds the editorial copy around the catalog data
type Showcase struct {
	Pick       PickOfMonth     `json:"pick"`
	Quote      Quote           `json:"quote"`
	Highlights []Highlight     `json:"highlights"`
	Lists      []ReadingList   `json:"lists"`
	Events     []LiteraryEvent `json:"events"`
	Guidelines []string        `json:"guidelines"`
}

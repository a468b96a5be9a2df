package nav

// Page identifies one of the dashboard views
type Page string

const (
	Home       Page = "home"
	Library    Page = "library"
	Discussion Page = "discussion"
	Meetings   Page = "meetings"
	Discover   Page = "discover"
)

// Entry is a navigation item
type Entry struct {
	Page  Page
	Label string
	Icon  string
}

var entries = []Entry{
	{Page: Home, Label: "Home", Icon: "home"},
	{Page: Library, Label: "Library", Icon: "book-open"},
	{Page: Discussion, Label: "Discussion", Icon: "message-square"},
	{Page: Meetings, Label: "Meetings", Icon: "calendar"},
	{Page: Discover, Label: "Discover", Icon: "sparkles"},
}

// Entries returns the navigation items in display order
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// Parse maps an identifier to its page. Anything unknown is Home.
func Parse(s string) Page {
	for _, e := range entries {
		if string(e.Page) == s {
			return e.Page
		}
	}
	return Home
}

// Label returns the display name of the page
func (p Page) Label() string {
	for _, e := range entries {
		if e.Page == p {
			return e.Label
		}
	}
	return "Home"
}

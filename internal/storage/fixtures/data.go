package fixtures

import (
	"time"

	"shelf/internal/models"
)

const (
	coverURL  = "https://images.unsplash.com/photo-1661936901394-a993c79303c7?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
	authorURL = "https://images.unsplash.com/photo-1680356475155-3ca8fa2192aa?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func books() []models.Book {
	return []models.Book{
		{ID: 1, Title: "The Midnight Library", Author: "Matt Haig", Genre: "Fiction", Month: "October", Year: 2025, Progress: 40, Status: models.StatusReading},
		{ID: 2, Title: "Educated", Author: "Tara Westover", Genre: "Memoir", Month: "September", Year: 2025, Rating: 5, Status: models.StatusFinished},
		{ID: 3, Title: "The Seven Husbands of Evelyn Hugo", Author: "Taylor Jenkins Reid", Genre: "Historical Fiction", Month: "August", Year: 2025, Rating: 5, Status: models.StatusFinished},
		{ID: 4, Title: "Atomic Habits", Author: "James Clear", Genre: "Self-Help", Month: "July", Year: 2025, Rating: 4, Status: models.StatusFinished},
		{ID: 5, Title: "Where the Crawdads Sing", Author: "Delia Owens", Genre: "Mystery", Month: "June", Year: 2025, Rating: 4, Status: models.StatusFinished},
		{ID: 6, Title: "Project Hail Mary", Author: "Andy Weir", Genre: "Science Fiction", Year: 2025, Status: models.StatusWantToRead},
		{ID: 7, Title: "Circe", Author: "Madeline Miller", Genre: "Fantasy", Year: 2025, Status: models.StatusWantToRead},
		{ID: 8, Title: "The Thursday Murder Club", Author: "Richard Osman", Genre: "Mystery", Month: "May", Year: 2025, Rating: 5, Status: models.StatusFinished},
	}
}

func discussions() []models.Discussion {
	return []models.Discussion{
		{
			ID:      1,
			Author:  "Alex M.",
			Title:   "Parallel universes in modern fiction",
			Content: "I'm fascinated by how *The Midnight Library* explores the multiverse concept. How does it compare to other books you've read with similar themes?",
			Replies: 12,
			Likes:   8,
			Time:    "2 hours ago",
			Tag:     "Current Book",
		},
		{
			ID:      2,
			Author:  "Sarah M.",
			Title:   "Favorite quotes from The Midnight Library",
			Content: "Share your favorite quotes from this month's read! I'll start: 'You don't have to understand life. You just have to live it.'",
			Replies: 24,
			Likes:   15,
			Time:    "5 hours ago",
			Tag:     "Current Book",
		},
		{
			ID:      3,
			Author:  "Jordan D.",
			Title:   "Book recommendations for November?",
			Content: "What should we read next month? I'm thinking something in the mystery or thriller genre.",
			Replies: 18,
			Likes:   6,
			Time:    "1 day ago",
		},
		{
			ID:      4,
			Author:  "Taylor C.",
			Title:   "Discussion: Mental health themes in fiction",
			Content: "The Midnight Library touches on depression and regret beautifully. Let's discuss how literature helps us understand mental health better.",
			Replies: 31,
			Likes:   22,
			Time:    "2 days ago",
			Tag:     "Deep Dive",
		},
	}
}

func poll() models.Poll {
	return models.Poll{
		ID:       1,
		Question: "What should we read for November 2025?",
		Options: []models.PollOption{
			{ID: "option1", Text: "Project Hail Mary by Andy Weir", Votes: 15},
			{ID: "option2", Text: "The Thursday Murder Club by Richard Osman", Votes: 12},
			{ID: "option3", Text: "Circe by Madeline Miller", Votes: 18},
			{ID: "option4", Text: "Mexican Gothic by Silvia Moreno-Garcia", Votes: 8},
		},
		TotalVotes: 53,
		EndsIn:     "3 days",
	}
}

func meetings() []models.Meeting {
	const cafe = "Coffee & Pages Café, 123 Book Street"
	const evening = "7:00 PM - 9:00 PM"
	return []models.Meeting{
		{
			ID:       1,
			Date:     date(2025, time.October, 17),
			Time:     evening,
			Location: cafe,
			Book:     "The Midnight Library",
			RSVP:     5,
			Capacity: 8,
			Status:   models.MeetingUpcoming,
			Prompts: []string{
				"What would you do if you had access to the Midnight Library?",
				"Which character did you relate to most and why?",
				"How did the book change your perspective on regret and choices?",
			},
		},
		{
			ID:       2,
			Date:     date(2025, time.September, 19),
			Time:     evening,
			Location: cafe,
			Book:     "Educated",
			RSVP:     6,
			Capacity: 8,
			Status:   models.MeetingPast,
			Notes:    "Great discussion about the power of education and family dynamics. Everyone loved Tara's resilience and writing style.",
			KeyTakeaways: []string{
				"Education as a tool for self-discovery and freedom",
				"The complexity of family loyalty vs. personal growth",
				"The importance of critical thinking and questioning narratives",
			},
		},
		{
			ID:       3,
			Date:     date(2025, time.August, 15),
			Time:     evening,
			Location: "Sarah's House, 456 Reader Lane",
			Book:     "The Seven Husbands of Evelyn Hugo",
			RSVP:     7,
			Capacity: 8,
			Status:   models.MeetingPast,
			Notes:    "Emotional discussion about identity, love, and sacrifice. Tissues were needed!",
			KeyTakeaways: []string{
				"The complexity of identity and self-presentation",
				"Love in its many forms",
				"The cost of fame and the price of authenticity",
			},
		},
		{
			ID:       4,
			Date:     date(2025, time.July, 18),
			Time:     evening,
			Location: "Virtual (Zoom)",
			Book:     "Atomic Habits",
			RSVP:     8,
			Capacity: 8,
			Status:   models.MeetingPast,
			Notes:    "Practical session where we all shared our habit-building goals. Jordan shared their habit tracker template!",
			KeyTakeaways: []string{
				"Small changes compound over time",
				"Focus on systems, not goals",
				"Make good habits obvious, easy, attractive, and satisfying",
			},
		},
	}
}

func authors() []models.Author {
	return []models.Author{
		{
			ID:           1,
			Name:         "Matt Haig",
			Bio:          "Matt Haig is a British author known for his novels that explore themes of mental health, philosophy, and the human experience. His work often blends elements of fantasy and contemporary fiction to create thought-provoking stories.",
			NotableWorks: []string{"The Midnight Library", "The Humans", "How to Stop Time", "Reasons to Stay Alive"},
			Genres:       []string{"Fiction", "Philosophy", "Self-Help"},
			BirthYear:    1975,
			ImageURL:     authorURL,
			FunFacts: []string{
				"He struggled with depression and anxiety, which inspired much of his writing",
				"Before becoming a full-time writer, he worked as a journalist",
				"His book 'Reasons to Stay Alive' is a memoir about his mental health journey",
			},
		},
		{
			ID:           2,
			Name:         "Tara Westover",
			Bio:          "Tara Westover is an American memoirist and historian. She is best known for her memoir 'Educated,' which chronicles her journey from growing up in a survivalist family in rural Idaho to earning a PhD from Cambridge University.",
			NotableWorks: []string{"Educated"},
			Genres:       []string{"Memoir", "Biography"},
			BirthYear:    1986,
			ImageURL:     authorURL,
			FunFacts: []string{
				"She didn't step foot in a classroom until she was 17 years old",
				"She earned a PhD in history from Cambridge University",
				"'Educated' was a #1 New York Times Bestseller and has been translated into 45 languages",
			},
		},
		{
			ID:           3,
			Name:         "Taylor Jenkins Reid",
			Bio:          "Taylor Jenkins Reid is an American author known for her historical fiction and contemporary novels. Her stories often explore themes of love, identity, fame, and the choices we make throughout our lives.",
			NotableWorks: []string{"The Seven Husbands of Evelyn Hugo", "Daisy Jones & The Six", "Malibu Rising", "Carrie Soto Is Back"},
			Genres:       []string{"Historical Fiction", "Contemporary Fiction"},
			BirthYear:    1983,
			ImageURL:     authorURL,
			FunFacts: []string{
				"Many of her books are being adapted for TV and film",
				"She often writes about the entertainment industry",
				"Her books frequently feature strong, complex female protagonists",
			},
		},
	}
}

func members() []models.Member {
	return []models.Member{
		{ID: 1, Name: "Sarah Mitchell", Initials: "SM", FavoriteGenres: []string{"Historical Fiction", "Memoir"}, CurrentlyReading: "The Midnight Library", BooksRead: 24, Badges: []string{"Founding Member", "Discussion Leader", "Speed Reader"}},
		{ID: 2, Name: "Alex Morgan", Initials: "AM", FavoriteGenres: []string{"Science Fiction", "Fantasy"}, CurrentlyReading: "Project Hail Mary", BooksRead: 18, Badges: []string{"Sci-Fi Enthusiast", "Discussion Leader"}},
		{ID: 3, Name: "Jordan Davis", Initials: "JD", FavoriteGenres: []string{"Mystery", "Thriller"}, CurrentlyReading: "The Thursday Murder Club", BooksRead: 31, Badges: []string{"Speed Reader", "Book Curator", "Most Active"}},
		{ID: 4, Name: "Taylor Chen", Initials: "TC", FavoriteGenres: []string{"Literary Fiction", "Philosophy"}, CurrentlyReading: "Circe", BooksRead: 15, Badges: []string{"Deep Thinker", "Quote Collector"}},
		{ID: 5, Name: "Morgan Lee", Initials: "ML", FavoriteGenres: []string{"Romance", "Contemporary"}, CurrentlyReading: "The Seven Husbands of Evelyn Hugo", BooksRead: 22, Badges: []string{"Romance Expert", "Discussion Leader"}},
		{ID: 6, Name: "Riley Parker", Initials: "RP", FavoriteGenres: []string{"Non-Fiction", "Self-Help"}, CurrentlyReading: "Atomic Habits", BooksRead: 19, Badges: []string{"Knowledge Seeker", "Note Taker"}},
	}
}

// Showcase returns the editorial copy shown around the catalog
func Showcase() models.Showcase {
	return models.Showcase{
		Pick: models.PickOfMonth{
			BookID:   1,
			Label:    "October 2025",
			Blurb:    "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived...",
			CoverURL: coverURL,
			Tags:     []string{"Philosophy"},
			Links: []models.Link{
				{Label: "Find on TPL", URL: "https://www.torontopubliclibrary.ca/search.jsp?Ntt=The+Midnight+Library"},
				{Label: "Borrow on Libby", URL: "https://libbyapp.com/search/toronto/search/query-The%20Midnight%20Library"},
			},
		},
		Quote: models.Quote{
			Text:     "You don't have to burn books to destroy a culture. Just get people to stop reading them.",
			Source:   "Ray Bradbury, Fahrenheit 451",
			SharedBy: "Sarah M.",
		},
		Highlights: []models.Highlight{
			{Initials: "JD", Member: "Jordan D.", Headline: `just earned the "Speed Reader" badge!`, Detail: "Finished 5 books this month"},
			{Initials: "AM", Member: "Alex M.", Headline: "started a new discussion", Detail: `"Parallel universes in modern fiction"`},
			{Initials: "TC", Member: "Taylor C.", Headline: "suggested next month's pick", Detail: `"Project Hail Mary" by Andy Weir`},
		},
		Lists: []models.ReadingList{
			{Title: "Books About Mental Health", Count: 12},
			{Title: "Award-Winning Memoirs", Count: 8},
			{Title: "Contemporary Fiction Favorites", Count: 15},
			{Title: "Books That Made Us Cry", Count: 10},
		},
		Events: []models.LiteraryEvent{
			{Title: "Virtual Author Q&A: Matt Haig", When: "October 20, 2025 • 6:00 PM EST", Action: "Register for free"},
			{Title: "Toronto Book Festival", When: "November 5-7, 2025 • Harbourfront Centre", Action: "View schedule"},
			{Title: "Local Bookstore Reading Series", When: "Every Thursday • Indigo Eaton Centre", Action: "Learn more"},
		},
		Guidelines: []string{
			"Please try to finish the book before the meeting",
			"Bring your favorite quotes or passages to share",
			"Respect all opinions and create a safe space for discussion",
			"Feel free to bring snacks or beverages to share!",
			"If you can't make it, please update your RSVP at least 24 hours in advance",
		},
	}
}

package badges

import "github.com/samber/lo"

// Icon names match the sprites in the web stylesheet
const (
	IconTrophy = "trophy"
	IconStar   = "star"
	IconZap    = "zap"
	IconBook   = "book-open"
	IconAward  = "award"
	IconTarget = "target"
)

// Neutral is the color of badges without a dedicated palette
const Neutral = "gray"

// Style is how a badge is drawn
type Style struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var icons = map[string]string{
	"Founding Member":   IconTrophy,
	"Discussion Leader": IconStar,
	"Speed Reader":      IconZap,
	"Sci-Fi Enthusiast": IconBook,
	"Book Curator":      IconAward,
	"Most Active":       IconTarget,
	"Deep Thinker":      IconStar,
	"Quote Collector":   IconBook,
	"Romance Expert":    IconStar,
	"Knowledge Seeker":  IconTarget,
	"Note Taker":        IconBook,
}

var colors = map[string]string{
	"Founding Member":   "yellow",
	"Discussion Leader": "blue",
	"Speed Reader":      "purple",
	"Sci-Fi Enthusiast": "green",
	"Book Curator":      "pink",
	"Most Active":       "orange",
	"Deep Thinker":      "indigo",
}

// Lookup returns the style of a badge. Unknown names, and names with only
// an icon, fall back to the star icon and the neutral color respectively.
func Lookup(name string) Style {
	s := Style{Name: name, Icon: IconStar, Color: Neutral}
	if icon, ok := icons[name]; ok {
		s.Icon = icon
	}
	if color, ok := colors[name]; ok {
		s.Color = color
	}
	return s
}

// LookupAll styles every badge in order
func LookupAll(names []string) []Style {
	return lo.Map(names, func(n string, _ int) Style {
		return Lookup(n)
	})
}

// GuideEntry is a row of the badge legend
type GuideEntry struct {
	Name  string
	Icon  string
	Color string
}

// Guide returns the legend shown above the member list
func Guide() []GuideEntry {
	return []GuideEntry{
		{Name: "Speed Reader", Icon: IconZap, Color: "purple"},
		{Name: "Founding Member", Icon: IconTrophy, Color: "yellow"},
		{Name: "Discussion Leader", Icon: IconStar, Color: "blue"},
		{Name: "Book Curator", Icon: IconAward, Color: "pink"},
		{Name: "Most Active", Icon: IconTarget, Color: "orange"},
		{Name: "Quote Collector", Icon: IconBook, Color: "green"},
	}
}

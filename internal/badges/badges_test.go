package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name string
		want Style
	}{
		{"Founding Member", Style{Name: "Founding Member", Icon: IconTrophy, Color: "yellow"}},
		{"Speed Reader", Style{Name: "Speed Reader", Icon: IconZap, Color: "purple"}},
		{"Quote Collector", Style{Name: "Quote Collector", Icon: IconBook, Color: Neutral}},
		{"Note Taker", Style{Name: "Note Taker", Icon: IconBook, Color: Neutral}},
		{"Night Owl", Style{Name: "Night Owl", Icon: IconStar, Color: Neutral}},
		{"", Style{Name: "", Icon: IconStar, Color: Neutral}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lookup(tc.name))
		})
	}
}

func TestLookupAll(t *testing.T) {
	got := LookupAll([]string{"Most Active", "Unknown"})
	assert.Equal(t, []Style{
		{Name: "Most Active", Icon: IconTarget, Color: "orange"},
		{Name: "Unknown", Icon: IconStar, Color: Neutral},
	}, got)

	assert.NotNil(t, LookupAll(nil))
}

func TestGuide(t *testing.T) {
	for _, e := range Guide() {
		s := Lookup(e.Name)
		assert.Equal(t, e.Icon, s.Icon, e.Name)
	}
}

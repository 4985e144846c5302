package deck

import (
	"testing"

	utils "github.com/ludoreno/madiao/internal"
)

func TestCard(t *testing.T) {
	t.Run("string representation when revealed", func(t *testing.T) {
		cases := []struct {
			name     string
			card     *Card
			expected string
		}{
			{"lowest card", NewCard(Coins, One), "One of Coins"},
			{"specific card", NewCard(Wands, Three), "Three of Wands"},
			{"highest card", NewCard(Swords, Six), "Six of Swords"},
		}

		for _, c := range cases {
			c.card.Reveal()
			utils.AssertEqual(t, c.card.String(), c.expected)
		}
	})

	t.Run("facedown card hides its identity", func(t *testing.T) {
		card := NewCard(Chalices, Five)
		utils.AssertEqual(t, card.String(), "a facedown card")

		card.Reveal()
		utils.AssertEqual(t, card.String(), "Five of Chalices")

		card.Hide()
		utils.AssertEqual(t, card.String(), "a facedown card")
	})

	t.Run("out of range (should panic)", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Expected to panic, but it didn't")
			}
		}()
		NewCard(Swords+1, One)
	})

	t.Run("equality ignores visibility", func(t *testing.T) {
		card := NewCard(Wands, Two)
		same := NewCard(Wands, Two)
		same.Reveal()

		utils.AssertTrue(t, card.Equals(same))
		utils.AssertTrue(t, !card.Equals(NewCard(Wands, Three)))
		utils.AssertTrue(t, !card.Equals(NewCard(Swords, Two)))
		utils.AssertTrue(t, !card.Equals(nil))
	})

	t.Run("rank value", func(t *testing.T) {
		utils.AssertEqual(t, One.Value(), 1)
		utils.AssertEqual(t, Six.Value(), 6)
	})
}

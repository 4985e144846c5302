package deck

import (
	"errors"
	"math/rand"
	"time"
)

// Size of the full deck: 4 suits x 6 ranks
const FullDeckSize = 24

// ErrEmptyDeck is returned when drawing from an empty deck
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents the draw pile. It starts with all 24 cards and only
// ever shrinks; it is never refilled during a game.
type Deck []*Card

// New creates a full deck of cards, shuffled with the given source of
// randomness. A nil source falls back to a time-seeded one.
func New(r *rand.Rand) Deck {
	cards := Deck{}
	for suit := Coins; suit <= Swords; suit++ {
		for rank := One; rank <= Six; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	cards.Shuffle(r)
	return cards
}

// Shuffle rearranges the deck into a uniform random permutation
// (Fisher-Yates).
func (d Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Draw removes and returns the card at the front of the deck
func (d *Deck) Draw() (*Card, error) {
	if len(*d) == 0 {
		return nil, ErrEmptyDeck
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}

// Size returns the number of cards left in the deck
func (d Deck) Size() int {
	return len(d)
}

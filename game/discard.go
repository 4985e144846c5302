package game

import (
	"github.com/ludoreno/madiao/deck"
)

// DiscardPile is a sink for permanently removed cards. No current rule
// feeds it; it exists so the data model has somewhere for future rules
// to banish cards to.
type DiscardPile struct {
	cards []*deck.Card
}

// NewDiscardPile constructs an empty discard pile
func NewDiscardPile() *DiscardPile {
	return &DiscardPile{cards: []*deck.Card{}}
}

// Add moves cards onto the discard pile
func (d *DiscardPile) Add(cards ...*deck.Card) {
	d.cards = append(d.cards, cards...)
}

// TopCard returns the most recently discarded card, or nil if empty
func (d *DiscardPile) TopCard() *deck.Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[len(d.cards)-1]
}

// Cards returns a copy of the discarded cards
func (d *DiscardPile) Cards() []*deck.Card {
	cards := make([]*deck.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// RemoveAll empties the pile and returns the removed cards
func (d *DiscardPile) RemoveAll() []*deck.Card {
	cards := d.Cards()
	d.cards = []*deck.Card{}
	return cards
}

// Size returns the number of discarded cards
func (d *DiscardPile) Size() int {
	return len(d.cards)
}

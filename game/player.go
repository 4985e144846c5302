package game

import (
	"github.com/ludoreno/madiao/deck"
)

// Player represents a seat at the table: a name and the hand it owns.
// Hand order is not meaningful.
type Player struct {
	name string
	hand []*deck.Card
}

// NewPlayer constructs a player with an empty hand
func NewPlayer(name string) *Player {
	return &Player{name: name, hand: []*deck.Card{}}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Hand returns a copy of the player's hand
func (p *Player) Hand() []*deck.Card {
	hand := make([]*deck.Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// HandSize returns the number of cards in the player's hand
func (p *Player) HandSize() int {
	return len(p.hand)
}

// Receive reveals a card to its new owner and adds it to the hand
func (p *Player) Receive(card *deck.Card) {
	card.Reveal()
	p.hand = append(p.hand, card)
}

// ReceivePenalty adds all the given cards to the hand. Used when the
// player absorbs the pile after a challenge.
func (p *Player) ReceivePenalty(cards []*deck.Card) {
	for _, card := range cards {
		p.Receive(card)
	}
}

// RemoveFromHand removes one matching instance per requested card.
// A requested card not present in the hand is skipped; Game always
// validates with HasAllCards before calling this.
func (p *Player) RemoveFromHand(cards []*deck.Card) {
	for _, card := range cards {
		for i, held := range p.hand {
			if held.Equals(card) {
				p.hand = append(p.hand[:i], p.hand[i+1:]...)
				break
			}
		}
	}
}

// HasCard reports whether a matching card is in the hand
func (p *Player) HasCard(card *deck.Card) bool {
	for _, held := range p.hand {
		if held.Equals(card) {
			return true
		}
	}
	return false
}

// HasAllCards reports whether the hand contains a distinct matching
// instance for every requested card.
func (p *Player) HasAllCards(cards []*deck.Card) bool {
	remaining := make([]*deck.Card, len(p.hand))
	copy(remaining, p.hand)

	for _, card := range cards {
		found := false
		for i, held := range remaining {
			if held.Equals(card) {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasNoCards reports whether the hand is empty. An empty hand wins the
// game.
func (p *Player) HasNoCards() bool {
	return len(p.hand) == 0
}

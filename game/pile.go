package game

import (
	"github.com/ludoreno/madiao/deck"
)

// Pile holds the plays accumulated since the last challenge resolution.
// Its cards are the stake the loser of the next challenge picks up.
type Pile struct {
	plays []*Play
}

// NewPile constructs an empty pile
func NewPile() *Pile {
	return &Pile{plays: []*Play{}}
}

// AddPlay appends a play to the pile
func (p *Pile) AddPlay(play *Play) {
	p.plays = append(p.plays, play)
}

// LastPlay returns the most recent play, or nil if the pile is empty.
// Only the last play can be challenged.
func (p *Pile) LastPlay() *Play {
	if len(p.plays) == 0 {
		return nil
	}
	return p.plays[len(p.plays)-1]
}

// AllCards flattens every play's cards, in play order then within-play
// order. This exact sequence is what a challenge loser receives.
func (p *Pile) AllCards() []*deck.Card {
	cards := []*deck.Card{}
	for _, play := range p.plays {
		cards = append(cards, play.Cards()...)
	}
	return cards
}

// Clear empties the pile. The cards themselves have already been handed
// to a player by the caller.
func (p *Pile) Clear() {
	p.plays = []*Play{}
}

// TopCard returns the last card of the last play, or nil if the pile is
// empty. Display only.
func (p *Pile) TopCard() *deck.Card {
	lastPlay := p.LastPlay()
	if lastPlay == nil {
		return nil
	}
	cards := lastPlay.Cards()
	if len(cards) == 0 {
		return nil
	}
	return cards[len(cards)-1]
}

// PlayCount returns the number of plays in the pile
func (p *Pile) PlayCount() int {
	return len(p.plays)
}

// Size returns the total number of cards in the pile
func (p *Pile) Size() int {
	size := 0
	for _, play := range p.plays {
		size += play.Size()
	}
	return size
}

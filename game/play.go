package game

import (
	"github.com/ludoreno/madiao/deck"
)

// Play is one committed turn: who played, the cards now face up on the
// pile, and the rank they claimed those cards share. Immutable once
// constructed.
type Play struct {
	player       *Player
	cards        []*deck.Card
	declaredRank deck.Rank
}

// NewPlay builds a play and reveals its cards. Game enforces the 1-4
// card limit before constructing a play.
func NewPlay(player *Player, cards []*deck.Card, declaredRank deck.Rank) *Play {
	own := make([]*deck.Card, len(cards))
	for i, card := range cards {
		card.Reveal()
		own[i] = card
	}
	return &Play{player: player, cards: own, declaredRank: declaredRank}
}

// Player returns the player who made the play
func (p *Play) Player() *Player {
	return p.player
}

// Cards returns a copy of the played cards
func (p *Play) Cards() []*deck.Card {
	cards := make([]*deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Size returns the number of cards in the play
func (p *Play) Size() int {
	return len(p.cards)
}

// DeclaredRank returns the rank the player claimed
func (p *Play) DeclaredRank() deck.Rank {
	return p.declaredRank
}

// MatchesDeclaration reports whether every played card actually has the
// declared rank. This is the ground truth a challenge tests against.
func (p *Play) MatchesDeclaration() bool {
	for _, card := range p.cards {
		if card.Rank() != p.declaredRank {
			return false
		}
	}
	return true
}

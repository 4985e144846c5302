package game

import (
	"testing"

	"github.com/ludoreno/madiao/deck"
	utils "github.com/ludoreno/madiao/internal"
	"github.com/stretchr/testify/assert"
)

func TestNewPlayRevealsCards(t *testing.T) {
	p := NewPlayer("Elton")
	cards := []*deck.Card{
		deck.NewCard(deck.Coins, deck.Three),
		deck.NewCard(deck.Wands, deck.Three),
	}

	play := NewPlay(p, cards, deck.Three)

	utils.AssertEqual(t, play.Size(), 2)
	utils.AssertEqual(t, play.Player(), p)
	utils.AssertEqual(t, play.DeclaredRank(), deck.Three)
	for _, card := range play.Cards() {
		utils.AssertTrue(t, card.Revealed())
	}
}

func TestPlayMatchesDeclaration(t *testing.T) {
	p := NewPlayer("Heloise")

	t.Run("truthful declaration", func(t *testing.T) {
		play := NewPlay(p, []*deck.Card{
			deck.NewCard(deck.Coins, deck.Three),
			deck.NewCard(deck.Swords, deck.Three),
		}, deck.Three)

		assert.True(t, play.MatchesDeclaration())
	})

	t.Run("bluff", func(t *testing.T) {
		play := NewPlay(p, []*deck.Card{
			deck.NewCard(deck.Coins, deck.Two),
			deck.NewCard(deck.Swords, deck.Three),
		}, deck.Three)

		assert.False(t, play.MatchesDeclaration())
	})
}

func TestPlayCardsIsACopy(t *testing.T) {
	p := NewPlayer("Elton")
	card := deck.NewCard(deck.Chalices, deck.One)
	play := NewPlay(p, []*deck.Card{card}, deck.One)

	cards := play.Cards()
	cards[0] = deck.NewCard(deck.Swords, deck.Six)

	utils.AssertTrue(t, play.Cards()[0].Equals(card))
}

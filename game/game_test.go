package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ludoreno/madiao/deck"
	utils "github.com/ludoreno/madiao/internal"
	"github.com/stretchr/testify/assert"
)

func newTestGame(t *testing.T, names []string, seed int64) *Game {
	t.Helper()

	players := []*Player{}
	for _, name := range names {
		players = append(players, NewPlayer(name))
	}

	g, err := New(players, rand.New(rand.NewSource(seed)))
	utils.AssertNoError(t, err)
	return g
}

// cardsOfSameRank finds n cards in the hand sharing a rank. With 12 of
// the 24 cards dealt, a pair always exists.
func cardsOfSameRank(t *testing.T, p *Player, n int) []*deck.Card {
	t.Helper()

	byRank := map[deck.Rank][]*deck.Card{}
	for _, card := range p.Hand() {
		byRank[card.Rank()] = append(byRank[card.Rank()], card)
		if len(byRank[card.Rank()]) == n {
			return byRank[card.Rank()][:n]
		}
	}
	t.Fatalf("no %d cards of one rank in %s's hand", n, p.Name())
	return nil
}

// bluffFor returns a declared rank the given cards do not all match
func bluffFor(cards []*deck.Card) deck.Rank {
	for rank := deck.One; rank <= deck.Six; rank++ {
		for _, card := range cards {
			if card.Rank() != rank {
				return rank
			}
		}
	}
	panic("unreachable")
}

// totalCards counts every card the game tracks, in every container
func totalCards(g *Game) int {
	total := g.DeckSize() + g.Pile().Size() + g.DiscardPile().Size()
	for _, p := range g.Players() {
		total += p.HandSize()
	}
	return total
}

// assertAllCardsDistinct checks the 24 canonical (suit, rank) pairs each
// appear exactly once across all containers
func assertAllCardsDistinct(t *testing.T, g *Game) {
	t.Helper()

	counts := map[string]int{}
	count := func(cards []*deck.Card) {
		for _, c := range cards {
			counts[fmt.Sprintf("%s-%s", c.Suit(), c.Rank())]++
		}
	}

	count(g.Pile().AllCards())
	count(g.DiscardPile().Cards())
	for _, p := range g.Players() {
		count(p.Hand())
	}

	utils.AssertEqual(t, len(counts)+g.DeckSize(), deck.FullDeckSize)
	for key, n := range counts {
		if n != 1 {
			t.Errorf("card %s appears %d times", key, n)
		}
	}
}

func TestNewGame(t *testing.T) {
	t.Run("rejects too few players", func(t *testing.T) {
		_, err := New([]*Player{NewPlayer("Elton")}, nil)
		assert.Equal(t, ErrTooFewPlayers, err)
	})

	t.Run("rejects too many players", func(t *testing.T) {
		players := []*Player{}
		for i := 0; i < 5; i++ {
			players = append(players, NewPlayer(fmt.Sprintf("p%d", i)))
		}
		_, err := New(players, nil)
		assert.Equal(t, ErrTooManyPlayers, err)
	})

	t.Run("deals the whole deck round-robin", func(t *testing.T) {
		cases := []struct {
			numPlayers   int
			cardsPerHand int
		}{
			{2, 12},
			{3, 8},
			{4, 6},
		}

		for _, c := range cases {
			names := []string{}
			for i := 0; i < c.numPlayers; i++ {
				names = append(names, fmt.Sprintf("p%d", i))
			}
			g := newTestGame(t, names, 1)

			utils.AssertEqual(t, g.DeckSize(), 0)
			utils.AssertEqual(t, g.PlayerCount(), c.numPlayers)
			for _, p := range g.Players() {
				utils.AssertEqual(t, p.HandSize(), c.cardsPerHand)
			}
			assertAllCardsDistinct(t, g)
		}
	})

	t.Run("starts at round 1 with the first seat", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)

		utils.AssertEqual(t, g.RoundNumber(), 1)
		utils.AssertEqual(t, g.CurrentPlayer().Name(), "Elton")
		assert.Nil(t, g.Winner())
	})
}

func TestGamePlayCards(t *testing.T) {
	t.Run("a legal play moves cards to the pile and advances the turn", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton := g.Players()[0]
		cards := elton.Hand()[:2]

		outcome, err := g.PlayCards(elton, cards, deck.Three)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, elton.HandSize(), 10)
		utils.AssertEqual(t, g.Pile().Size(), 2)
		utils.AssertEqual(t, g.Pile().LastPlay(), outcome.Play)
		utils.AssertEqual(t, g.CurrentPlayer().Name(), "Heloise")
		utils.AssertEqual(t, outcome.NextPlayer.Name(), "Heloise")
		assert.Nil(t, outcome.Winner)
		assertAllCardsDistinct(t, g)
	})

	t.Run("playing does not change the round number", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton := g.Players()[0]

		_, err := g.PlayCards(elton, elton.Hand()[:1], deck.One)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, g.RoundNumber(), 1)
	})

	t.Run("out of turn play is rejected untouched", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		heloise := g.Players()[1]

		_, err := g.PlayCards(heloise, heloise.Hand()[:1], deck.One)

		assert.Equal(t, ErrNotYourTurn, err)
		assertUnchanged(t, g)
	})

	t.Run("cards the player does not hold are rejected", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton, heloise := g.Players()[0], g.Players()[1]

		// a card from the opponent's hand cannot be in Elton's
		_, err := g.PlayCards(elton, heloise.Hand()[:1], deck.One)

		assert.Equal(t, ErrCardsNotOwned, err)
		assertUnchanged(t, g)
	})

	t.Run("the same held card cannot be played twice in one turn", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton := g.Players()[0]
		card := elton.Hand()[0]

		_, err := g.PlayCards(elton, []*deck.Card{card, card}, card.Rank())

		assert.Equal(t, ErrCardsNotOwned, err)
		assertUnchanged(t, g)
	})

	t.Run("play size limits", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton := g.Players()[0]

		_, err := g.PlayCards(elton, []*deck.Card{}, deck.One)
		assert.Equal(t, ErrInvalidPlaySize, err)

		_, err = g.PlayCards(elton, elton.Hand()[:5], deck.One)
		assert.Equal(t, ErrInvalidPlaySize, err)

		assertUnchanged(t, g)
	})
}

// assertUnchanged checks the game still looks freshly dealt
func assertUnchanged(t *testing.T, g *Game) {
	t.Helper()

	utils.AssertEqual(t, g.CurrentPlayer().Name(), "Elton")
	utils.AssertEqual(t, g.RoundNumber(), 1)
	utils.AssertEqual(t, g.Pile().Size(), 0)
	for _, p := range g.Players() {
		utils.AssertEqual(t, p.HandSize(), 12)
	}
}

func TestGameChallenge(t *testing.T) {
	t.Run("a caught bluff penalises the declarer", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton, heloise := g.Players()[0], g.Players()[1]

		cards := elton.Hand()[:2]
		_, err := g.PlayCards(elton, cards, bluffFor(cards))
		utils.AssertNoError(t, err)

		outcome := g.Challenge(heloise)

		assert.True(t, outcome.Resolved)
		assert.True(t, outcome.Successful)
		utils.AssertEqual(t, outcome.Loser, elton)
		utils.AssertEqual(t, outcome.PenaltyCards, 2)
		utils.AssertEqual(t, elton.HandSize(), 12)
		utils.AssertEqual(t, heloise.HandSize(), 12)
		utils.AssertEqual(t, g.Pile().Size(), 0)
		utils.AssertEqual(t, g.RoundNumber(), 2)
		utils.AssertEqual(t, g.CurrentPlayer(), elton)
		assertAllCardsDistinct(t, g)
	})

	t.Run("a failed challenge penalises the challenger", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton, heloise := g.Players()[0], g.Players()[1]

		pair := cardsOfSameRank(t, elton, 2)
		_, err := g.PlayCards(elton, pair, pair[0].Rank())
		utils.AssertNoError(t, err)

		outcome := g.Challenge(heloise)

		assert.True(t, outcome.Resolved)
		assert.False(t, outcome.Successful)
		utils.AssertEqual(t, outcome.Loser, heloise)
		utils.AssertEqual(t, elton.HandSize(), 10)
		utils.AssertEqual(t, heloise.HandSize(), 14)
		utils.AssertEqual(t, g.Pile().Size(), 0)
		utils.AssertEqual(t, g.RoundNumber(), 2)
		utils.AssertEqual(t, g.CurrentPlayer(), heloise)
		assertAllCardsDistinct(t, g)
	})

	t.Run("the loser absorbs every play since the last resolution", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		elton, heloise := g.Players()[0], g.Players()[1]

		_, err := g.PlayCards(elton, elton.Hand()[:3], deck.Two)
		utils.AssertNoError(t, err)
		cards := heloise.Hand()[:2]
		_, err = g.PlayCards(heloise, cards, bluffFor(cards))
		utils.AssertNoError(t, err)

		outcome := g.Challenge(elton)

		assert.True(t, outcome.Successful)
		utils.AssertEqual(t, outcome.PenaltyCards, 5)
		utils.AssertEqual(t, heloise.HandSize(), 15)
	})

	t.Run("challenging an empty pile is a no-op", func(t *testing.T) {
		g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
		heloise := g.Players()[1]

		outcome := g.Challenge(heloise)

		assert.False(t, outcome.Resolved)
		assert.False(t, outcome.Successful)
		utils.AssertEqual(t, g.RoundNumber(), 1)
		assertUnchanged(t, g)
	})
}

func TestGameWinner(t *testing.T) {
	g := newTestGame(t, []string{"Elton", "Heloise"}, 1)
	elton, heloise := g.Players()[0], g.Players()[1]

	// alternate turns until Elton sheds all 12 cards
	for elton.HandSize() > 0 {
		cards := elton.Hand()[:4]
		outcome, err := g.PlayCards(elton, cards, cards[0].Rank())
		utils.AssertNoError(t, err)

		if elton.HandSize() == 0 {
			utils.AssertEqual(t, outcome.Winner, elton)
			break
		}
		assert.Nil(t, outcome.Winner)

		_, err = g.PlayCards(heloise, heloise.Hand()[:1], deck.One)
		utils.AssertNoError(t, err)
	}

	utils.AssertEqual(t, g.Winner(), elton)
}

// TestGameConservation drives a scripted-random game and checks card
// conservation after every action
func TestGameConservation(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	g := newTestGame(t, []string{"Elton", "Heloise", "Ramona"}, 99)

	for i := 0; i < 200; i++ {
		if g.Winner() != nil {
			break
		}

		player := g.CurrentPlayer()
		hand := player.Hand()

		n := r.Intn(4) + 1
		if n > len(hand) {
			n = len(hand)
		}
		cards := hand[:n]

		declared := cards[0].Rank()
		if r.Intn(2) == 0 {
			declared = bluffFor(cards)
		}

		_, err := g.PlayCards(player, cards, declared)
		utils.AssertNoError(t, err)

		if r.Intn(3) == 0 {
			g.Challenge(g.CurrentPlayer())
		}

		utils.AssertEqual(t, totalCards(g), deck.FullDeckSize)
		assertAllCardsDistinct(t, g)
	}
}

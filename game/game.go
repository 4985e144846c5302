package game

import (
	"errors"
	"math/rand"

	"github.com/ludoreno/madiao/deck"
)

var (
	ErrTooFewPlayers   = errors.New("minimum of 2 players required")
	ErrTooManyPlayers  = errors.New("maximum of 4 players allowed")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrCardsNotOwned   = errors.New("player does not hold those cards")
	ErrInvalidPlaySize = errors.New("must play between 1 and 4 cards")
)

const (
	minPlayers  = 2
	maxPlayers  = 4
	minPlaySize = 1
	maxPlaySize = 4
)

// Game is the rules engine for one game of Super Madiao. It owns the
// deck, the players, the pile and the turn pointer, and is driven by a
// single external caller one operation at a time. Concurrent games each
// get their own instance.
type Game struct {
	players     []*Player
	deck        deck.Deck
	pile        *Pile
	discardPile *DiscardPile
	currentIdx  int
	roundNumber int
}

// PlayOutcome reports the result of a successful play for the caller to
// render: whose turn it is now, and the winner if the play emptied the
// player's hand.
type PlayOutcome struct {
	Play       *Play
	NextPlayer *Player
	Winner     *Player
}

// ChallengeOutcome reports the result of a challenge. Resolved is false
// when the pile held no play to challenge, in which case nothing
// happened. Successful is true when the declarer had bluffed.
type ChallengeOutcome struct {
	Resolved     bool
	Successful   bool
	Loser        *Player
	PenaltyCards int
	NextPlayer   *Player
}

// New constructs a game: builds and shuffles the deck with the given
// source of randomness (nil for a time-seeded one), then deals the whole
// deck round-robin in seat order. With 2-4 players every card is dealt;
// seat order decides who ends up a card ahead when the count is uneven.
func New(players []*Player, r *rand.Rand) (*Game, error) {
	if len(players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	g := &Game{
		players:     players,
		deck:        deck.New(r),
		pile:        NewPile(),
		discardPile: NewDiscardPile(),
		currentIdx:  0,
		roundNumber: 1,
	}

	g.dealInitialCards()

	return g, nil
}

func (g *Game) dealInitialCards() {
	for g.deck.Size() > 0 {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return
			}
			p.Receive(card)
		}
	}
}

// PlayCards commits the current player's turn: the cards leave the hand,
// a play lands face up on the pile, and the turn advances one seat.
// Validation happens before any mutation, so a rejected call leaves the
// game untouched.
func (g *Game) PlayCards(player *Player, cards []*deck.Card, declaredRank deck.Rank) (PlayOutcome, error) {
	if player != g.CurrentPlayer() {
		return PlayOutcome{}, ErrNotYourTurn
	}
	if !player.HasAllCards(cards) {
		return PlayOutcome{}, ErrCardsNotOwned
	}
	if len(cards) < minPlaySize || len(cards) > maxPlaySize {
		return PlayOutcome{}, ErrInvalidPlaySize
	}

	player.RemoveFromHand(cards)
	play := NewPlay(player, cards, declaredRank)
	g.pile.AddPlay(play)

	g.nextPlayer()

	return PlayOutcome{
		Play:       play,
		NextPlayer: g.CurrentPlayer(),
		Winner:     g.Winner(),
	}, nil
}

// Challenge disputes the pile's most recent declaration. If the declarer
// bluffed they absorb the pile; otherwise the challenger does. Either
// way the pile empties, the round counter ticks and the penalised player
// starts the next round. Challenging an empty pile is a no-op.
func (g *Game) Challenge(challenger *Player) ChallengeOutcome {
	lastPlay := g.pile.LastPlay()
	if lastPlay == nil {
		return ChallengeOutcome{}
	}

	loser := challenger
	successful := false
	if !lastPlay.MatchesDeclaration() {
		loser = lastPlay.Player()
		successful = true
	}

	penalty := g.pile.AllCards()
	loser.ReceivePenalty(penalty)
	g.pile.Clear()
	g.setCurrentPlayer(loser)
	g.roundNumber++

	return ChallengeOutcome{
		Resolved:     true,
		Successful:   successful,
		Loser:        loser,
		PenaltyCards: len(penalty),
		NextPlayer:   loser,
	}
}

// Winner returns the first player in seat order with an empty hand, or
// nil while everyone still holds cards.
func (g *Game) Winner() *Player {
	for _, p := range g.players {
		if p.HasNoCards() {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.currentIdx]
}

func (g *Game) nextPlayer() {
	g.currentIdx = (g.currentIdx + 1) % len(g.players)
}

func (g *Game) setCurrentPlayer(player *Player) {
	for i, p := range g.players {
		if p == player {
			g.currentIdx = i
			break
		}
	}
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// RoundNumber returns the current round, starting at 1 and ticking once
// per challenge resolution
func (g *Game) RoundNumber() int {
	return g.roundNumber
}

// Pile returns the play pile
func (g *Game) Pile() *Pile {
	return g.pile
}

// DiscardPile returns the discard pile
func (g *Game) DiscardPile() *DiscardPile {
	return g.discardPile
}

// DeckSize returns the number of undealt cards. Always zero once the
// constructor has dealt.
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

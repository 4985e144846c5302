package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/ludoreno/madiao/deck"
	"github.com/ludoreno/madiao/game"
	"github.com/ludoreno/madiao/protocol"
)

var (
	ErrGameStarted    = errors.New("game has already started")
	ErrUnknownPlayer  = errors.New("player is not in this game")
	ErrInvalidRank    = errors.New("declared rank must be between 1 and 6")
	ErrUnknownCards   = errors.New("cards do not match the player's hand")
	ErrGameNotStarted = errors.New("game has not started")
)

// PlayState represents the lifecycle of a game engine
// Idle -> pre game, players joining
// InProgress -> game in progress
// GameOver -> a player has emptied their hand
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	GameOver
)

var playStateNames = []string{"idle", "inProgress", "gameOver"}

func (ps PlayState) String() string {
	return playStateNames[ps]
}

// GameEngine wraps one game of Madiao. A single Listen goroutine owns
// the rules core and applies every external action in sequence, which is
// what keeps the single-actor core safe behind concurrent connections.
type GameEngine struct {
	mu         sync.RWMutex
	id         string
	creatorID  string
	playState  PlayState
	players    Players
	seats      map[string]*game.Player
	game       *game.Game
	rng        *rand.Rand
	registerCh chan Player
	inboundCh  chan protocol.InboundMessage
}

// GameEngineOpts configures a new GameEngine. Rand is optional and only
// set by tests that need a deterministic deal.
type GameEngineOpts struct {
	GameID    string
	CreatorID string
	Players   Players
	Rand      *rand.Rand
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.GameID == "" {
		return nil, errors.New("missing game ID")
	}

	ge := &GameEngine{
		id:         opts.GameID,
		creatorID:  opts.CreatorID,
		players:    opts.Players,
		seats:      map[string]*game.Player{},
		rng:        opts.Rand,
		registerCh: make(chan Player),
		inboundCh:  make(chan protocol.InboundMessage),
	}

	return ge, nil
}

// ID returns the game's ID
func (ge *GameEngine) ID() string {
	return ge.id
}

// CreatorID returns the ID of the player who created the game
func (ge *GameEngine) CreatorID() string {
	return ge.creatorID
}

// PlayState returns the engine's lifecycle state
func (ge *GameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

// Players returns the players attached to the engine
func (ge *GameEngine) Players() Players {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	ps := make(Players, len(ge.players))
	copy(ps, ge.players)
	return ps
}

// AddPlayer registers a player with the engine's Listen loop
func (ge *GameEngine) AddPlayer(p Player) error {
	if ge.PlayState() != Idle {
		return ErrGameStarted
	}
	ge.registerCh <- p
	return nil
}

// Receive forwards a player message to the Listen loop
func (ge *GameEngine) Receive(msg protocol.InboundMessage) {
	ge.inboundCh <- msg
}

// Listen applies joins and player messages one at a time. Run it in its
// own goroutine, one per game.
func (ge *GameEngine) Listen() {
	for {
		select {
		case joiner := <-ge.registerCh:
			ge.mu.Lock()
			ge.players = AddPlayer(ge.players, joiner)
			ge.mu.Unlock()

			for _, p := range ge.Players() {
				ge.send(p, protocol.OutboundMessage{
					PlayerID: p.ID(),
					Command:  protocol.NewJoiner,
					Message:  fmt.Sprintf("%s has joined the game!", joiner.Name()),
					Joiner:   protocol.PlayerInfo{PlayerID: joiner.ID(), Name: joiner.Name()},
				})
			}

		case msg := <-ge.inboundCh:
			ge.handleMessage(msg)
		}
	}
}

func (ge *GameEngine) handleMessage(msg protocol.InboundMessage) {
	switch msg.Command {
	case protocol.Start:
		if err := ge.Start(); err != nil {
			ge.sendErrorTo(msg.PlayerID, err)
			return
		}
		ge.broadcast(ge.buildTurnMessages(protocol.HasStarted, ""))

	case protocol.PlayCards:
		ge.handlePlayCards(msg)

	case protocol.Challenge:
		ge.handleChallenge(msg)

	default:
		ge.sendErrorTo(msg.PlayerID, fmt.Errorf("unexpected command %s", msg.Command))
	}
}

// Start deals a new game to the joined players, seating them in join
// order
func (ge *GameEngine) Start() error {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	if ge.playState != Idle {
		return ErrGameStarted
	}

	seats := []*game.Player{}
	for _, p := range ge.players {
		seat := game.NewPlayer(p.Name())
		ge.seats[p.ID()] = seat
		seats = append(seats, seat)
	}

	g, err := game.New(seats, ge.rng)
	if err != nil {
		return err
	}

	ge.game = g
	ge.playState = InProgress
	return nil
}

func (ge *GameEngine) handlePlayCards(msg protocol.InboundMessage) {
	if ge.PlayState() != InProgress {
		ge.sendErrorTo(msg.PlayerID, ErrGameNotStarted)
		return
	}

	seat, ok := ge.seats[msg.PlayerID]
	if !ok {
		ge.sendErrorTo(msg.PlayerID, ErrUnknownPlayer)
		return
	}

	if msg.DeclaredRank < deck.One.Value() || msg.DeclaredRank > deck.Six.Value() {
		ge.sendErrorTo(msg.PlayerID, ErrInvalidRank)
		return
	}

	cards, err := resolveCards(seat, msg.Cards)
	if err != nil {
		ge.sendErrorTo(msg.PlayerID, err)
		return
	}

	outcome, err := ge.game.PlayCards(seat, cards, deck.Rank(msg.DeclaredRank))
	if err != nil {
		ge.sendErrorTo(msg.PlayerID, err)
		return
	}

	if outcome.Winner != nil {
		ge.mu.Lock()
		ge.playState = GameOver
		ge.mu.Unlock()
		ge.broadcast(ge.buildGameOverMessages(outcome.Winner))
		return
	}

	note := fmt.Sprintf("%s claims %d cards of rank %d",
		seat.Name(), len(cards), msg.DeclaredRank)
	ge.broadcast(ge.buildTurnMessages(protocol.Turn, note))
}

func (ge *GameEngine) handleChallenge(msg protocol.InboundMessage) {
	if ge.PlayState() != InProgress {
		ge.sendErrorTo(msg.PlayerID, ErrGameNotStarted)
		return
	}

	seat, ok := ge.seats[msg.PlayerID]
	if !ok {
		ge.sendErrorTo(msg.PlayerID, ErrUnknownPlayer)
		return
	}

	outcome := ge.game.Challenge(seat)
	if !outcome.Resolved {
		ge.sendErrorTo(msg.PlayerID, errors.New("nothing to challenge"))
		return
	}

	verdict := "the declaration was honest"
	if outcome.Successful {
		verdict = "the declaration was a bluff"
	}
	note := fmt.Sprintf("%s challenged: %s. %s picks up %d cards",
		seat.Name(), verdict, outcome.Loser.Name(), outcome.PenaltyCards)

	ge.broadcast(ge.buildTurnMessages(protocol.ChallengeResult, note))
}

// resolveCards maps wire card views onto the player's actual cards,
// using each held card at most once
func resolveCards(seat *game.Player, views []protocol.CardView) ([]*deck.Card, error) {
	remaining := seat.Hand()
	cards := []*deck.Card{}

	for _, view := range views {
		found := false
		for i, held := range remaining {
			if held.Suit().String() == view.Suit && held.Rank().Value() == view.Rank {
				cards = append(cards, held)
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrUnknownCards
		}
	}

	return cards, nil
}

func (ge *GameEngine) send(p Player, msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		log.Printf("failed to message player %s: %s", p.ID(), err)
	}
}

func (ge *GameEngine) sendErrorTo(playerID string, sendErr error) {
	p, ok := ge.Players().Find(playerID)
	if !ok {
		log.Printf("cannot report error to unknown player %s: %s", playerID, sendErr)
		return
	}
	ge.send(p, protocol.OutboundMessage{
		PlayerID: playerID,
		Command:  protocol.Error,
		Error:    sendErr.Error(),
	})
}

func (ge *GameEngine) broadcast(msgs []protocol.OutboundMessage) {
	players := ge.Players()
	for _, msg := range msgs {
		if p, ok := players.Find(msg.PlayerID); ok {
			ge.send(p, msg)
		}
	}
}

package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ludoreno/madiao/engine"
	"github.com/ludoreno/madiao/protocol"
)

var (
	ErrUnknownGameID      = errors.New("unknown game ID")
	ErrGameAlreadyStarted = errors.New("game has already started")

	ErrFnUnknownInactiveGameID = func(gameID string) error {
		return fmt.Errorf("pending game with id %q does not exist", gameID)
	}
)

// GameStore holds all the games a server knows about
type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	FindActiveGame(gameID string) *engine.GameEngine
	FindInactiveGame(gameID string) *engine.GameEngine
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
	AddInactiveGame(game *engine.GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player engine.Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.Mutex
	games          map[string]*engine.GameEngine
	pendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games:          map[string]*engine.GameEngine{},
		pendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *engine.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games[gameID]
}

func (s *InMemoryGameStore) FindActiveGame(gameID string) *engine.GameEngine {
	game := s.FindGame(gameID)
	if game == nil || game.PlayState() == engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindInactiveGame(gameID string) *engine.GameEngine {
	game := s.FindGame(gameID)
	if game == nil || game.PlayState() != engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	pendingPlayers, ok := s.pendingPlayers[gameID]
	if !ok {
		return nil
	}

	for i, info := range pendingPlayers {
		if info.PlayerID == playerID {
			return &pendingPlayers[i]
		}
	}

	return nil
}

func (s *InMemoryGameStore) AddInactiveGame(game *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", game.ID())
	}

	s.games[game.ID()] = game
	return nil
}

// AddPendingPlayer records the information from which to construct a
// Player once their websocket arrives. Fails if the target game does not
// exist or has started.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	game := s.FindInactiveGame(gameID)
	if game == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPlayers[gameID] = append(s.pendingPlayers[gameID], protocol.PlayerInfo{PlayerID: playerID, Name: name})

	return nil
}

func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player engine.Player) error {
	game := s.FindInactiveGame(gameID)
	if game == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}

	return game.AddPlayer(player)
}

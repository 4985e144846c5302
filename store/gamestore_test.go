package store

import (
	"testing"
	"time"

	"github.com/ludoreno/madiao/engine"
	utils "github.com/ludoreno/madiao/internal"
	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T, gameID string) *engine.GameEngine {
	t.Helper()

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: gameID})
	utils.AssertNoError(t, err)
	return ge
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("finds a stored game", func(t *testing.T) {
		s := NewInMemoryGameStore()
		ge := newEngine(t, "some-game-id")

		utils.AssertNoError(t, s.AddInactiveGame(ge))

		utils.AssertEqual(t, s.FindGame("some-game-id"), ge)
		utils.AssertEqual(t, s.FindInactiveGame("some-game-id"), ge)
		assert.Nil(t, s.FindActiveGame("some-game-id"))
	})

	t.Run("unknown id finds nothing", func(t *testing.T) {
		s := NewInMemoryGameStore()

		assert.Nil(t, s.FindGame("nope"))
		assert.Nil(t, s.FindActiveGame("nope"))
		assert.Nil(t, s.FindInactiveGame("nope"))
	})

	t.Run("rejects a duplicate game id", func(t *testing.T) {
		s := NewInMemoryGameStore()

		utils.AssertNoError(t, s.AddInactiveGame(newEngine(t, "clash")))
		utils.AssertErrored(t, s.AddInactiveGame(newEngine(t, "clash")))
	})

	t.Run("tracks pending players per game", func(t *testing.T) {
		s := NewInMemoryGameStore()
		utils.AssertNoError(t, s.AddInactiveGame(newEngine(t, "some-game-id")))

		playerID := engine.NewID()
		utils.AssertNoError(t, s.AddPendingPlayer("some-game-id", playerID, "Heloise"))

		pending := s.FindPendingPlayer("some-game-id", playerID)
		utils.AssertNotNil(t, pending)
		utils.AssertEqual(t, pending.Name, "Heloise")

		assert.Nil(t, s.FindPendingPlayer("some-game-id", "unknown-player"))
		assert.Nil(t, s.FindPendingPlayer("unknown-game", playerID))
	})

	t.Run("cannot add a pending player to an unknown game", func(t *testing.T) {
		s := NewInMemoryGameStore()
		utils.AssertErrored(t, s.AddPendingPlayer("unknown-game", engine.NewID(), "Elton"))
	})

	t.Run("a started game accepts no pending players", func(t *testing.T) {
		s := NewInMemoryGameStore()
		ge := newEngine(t, "busy-game")
		utils.AssertNoError(t, s.AddInactiveGame(ge))

		go ge.Listen()
		for _, name := range []string{"Harry", "Sally"} {
			utils.AssertNoError(t, ge.AddPlayer(engine.NewTestPlayer(engine.NewID(), name)))
		}
		utils.Within(t, time.Second, func() {
			for len(ge.Players()) < 2 {
				time.Sleep(5 * time.Millisecond)
			}
		})
		utils.AssertNoError(t, ge.Start())

		err := s.AddPendingPlayer("busy-game", engine.NewID(), "Late")
		utils.AssertErrored(t, err)
	})
}

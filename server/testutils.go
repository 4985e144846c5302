package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/ludoreno/madiao/engine"
	utils "github.com/ludoreno/madiao/internal"
	"github.com/ludoreno/madiao/protocol"
	"github.com/ludoreno/madiao/store"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newJoinGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

// newServerWithInactiveGame returns a GameServer holding one un-started
// game with two pending players
func newServerWithInactiveGame(t *testing.T) (*GameServer, string) {
	t.Helper()

	st := store.NewInMemoryGameStore()
	gameID := "some-pending-id"

	game, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:    gameID,
		CreatorID: "hersha-1",
	})
	if err != nil {
		t.Fatal(err)
	}
	go game.Listen()

	utils.AssertNoError(t, st.AddInactiveGame(game))
	utils.AssertNoError(t, st.AddPendingPlayer(gameID, "hersha-1", "Hersha"))
	utils.AssertNoError(t, st.AddPendingPlayer(gameID, "pending-player-id", "Penelope"))

	return NewServer(st), gameID
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, want string) {
	t.Helper()

	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	var got PendingGameRes
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	if got.Name != want {
		t.Errorf("got %s, want %s", got.Name, want)
	}
	if len(got.GameID) == 0 {
		t.Error("expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("expected a player id")
	}
}

func dialWS(url string) (*websocket.Conn, *http.Response, error) {
	return websocket.DefaultDialer.Dial(url, nil)
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s: %v", url, err)
	}

	return ws
}

func mustReadWSMessage(t *testing.T, ws *websocket.Conn) protocol.OutboundMessage {
	t.Helper()

	var msg protocol.OutboundMessage
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("could not read ws message: %v", err)
	}
	return msg
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") +
		"/ws?game_id=" + gameID + "&player_id=" + playerID
}

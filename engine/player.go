package engine

import (
	"github.com/gorilla/websocket"
	"github.com/ludoreno/madiao/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a connection to a player in the real world
type Player interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// Players is a collection of players in join order
type Players []Player

// Find looks up a player by ID
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// AddPlayer adds a player if not already present
func AddPlayer(ps Players, p Player) Players {
	if _, ok := ps.Find(p.ID()); !ok {
		return append(ps, p)
	}
	return ps
}

// WSPlayer represents a player connected over a websocket
type WSPlayer struct {
	id   string
	name string
	conn *websocket.Conn
}

// NewWSPlayer constructs a websocket-backed player
func NewWSPlayer(id, name string, conn *websocket.Conn) *WSPlayer {
	return &WSPlayer{id: id, name: name, conn: conn}
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// Send writes a message to the player's websocket connection
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	return p.conn.WriteJSON(msg)
}

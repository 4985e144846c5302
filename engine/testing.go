package engine

import (
	"sync"

	"github.com/ludoreno/madiao/protocol"
)

// TestPlayer is an in-memory Player that records what it is sent
type TestPlayer struct {
	id   string
	name string

	mu   sync.Mutex
	msgs []protocol.OutboundMessage
}

// NewTestPlayer constructs a TestPlayer
func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (p *TestPlayer) ID() string {
	return p.id
}

func (p *TestPlayer) Name() string {
	return p.name
}

func (p *TestPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

// Messages returns everything sent to the player so far
func (p *TestPlayer) Messages() []protocol.OutboundMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := make([]protocol.OutboundMessage, len(p.msgs))
	copy(msgs, p.msgs)
	return msgs
}

// LastMessage returns the most recent message, if any
func (p *TestPlayer) LastMessage() (protocol.OutboundMessage, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.msgs) == 0 {
		return protocol.OutboundMessage{}, false
	}
	return p.msgs[len(p.msgs)-1], true
}

// SomePlayers returns two TestPlayers for tests
func SomePlayers() Players {
	return Players{
		NewTestPlayer(NewID(), "Harry"),
		NewTestPlayer(NewID(), "Sally"),
	}
}

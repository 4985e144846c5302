package protocol

// PlayerInfo identifies a player over the wire
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// CardView is a card over the wire. Suit is the suit name; Rank is the
// numeric rank value (1-6).
type CardView struct {
	Suit     string `json:"suit"`
	Rank     int    `json:"rank"`
	Revealed bool   `json:"revealed"`
}

// PlayView describes the pile's most recent play as non-declarers see
// it: the declarer, the claim and the card count, without the cards'
// true ranks until a challenge flips them.
type PlayView struct {
	PlayerName   string `json:"playerName"`
	DeclaredRank int    `json:"declaredRank"`
	CardCount    int    `json:"cardCount"`
}

// InboundMessage is a message from Player to GameEngine
type InboundMessage struct {
	PlayerID     string     `json:"playerID"`
	Command      Cmd        `json:"command"`
	Cards        []CardView `json:"cards,omitempty"`
	DeclaredRank int        `json:"declaredRank,omitempty"`
}

// OutboundMessage is a message from GameEngine to Player
type OutboundMessage struct {
	PlayerID      string     `json:"playerID"`
	Command       Cmd        `json:"command"`
	Message       string     `json:"message,omitempty"`
	Hand          []CardView `json:"hand,omitempty"`
	LastPlay      *PlayView  `json:"lastPlay,omitempty"`
	PileSize      int        `json:"pileSize,omitempty"`
	DiscardSize   int        `json:"discardSize,omitempty"`
	Round         int        `json:"round,omitempty"`
	CurrentTurn   PlayerInfo `json:"currentTurn,omitempty"`
	Joiner        PlayerInfo `json:"joiner,omitempty"`
	Opponents     []Opponent `json:"opponents,omitempty"`
	Winner        string     `json:"winner,omitempty"`
	ShouldRespond bool       `json:"shouldRespond"`
	Error         string     `json:"error,omitempty"`
}

// Opponent is a representation of an opponent player
type Opponent struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	HandSize int    `json:"handSize"`
}

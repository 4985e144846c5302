package engine

import (
	"fmt"

	"github.com/ludoreno/madiao/deck"
	"github.com/ludoreno/madiao/game"
	"github.com/ludoreno/madiao/protocol"
)

func cardViews(cards []*deck.Card) []protocol.CardView {
	views := []protocol.CardView{}
	for _, c := range cards {
		views = append(views, protocol.CardView{
			Suit:     c.Suit().String(),
			Rank:     c.Rank().Value(),
			Revealed: c.Revealed(),
		})
	}
	return views
}

func playView(play *game.Play) *protocol.PlayView {
	if play == nil {
		return nil
	}
	return &protocol.PlayView{
		PlayerName:   play.Player().Name(),
		DeclaredRank: play.DeclaredRank().Value(),
		CardCount:    play.Size(),
	}
}

// buildTurnMessages builds one message per player carrying that player's
// view of the game: their own hand, the public last play and whose turn
// it is. Only the current player is asked to respond.
func (ge *GameEngine) buildTurnMessages(command protocol.Cmd, note string) []protocol.OutboundMessage {
	currentSeat := ge.game.CurrentPlayer()
	currentInfo := ge.seatInfo(currentSeat)

	msgs := []protocol.OutboundMessage{}
	for _, p := range ge.Players() {
		seat := ge.seats[p.ID()]
		msgs = append(msgs, protocol.OutboundMessage{
			PlayerID:      p.ID(),
			Command:       command,
			Message:       note,
			Hand:          cardViews(seat.Hand()),
			LastPlay:      playView(ge.game.Pile().LastPlay()),
			PileSize:      ge.game.Pile().Size(),
			DiscardSize:   ge.game.DiscardPile().Size(),
			Round:         ge.game.RoundNumber(),
			CurrentTurn:   currentInfo,
			Opponents:     ge.opponentsOf(p.ID()),
			ShouldRespond: seat == currentSeat,
		})
	}
	return msgs
}

func (ge *GameEngine) buildGameOverMessages(winner *game.Player) []protocol.OutboundMessage {
	msgs := []protocol.OutboundMessage{}
	for _, p := range ge.Players() {
		seat := ge.seats[p.ID()]
		msgs = append(msgs, protocol.OutboundMessage{
			PlayerID: p.ID(),
			Command:  protocol.GameOver,
			Message:  fmt.Sprintf("%s has won!", winner.Name()),
			Hand:     cardViews(seat.Hand()),
			Round:    ge.game.RoundNumber(),
			Winner:   winner.Name(),
		})
	}
	return msgs
}

func (ge *GameEngine) seatInfo(seat *game.Player) protocol.PlayerInfo {
	for _, p := range ge.Players() {
		if ge.seats[p.ID()] == seat {
			return protocol.PlayerInfo{PlayerID: p.ID(), Name: p.Name()}
		}
	}
	return protocol.PlayerInfo{}
}

func (ge *GameEngine) opponentsOf(playerID string) []protocol.Opponent {
	opponents := []protocol.Opponent{}
	for _, p := range ge.Players() {
		if p.ID() == playerID {
			continue
		}
		opponents = append(opponents, protocol.Opponent{
			PlayerID: p.ID(),
			Name:     p.Name(),
			HandSize: ge.seats[p.ID()].HandSize(),
		})
	}
	return opponents
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ludoreno/madiao/deck"
	"github.com/ludoreno/madiao/game"
)

var (
	suitColors = map[deck.Suit]*color.Color{
		deck.Coins:    color.New(color.FgYellow),
		deck.Chalices: color.New(color.FgRed),
		deck.Wands:    color.New(color.FgGreen),
		deck.Swords:   color.New(color.FgBlue),
	}
	headline = color.New(color.Bold)
	verdict  = color.New(color.Bold, color.FgMagenta)
)

// runHotSeat drives a whole game on one terminal, prompting each player
// in turn. Everyone can see the screen, so bluffs rely on the players
// looking away politely.
func runHotSeat(names []string) error {
	players := make([]*game.Player, len(names))
	for i, name := range names {
		players[i] = game.NewPlayer(name)
	}

	g, err := game.New(players, nil)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(os.Stdin)

	for {
		player := g.CurrentPlayer()
		printTable(g, player)

		if g.Pile().LastPlay() != nil {
			fmt.Print("(p)lay or (c)hallenge? ")
			choice := strings.ToLower(readLine(in))
			if strings.HasPrefix(choice, "c") {
				outcome := g.Challenge(player)
				printChallenge(outcome)
				continue
			}
		}

		winner, err := promptPlay(in, g, player)
		if err != nil {
			fmt.Printf("that didn't work: %v\n", err)
			continue
		}
		if winner != nil {
			headline.Printf("\n%s wins!\n", winner.Name())
			return nil
		}
	}
}

func printTable(g *game.Game, current *game.Player) {
	headline.Printf("\n--- round %d: %s to act ---\n", g.RoundNumber(), current.Name())

	for _, p := range g.Players() {
		if p != current {
			fmt.Printf("%s holds %d cards\n", p.Name(), p.HandSize())
		}
	}

	if last := g.Pile().LastPlay(); last != nil {
		fmt.Printf("pile: %d cards; %s declared %d x %s\n",
			g.Pile().Size(), last.Player().Name(), last.Size(), last.DeclaredRank())
	} else {
		fmt.Println("pile: empty")
	}

	fmt.Printf("your hand:\n")
	for i, c := range current.Hand() {
		fmt.Printf("  %2d. %s\n", i+1, renderCard(c))
	}
}

func printChallenge(outcome game.ChallengeOutcome) {
	if !outcome.Resolved {
		fmt.Println("nothing on the pile to challenge")
		return
	}
	if outcome.Successful {
		verdict.Println("caught bluffing!")
	} else {
		verdict.Println("the declaration was honest")
	}
	fmt.Printf("%s picks up %d cards and starts the next round\n",
		outcome.Loser.Name(), outcome.PenaltyCards)
}

// promptPlay asks for card positions and a declared rank, then commits
// the play. A rejected play leaves the game untouched, so the caller
// just prompts again.
func promptPlay(in *bufio.Scanner, g *game.Game, player *game.Player) (*game.Player, error) {
	fmt.Print("cards to play (positions, e.g. 1 3): ")
	cards, err := pickCards(player.Hand(), readLine(in))
	if err != nil {
		return nil, err
	}

	fmt.Print("declared rank (1-6): ")
	rank, err := strconv.Atoi(strings.TrimSpace(readLine(in)))
	if err != nil || rank < 1 || rank > 6 {
		return nil, fmt.Errorf("rank must be a number from 1 to 6")
	}

	outcome, err := g.PlayCards(player, cards, deck.Rank(rank))
	if err != nil {
		return nil, err
	}

	fmt.Printf("%s plays %d x %s\n", player.Name(), outcome.Play.Size(), outcome.Play.DeclaredRank())
	return outcome.Winner, nil
}

func pickCards(hand []*deck.Card, input string) ([]*deck.Card, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("pick at least one card")
	}

	seen := make(map[int]bool)
	cards := make([]*deck.Card, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(hand) {
			return nil, fmt.Errorf("%q is not a card position", f)
		}
		if seen[n] {
			return nil, fmt.Errorf("position %d picked twice", n)
		}
		seen[n] = true
		cards = append(cards, hand[n-1])
	}

	return cards, nil
}

func renderCard(c *deck.Card) string {
	return suitColors[c.Suit()].Sprint(c.String())
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		fmt.Println()
		os.Exit(0)
	}
	return in.Text()
}

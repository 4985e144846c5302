package deck

import "fmt"

// Suit represents a suit in the Madiao deck
type Suit int

var suitNames = []string{"Coins", "Chalices", "Wands", "Swords"}

const (
	Coins Suit = iota
	Chalices
	Wands
	Swords
)

func (s Suit) String() string {
	return suitNames[s]
}

// Rank represents a card rank. Values run 1 to 6.
type Rank int

var rankNames = []string{"One", "Two", "Three", "Four", "Five", "Six"}

const (
	One Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
)

func (r Rank) String() string {
	return rankNames[r-1]
}

// Value returns the numeric value of the rank
func (r Rank) Value() int {
	return int(r)
}

// Card is a single card in the deck. Identity is the (suit, rank) pair;
// the revealed flag is display state and plays no part in equality.
// A card is constructed once and then moved between the deck, hands and
// piles, so it is handled by pointer everywhere.
type Card struct {
	suit     Suit
	rank     Rank
	revealed bool
}

// NewCard constructs a face-down card
func NewCard(suit Suit, rank Rank) *Card {
	if suit < Coins || suit > Swords || rank < One || rank > Six {
		panic(fmt.Sprintf("card out of range: suit %d, rank %d", suit, rank))
	}
	return &Card{suit: suit, rank: rank}
}

// Suit returns the card's suit
func (c *Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c *Card) Rank() Rank {
	return c.rank
}

// Reveal turns the card face up
func (c *Card) Reveal() {
	c.revealed = true
}

// Hide turns the card face down
func (c *Card) Hide() {
	c.revealed = false
}

// Revealed reports whether the card is face up
func (c *Card) Revealed() bool {
	return c.revealed
}

// Equals compares cards by suit and rank only
func (c *Card) Equals(other *Card) bool {
	if other == nil {
		return false
	}
	return c.suit == other.suit && c.rank == other.rank
}

func (c *Card) String() string {
	if !c.revealed {
		return "a facedown card"
	}
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

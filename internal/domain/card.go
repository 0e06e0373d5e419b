package domain

import "fmt"

// Suit identifies one of the four French suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit code used on the wire.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank is the card rank, 2 through 14 where 14 is the Ace.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank code ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is a single playing card. Cards are immutable values compared with ==.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// KingOfHeartsCard is the penalty card of the KingOfHearts contract.
var KingOfHeartsCard = Card{Suit: Hearts, Rank: King}

// Index maps a card onto 0..51: clubs 0-12, diamonds 13-25, hearts 26-38,
// spades 39-51, ranks ascending within each suit. This is the layout the
// policy models were trained against, so it must not change.
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank) - 2
}

// CardFromIndex is the inverse of Index.
func CardFromIndex(i int) Card {
	return Card{Suit: Suit(i / 13), Rank: Rank(i%13 + 2)}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

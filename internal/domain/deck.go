package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// NewDeck returns the full 52-card deck in index order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Clubs; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck using the provided rng.
// Callers seed the rng for reproducible deals.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a 52-card deck into four 13-card hands, handing the first block
// to seat `first` and continuing in seat rotation. Returns ErrInvalidDeckSize
// if the deck is not exactly 52 cards. A duplicated card in the deck is a
// logic defect, not bad input, and panics.
func Deal(deck []Card, first int) ([4][]Card, error) {
	var hands [4][]Card
	if len(deck) != 52 {
		return hands, fmt.Errorf("%w: %d cards", ErrInvalidDeckSize, len(deck))
	}

	var seen [52]bool
	for _, c := range deck {
		if seen[c.Index()] {
			panic(fmt.Sprintf("deal: duplicate card %s in deck", c))
		}
		seen[c.Index()] = true
	}

	for i := 0; i < 4; i++ {
		seat := (first + i) % 4
		hand := append([]Card{}, deck[i*HandSize:(i+1)*HandSize]...)
		SortHand(hand)
		hands[seat] = hand
	}
	return hands, nil
}

// SortHand orders a hand ascending by card index (suit-major, rank-minor).
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Index() < cards[j].Index()
	})
}

// HasSuit reports whether the hand holds at least one card of the suit.
func HasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// HoldsCard reports whether the hand contains the exact card.
func HoldsCard(hand []Card, target Card) bool {
	_, ok := indexOfCard(hand, target)
	return ok
}

// RemoveCard returns the hand with one occurrence of the card removed.
func RemoveCard(hand []Card, target Card) []Card {
	idx, ok := indexOfCard(hand, target)
	if !ok {
		return hand
	}
	out := make([]Card, 0, len(hand)-1)
	out = append(out, hand[:idx]...)
	return append(out, hand[idx+1:]...)
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

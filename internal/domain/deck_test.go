package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}
	var seen [52]bool
	for _, c := range deck {
		if seen[c.Index()] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c.Index()] = true
	}
}

func TestShuffleDeckIsDeterministicPerSeed(t *testing.T) {
	a := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(7)))
	b := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffles diverge at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestDealHandsPartitionTheDeck(t *testing.T) {
	deck := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(42)))
	hands, err := Deal(deck, 0)
	if err != nil {
		t.Fatalf("deal error: %v", err)
	}

	var seen [52]int
	for seat := 0; seat < 4; seat++ {
		if len(hands[seat]) != HandSize {
			t.Fatalf("seat %d hand size = %d, want %d", seat, len(hands[seat]), HandSize)
		}
		for _, c := range hands[seat] {
			seen[c.Index()]++
		}
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("card %s dealt %d times, want 1", CardFromIndex(i), n)
		}
	}
}

func TestDealRotationStartsAtFirstRecipient(t *testing.T) {
	deck := NewDeck()
	hands, err := Deal(deck, 2)
	if err != nil {
		t.Fatalf("deal error: %v", err)
	}
	// First 13-card block of an unshuffled deck is all clubs; it must land on
	// seat 2.
	for _, c := range hands[2] {
		if c.Suit != Clubs {
			t.Fatalf("seat 2 got %s, want clubs only", c)
		}
	}
}

func TestDealRejectsWrongDeckSize(t *testing.T) {
	_, err := Deal(NewDeck()[:51], 0)
	if !errors.Is(err, ErrInvalidDeckSize) {
		t.Fatalf("err = %v, want ErrInvalidDeckSize", err)
	}
}

func TestCardIndexRoundTrip(t *testing.T) {
	for i := 0; i < 52; i++ {
		if got := CardFromIndex(i).Index(); got != i {
			t.Fatalf("index round trip %d -> %d", i, got)
		}
	}
	if got := KingOfHeartsCard.Index(); got != 37 {
		t.Fatalf("king of hearts index = %d, want 37", got)
	}
}

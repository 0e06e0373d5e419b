package brain

import (
	"testing"

	"trex/internal/domain"
)

func TestRecordPlayMarksVoids(t *testing.T) {
	m := NewMemory()

	// Seat 1 discards a spade on a hearts lead: proven void in hearts.
	m.RecordPlay(1, domain.Card{Suit: domain.Spades, Rank: domain.Two}, domain.Hearts, true)
	if !m.IsVoid(1, domain.Hearts) {
		t.Fatalf("seat 1 should be void in hearts")
	}
	if m.IsVoid(1, domain.Spades) {
		t.Fatalf("seat 1 must not be void in spades")
	}
	if m.HandCounts[1] != domain.HandSize-1 {
		t.Fatalf("hand count = %d, want %d", m.HandCounts[1], domain.HandSize-1)
	}

	// Leading a card proves nothing about voids.
	m.RecordPlay(2, domain.Card{Suit: domain.Clubs, Rank: domain.Ace}, domain.Clubs, false)
	if m.IsVoid(2, domain.Clubs) {
		t.Fatalf("leader must not be marked void")
	}
}

func TestHighestOutstandingSkipsPlayedAndMine(t *testing.T) {
	m := NewMemory()
	m.MarkMine([]domain.Card{{Suit: domain.Hearts, Rank: domain.Ace}})
	m.RecordPlay(0, domain.Card{Suit: domain.Hearts, Rank: domain.King}, domain.Hearts, true)

	c, ok := m.HighestOutstanding(domain.Hearts)
	if !ok {
		t.Fatalf("expected an outstanding heart")
	}
	if c != (domain.Card{Suit: domain.Hearts, Rank: domain.Queen}) {
		t.Fatalf("highest outstanding = %s, want QH", c)
	}
}

func TestPenaltiesOutstanding(t *testing.T) {
	m := NewMemory()
	if got := m.PenaltiesOutstanding(domain.ContractQueens); got != 4 {
		t.Fatalf("queens outstanding = %d, want 4", got)
	}

	m.RecordPlay(0, domain.Card{Suit: domain.Clubs, Rank: domain.Queen}, domain.Clubs, true)
	m.MarkMine([]domain.Card{{Suit: domain.Spades, Rank: domain.Queen}})
	if got := m.PenaltiesOutstanding(domain.ContractQueens); got != 2 {
		t.Fatalf("queens outstanding = %d, want 2", got)
	}

	if got := m.PenaltiesOutstanding(domain.ContractKingOfHearts); got != 1 {
		t.Fatalf("king outstanding = %d, want 1", got)
	}
	if got := m.PenaltiesOutstanding(domain.ContractCollections); got != 0 {
		t.Fatalf("collections penalizes tricks, not cards; got %d", got)
	}
}

func TestResetRestoresFreshRound(t *testing.T) {
	m := NewMemory()
	m.RecordPlay(3, domain.Card{Suit: domain.Diamonds, Rank: domain.Nine}, domain.Hearts, true)
	m.Reset()

	if m.IsPlayed(domain.Card{Suit: domain.Diamonds, Rank: domain.Nine}) {
		t.Fatalf("reset must forget played cards")
	}
	if m.IsVoid(3, domain.Hearts) {
		t.Fatalf("reset must forget voids")
	}
	if m.HandCounts[3] != domain.HandSize {
		t.Fatalf("reset must restore hand counts")
	}
}

package brain

import "trex/internal/domain"

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // somewhere in an opponent's hand
	StatusMine                      // in the bot's hand
	StatusPlayed                    // already on the table
)

// Memory is a bot's private view of one round: which cards are gone, which
// seats are void in which suits, and how many penalty cards are still live.
type Memory struct {
	// Cards tracks all 52 cards by domain card index.
	Cards [52]CardStatus
	// Void marks seats proven out of a suit by an off-suit play.
	Void [4][4]bool
	// HandCounts tracks cards remaining per seat.
	HandCounts [4]int
}

// NewMemory initializes a fresh memory for a new round.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears the memory for a new round.
func (m *Memory) Reset() {
	for i := range m.Cards {
		m.Cards[i] = StatusUnknown
	}
	m.Void = [4][4]bool{}
	for seat := range m.HandCounts {
		m.HandCounts[seat] = domain.HandSize
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *Memory) MarkMine(hand []domain.Card) {
	for _, c := range hand {
		m.Cards[c.Index()] = StatusMine
	}
}

// RecordPlay logs one play and what it reveals: the card is gone, the seat is
// one card shorter, and an off-suit play proves a void.
func (m *Memory) RecordPlay(seat int, card domain.Card, ledSuit domain.Suit, followed bool) {
	m.Cards[card.Index()] = StatusPlayed
	if m.HandCounts[seat] > 0 {
		m.HandCounts[seat]--
	}
	if followed && card.Suit != ledSuit {
		m.Void[seat][ledSuit] = true
	}
}

// IsPlayed reports whether the card is already out of the round.
func (m *Memory) IsPlayed(c domain.Card) bool {
	return m.Cards[c.Index()] == StatusPlayed
}

// IsVoid reports whether the seat has proven itself out of the suit.
func (m *Memory) IsVoid(seat int, s domain.Suit) bool {
	return m.Void[seat][s]
}

// HighestOutstanding returns the highest card of the suit not yet played and
// not in the bot's hand, and whether one exists.
func (m *Memory) HighestOutstanding(s domain.Suit) (domain.Card, bool) {
	for r := domain.Ace; r >= domain.Two; r-- {
		c := domain.Card{Suit: s, Rank: r}
		if m.Cards[c.Index()] == StatusUnknown {
			return c, true
		}
	}
	return domain.Card{}, false
}

// PenaltiesOutstanding counts the penalty cards of the contract still in
// unknown hands. Collections and Trex penalize events, not cards, so they
// always report zero.
func (m *Memory) PenaltiesOutstanding(contract domain.Contract) int {
	n := 0
	for i, status := range m.Cards {
		if status != StatusUnknown {
			continue
		}
		if isPenaltyCard(domain.CardFromIndex(i), contract) {
			n++
		}
	}
	return n
}

func isPenaltyCard(c domain.Card, contract domain.Contract) bool {
	switch contract {
	case domain.ContractKingOfHearts:
		return c == domain.KingOfHeartsCard
	case domain.ContractQueens:
		return c.Rank == domain.Queen
	case domain.ContractDiamonds:
		return c.Suit == domain.Diamonds
	default:
		return false
	}
}

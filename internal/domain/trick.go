package domain

// Play is a single card placed into a trick by a seat.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Trick is one exchange of up to four cards, led by Leader. The led suit is
// the suit of the first play.
type Trick struct {
	Leader int    `json:"leader"`
	Plays  []Play `json:"plays"`
}

// LedSuit returns the suit of the first play. Only meaningful once a card has
// been played.
func (t *Trick) LedSuit() Suit {
	return t.Plays[0].Card.Suit
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == 4
}

// Turn returns the seat due to play next.
func (t *Trick) Turn() int {
	return (t.Leader + len(t.Plays)) % 4
}

// Winner resolves a complete trick: the highest rank among cards of the led
// suit wins. Off-suit cards never win; there is no trump in this family.
func (t *Trick) Winner() int {
	led := t.LedSuit()
	best := 0
	for i := 1; i < len(t.Plays); i++ {
		c := t.Plays[i].Card
		b := t.Plays[best].Card
		if c.Suit == led && (b.Suit != led || c.Rank > b.Rank) {
			best = i
		}
	}
	return t.Plays[best].Seat
}

// IsLegalPlay reports whether the card may be played from the hand onto the
// trick: it must be held, and it must follow the led suit unless the hand is
// void of it. The trick leader may play anything.
func IsLegalPlay(hand []Card, card Card, t *Trick) error {
	if !HoldsCard(hand, card) {
		return ErrCardNotHeld
	}
	if len(t.Plays) == 0 {
		return nil
	}
	led := t.LedSuit()
	if card.Suit != led && HasSuit(hand, led) {
		return ErrIllegalPlay
	}
	return nil
}

// LegalPlays returns every card the hand may legally put on the trick.
func LegalPlays(hand []Card, t *Trick) []Card {
	if len(t.Plays) == 0 {
		return append([]Card(nil), hand...)
	}
	led := t.LedSuit()
	if !HasSuit(hand, led) {
		return append([]Card(nil), hand...)
	}
	var out []Card
	for _, c := range hand {
		if c.Suit == led {
			out = append(out, c)
		}
	}
	return out
}

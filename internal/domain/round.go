package domain

// Round is one contract's worth of play: the dealt hands, the trick in
// progress, completed tricks, and what each seat has captured so far. It is
// created when the selector commits to a contract and folded into the ledger
// at round end.
type Round struct {
	Contract Contract `json:"contract"`
	Selector int      `json:"selector"`

	Hands    [4][]Card `json:"hands"`
	Current  *Trick    `json:"current,omitempty"`
	Tricks   []Trick   `json:"tricks"`
	Captured [4][]Card `json:"captured"`

	TricksWon [4]int `json:"tricks_won"`
	// FirstOut is the first seat to empty its hand, or -1. Only Trex cares.
	FirstOut int `json:"first_out"`
	// OpeningLead, when set, is the card the first trick must open with.
	OpeningLead *Card `json:"opening_lead,omitempty"`
}

func newRound(contract Contract, selector, leader int, hands [4][]Card, opening *Card) *Round {
	r := &Round{
		Contract:    contract,
		Selector:    selector,
		Hands:       hands,
		FirstOut:    -1,
		OpeningLead: opening,
	}
	r.Current = &Trick{Leader: leader}
	return r
}

// Turn returns the seat due to act, or -1 when the round is over.
func (r *Round) Turn() int {
	if r.Current == nil {
		return -1
	}
	return r.Current.Turn()
}

// Finished reports whether the round's termination predicate holds: all hands
// empty, or the contract's early-end condition (Trex) already met.
func (r *Round) Finished() bool {
	if ruleFor(r.Contract).earlyEnd(r) {
		return true
	}
	for seat := 0; seat < 4; seat++ {
		if len(r.Hands[seat]) > 0 {
			return false
		}
	}
	return true
}

// Score applies the contract's scoring rule to the completed round.
func (r *Round) Score() [4]int {
	return ruleFor(r.Contract).score(r)
}

// playCard moves a validated card from the seat's hand onto the current
// trick, resolving the trick when it completes. Validation happens in
// MatchState.PlayCard; this helper only mutates.
func (r *Round) playCard(seat int, card Card) {
	r.Hands[seat] = RemoveCard(r.Hands[seat], card)
	r.Current.Plays = append(r.Current.Plays, Play{Seat: seat, Card: card})

	if len(r.Hands[seat]) == 0 && r.FirstOut < 0 {
		r.FirstOut = seat
	}

	if r.Current.Complete() {
		winner := r.Current.Winner()
		for _, p := range r.Current.Plays {
			r.Captured[winner] = append(r.Captured[winner], p.Card)
		}
		r.TricksWon[winner]++
		r.Tricks = append(r.Tricks, *r.Current)
		if r.Finished() {
			r.Current = nil
			return
		}
		r.Current = &Trick{Leader: winner}
		return
	}

	// Trex ends the instant a hand empties, mid-trick included. The partial
	// trick is abandoned unscored.
	if ruleFor(r.Contract).earlyEnd(r) {
		r.Current = nil
	}
}

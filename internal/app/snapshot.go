package app

import "trex/internal/domain"

// SeatView is the per-seat slice of a snapshot. Hand is populated only for
// the viewing seat (or for every seat in a full-visibility snapshot).
type SeatView struct {
	Seat      int           `json:"seat"`
	Hand      []domain.Card `json:"hand,omitempty"`
	HandCount int           `json:"hand_count"`
	Score     int           `json:"score"`
	TricksWon int           `json:"tricks_won"`
}

// Snapshot is a read-only view of the match for one viewer: phase, visible
// hands, the open trick, scores, and the viewer's legal actions. Consumed by
// render ticks and by policy encoders.
type Snapshot struct {
	Phase        domain.Phase         `json:"phase"`
	Mode         domain.SelectionMode `json:"mode"`
	Cycle        int                  `json:"cycle"`
	RoundInCycle int                  `json:"round_in_cycle"`
	Selector     int                  `json:"selector"`
	Declarer     int                  `json:"declarer"`
	Turn         int                  `json:"turn"`

	Contract      *domain.Contract  `json:"contract,omitempty"`
	UsedContracts []domain.Contract `json:"used_contracts"`
	Bids          []domain.Bid      `json:"bids,omitempty"`
	Trick         []domain.Play     `json:"trick,omitempty"`
	TricksPlayed  int               `json:"tricks_played"`

	Seats        [4]SeatView       `json:"seats"`
	Standings    []domain.Standing `json:"standings"`
	LastDeltas   [4]int            `json:"last_deltas"`
	LegalActions []Action          `json:"legal_actions,omitempty"`
}

// Snapshot renders the match as seen from the given seat. Pass a negative
// viewer for a hands-hidden observer view.
func (s *Service) Snapshot(g *domain.MatchState, viewer int) Snapshot {
	return s.snapshot(g, viewer, false)
}

// SnapshotAll renders the match with every hand visible, for spectators with
// full access and for tests.
func (s *Service) SnapshotAll(g *domain.MatchState) Snapshot {
	return s.snapshot(g, -1, true)
}

func (s *Service) snapshot(g *domain.MatchState, viewer int, revealAll bool) Snapshot {
	snap := Snapshot{
		Phase:        g.Phase,
		Mode:         g.Params.Mode,
		Cycle:        g.Cycle,
		RoundInCycle: g.RoundInCycle,
		Selector:     g.Selector,
		Declarer:     g.Declarer,
		Turn:         g.Turn(),
		Bids:         append([]domain.Bid(nil), g.Bids...),
		Standings:    g.Ledger.Standings(),
		LastDeltas:   g.LastDeltas,
	}

	for c := domain.ContractKingOfHearts; c <= domain.ContractTrex; c++ {
		if g.Used[c] {
			snap.UsedContracts = append(snap.UsedContracts, c)
		}
	}

	hands := g.Hands
	var tricksWon [4]int
	if g.Round != nil {
		hands = g.Round.Hands
		tricksWon = g.Round.TricksWon
		contract := g.Round.Contract
		snap.Contract = &contract
		snap.TricksPlayed = len(g.Round.Tricks)
		if g.Round.Current != nil {
			snap.Trick = append([]domain.Play(nil), g.Round.Current.Plays...)
		}
	}

	for seat := 0; seat < 4; seat++ {
		view := SeatView{
			Seat:      seat,
			HandCount: len(hands[seat]),
			Score:     g.Ledger.Totals[seat],
			TricksWon: tricksWon[seat],
		}
		if revealAll || seat == viewer {
			view.Hand = append([]domain.Card(nil), hands[seat]...)
		}
		snap.Seats[seat] = view
	}

	if viewer >= 0 {
		snap.LegalActions = s.LegalActions(g, viewer)
	}
	return snap
}

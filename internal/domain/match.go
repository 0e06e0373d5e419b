package domain

// Phase is the lifecycle stage of the current round within the match.
type Phase string

const (
	// PhaseDealing means the next round's deck is about to be shuffled and dealt.
	PhaseDealing Phase = "dealing"
	// PhaseSelecting means hands are dealt and the round is waiting on a
	// contract choice (or a finished auction followed by a choice).
	PhaseSelecting Phase = "selecting"
	// PhasePlaying means tricks are in progress.
	PhasePlaying Phase = "playing"
	// PhaseScoring means the round terminated and awaits folding into the ledger.
	PhaseScoring Phase = "scoring"
	// PhaseDone means the round is folded; the next round begins at dealing.
	PhaseDone Phase = "done"
	// PhaseComplete means the configured number of cycles has been played.
	PhaseComplete Phase = "complete"
)

// SelectionMode picks how the Selecting phase resolves. The two protocols are
// alternate strategies configured per match, never mixed within one match.
type SelectionMode string

const (
	// SelectionKing lets the rotating selector choose the contract directly.
	SelectionKing SelectionMode = "king"
	// SelectionAuction runs one round of numeric bids (7-13 or pass); the
	// winner earns the right to choose the contract.
	SelectionAuction SelectionMode = "auction"
)

// Auction bid bounds, inclusive.
const (
	MinBid = 7
	MaxBid = 13
)

// RoundsPerCycle is fixed: each of the four seats selects once per cycle.
const RoundsPerCycle = 4

// Bid is one auction action. Value is zero on a pass.
type Bid struct {
	Seat  int  `json:"seat"`
	Value int  `json:"value"`
	Pass  bool `json:"pass"`
}

// MatchParams configures a match before the first deal.
type MatchParams struct {
	Mode          SelectionMode     `json:"mode"`
	Cycles        int               `json:"cycles"`
	FirstSelector int               `json:"first_selector"`
	// OpeningLeads forces the holder of a card to lead the first trick of the
	// keyed contract. Empty by default; populated from config.
	OpeningLeads map[Contract]Card `json:"opening_leads,omitempty"`
}

func (p MatchParams) withDefaults() MatchParams {
	if p.Mode == "" {
		p.Mode = SelectionKing
	}
	if p.Cycles <= 0 {
		p.Cycles = 1
	}
	p.FirstSelector = ((p.FirstSelector % 4) + 4) % 4
	return p
}

// MatchState is the authoritative state of one four-seat match. It is a
// strictly turn-sequential machine: exactly one seat's action is valid at any
// time and every accepted action rewrites state synchronously. Callers that
// drive it from concurrent tasks must serialize access themselves.
type MatchState struct {
	Phase  Phase       `json:"phase"`
	Params MatchParams `json:"params"`

	Cycle        int `json:"cycle"`
	RoundInCycle int `json:"round_in_cycle"`
	// Selector rotates one seat per round and opens the auction (or picks the
	// contract outright in king mode).
	Selector int `json:"selector"`

	Used [NumContracts]bool `json:"used"`

	// Hands holds dealt cards between the deal and the contract choice, after
	// which they move into Round.
	Hands [4][]Card `json:"hands,omitempty"`

	Bids []Bid `json:"bids,omitempty"`
	// Declarer is the seat entitled to choose the contract: the selector in
	// king mode, the auction winner otherwise. -1 while an auction is open.
	Declarer int `json:"declarer"`

	Round  *Round `json:"round,omitempty"`
	Ledger Ledger `json:"ledger"`

	// LastDeltas keeps the most recently folded round's scores for snapshots.
	LastDeltas [4]int `json:"last_deltas"`
}

// NewMatch creates a match waiting for its first deal.
func NewMatch(params MatchParams) *MatchState {
	params = params.withDefaults()
	return &MatchState{
		Phase:    PhaseDealing,
		Params:   params,
		Selector: params.FirstSelector,
		Declarer: -1,
	}
}

// Complete reports whether the configured cycle count has been played out.
func (g *MatchState) Complete() bool {
	return g.Phase == PhaseComplete
}

// Turn returns the seat whose action the machine is waiting on, or -1 when no
// seat may act (dealing, scoring, complete).
func (g *MatchState) Turn() int {
	switch g.Phase {
	case PhaseSelecting:
		if g.Params.Mode == SelectionAuction && len(g.Bids) < 4 {
			return (g.Selector + len(g.Bids)) % 4
		}
		return g.Declarer
	case PhasePlaying:
		return g.Round.Turn()
	default:
		return -1
	}
}

// UnusedContracts returns the contracts still selectable this cycle.
func (g *MatchState) UnusedContracts() []Contract {
	var out []Contract
	for c := ContractKingOfHearts; c <= ContractTrex; c++ {
		if !g.Used[c] {
			out = append(out, c)
		}
	}
	return out
}

// StartRound deals the given deck and opens the Selecting phase. The deck is
// normally a fresh shuffle; tests pass arranged decks for reproducibility.
func (g *MatchState) StartRound(deck []Card) error {
	if g.Phase == PhaseComplete {
		return ErrMatchComplete
	}
	if g.Phase != PhaseDealing && g.Phase != PhaseDone {
		return ErrWrongPhase
	}

	hands, err := Deal(deck, g.Selector)
	if err != nil {
		return err
	}

	g.Hands = hands
	g.Bids = nil
	if g.Params.Mode == SelectionAuction {
		g.Declarer = -1
	} else {
		g.Declarer = g.Selector
	}
	g.Phase = PhaseSelecting
	return nil
}

// PlaceBid records one auction action for the seat. Bids run exactly one lap
// of the table starting at the selector; the highest bid wins, ties breaking
// toward the seat that bid first. If all four seats pass, the selector is
// bound to choose anyway.
func (g *MatchState) PlaceBid(seat, value int, pass bool) error {
	if g.Phase == PhaseComplete {
		return ErrMatchComplete
	}
	if g.Phase != PhaseSelecting || g.Params.Mode != SelectionAuction {
		return ErrWrongPhase
	}
	if len(g.Bids) >= 4 {
		return ErrWrongPhase
	}
	if seat != g.Turn() {
		return ErrNotYourTurn
	}
	if !pass && (value < MinBid || value > MaxBid) {
		return ErrBidOutOfRange
	}

	if pass {
		value = 0
	}
	g.Bids = append(g.Bids, Bid{Seat: seat, Value: value, Pass: pass})

	if len(g.Bids) == 4 {
		g.Declarer = g.resolveAuction()
	}
	return nil
}

func (g *MatchState) resolveAuction() int {
	winner := g.Selector
	best := 0
	for _, b := range g.Bids {
		if !b.Pass && b.Value > best {
			best = b.Value
			winner = b.Seat
		}
	}
	return winner
}

// SelectContract commits the declarer to a contract and starts play. The
// declarer leads the first trick unless the contract has a forced opening
// lead, in which case the holder of that card leads and must play it.
func (g *MatchState) SelectContract(seat int, c Contract) error {
	if g.Phase == PhaseComplete {
		return ErrMatchComplete
	}
	if g.Phase != PhaseSelecting {
		return ErrWrongPhase
	}
	if g.Params.Mode == SelectionAuction && len(g.Bids) < 4 {
		return ErrWrongPhase
	}
	if seat != g.Declarer {
		return ErrNotYourTurn
	}
	if c < ContractKingOfHearts || c > ContractTrex {
		return ErrIllegalPlay
	}
	if g.Used[c] {
		return ErrContractUsed
	}

	leader := g.Declarer
	var opening *Card
	if lead, ok := g.Params.OpeningLeads[c]; ok {
		for s := 0; s < 4; s++ {
			if HoldsCard(g.Hands[s], lead) {
				leader = s
				break
			}
		}
		lead := lead
		opening = &lead
	}

	g.Used[c] = true
	g.Round = newRound(c, g.Selector, leader, g.Hands, opening)
	g.Hands = [4][]Card{}
	g.Phase = PhasePlaying
	return nil
}

// PlayCard validates and applies one card play. Rejections are pure: on error
// nothing has changed.
func (g *MatchState) PlayCard(seat int, card Card) error {
	if g.Phase == PhaseComplete {
		return ErrMatchComplete
	}
	if g.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	r := g.Round
	if seat != r.Turn() {
		return ErrNotYourTurn
	}
	if err := IsLegalPlay(r.Hands[seat], card, r.Current); err != nil {
		return err
	}
	if r.OpeningLead != nil && len(r.Tricks) == 0 && len(r.Current.Plays) == 0 && card != *r.OpeningLead {
		return ErrIllegalPlay
	}

	r.playCard(seat, card)
	if r.Current == nil {
		g.Phase = PhaseScoring
	}
	return nil
}

// FinalizeRound folds the terminated round into the ledger, rotates the
// selector, and closes the cycle when all four seats have selected. Returns
// the round's per-seat deltas.
func (g *MatchState) FinalizeRound() ([4]int, error) {
	if g.Phase != PhaseScoring {
		return [4]int{}, ErrWrongPhase
	}

	deltas := g.Round.Score()
	g.Ledger.Apply(deltas)
	g.LastDeltas = deltas
	g.Round = nil

	g.Selector = (g.Selector + 1) % 4
	g.RoundInCycle++
	if g.RoundInCycle == RoundsPerCycle {
		g.RoundInCycle = 0
		g.Cycle++
		g.Used = [NumContracts]bool{}
	}

	if g.Cycle >= g.Params.Cycles {
		g.Phase = PhaseComplete
	} else {
		g.Phase = PhaseDone
	}
	return deltas, nil
}

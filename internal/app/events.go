package app

import "trex/internal/domain"

// EventKind identifies emitted engine events for host dispatch.
type EventKind string

const (
	EventRoundStarted     EventKind = "round_started"
	EventHandDealt        EventKind = "hand_dealt"
	EventBidPlaced        EventKind = "bid_placed"
	EventContractSelected EventKind = "contract_selected"
	EventCardPlayed       EventKind = "card_played"
	EventTrickWon         EventKind = "trick_won"
	EventRoundScored      EventKind = "round_scored"
	EventCycleEnded       EventKind = "cycle_ended"
	EventMatchEnded       EventKind = "match_ended"
)

// Event is an engine event with optional targeted recipient seats.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seat indexes; empty means broadcast
}

type RoundStartedPayload struct {
	Cycle        int                  `json:"cycle"`
	RoundInCycle int                  `json:"round_in_cycle"`
	Selector     int                  `json:"selector"`
	Mode         domain.SelectionMode `json:"mode"`
}

type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type BidPlacedPayload struct {
	Seat int  `json:"seat"`
	Bid  int  `json:"bid"`
	Pass bool `json:"pass"`
	// Declarer is set once the auction lap completes, -1 before that.
	Declarer int `json:"declarer"`
	NextTurn int `json:"next_turn"`
}

type ContractSelectedPayload struct {
	Seat     int             `json:"seat"`
	Contract domain.Contract `json:"contract"`
	Leader   int             `json:"leader"`
}

type CardPlayedPayload struct {
	Seat     int         `json:"seat"`
	Card     domain.Card `json:"card"`
	NextTurn int         `json:"next_turn"`
}

type TrickWonPayload struct {
	Winner int          `json:"winner"`
	Trick  domain.Trick `json:"trick"`
}

type RoundScoredPayload struct {
	Contract domain.Contract `json:"contract"`
	Deltas   [4]int          `json:"deltas"`
	Totals   [4]int          `json:"totals"`
}

type CycleEndedPayload struct {
	Cycle     int               `json:"cycle"`
	Standings []domain.Standing `json:"standings"`
}

type MatchEndedPayload struct {
	Standings []domain.Standing `json:"standings"`
}

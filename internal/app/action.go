package app

import "trex/internal/domain"

// ActionType discriminates the Action union.
type ActionType string

const (
	ActionPlayCard       ActionType = "play_card"
	ActionSelectContract ActionType = "select_contract"
	ActionBid            ActionType = "bid"
	ActionPass           ActionType = "pass"
)

// Action is a single player intent submitted to the engine. Exactly one of
// the value fields is meaningful, keyed by Type.
type Action struct {
	Type     ActionType      `json:"type"`
	Card     domain.Card     `json:"card,omitempty"`
	Contract domain.Contract `json:"contract,omitempty"`
	Bid      int             `json:"bid,omitempty"`
}

// PlayCard builds a card-play action.
func PlayCard(c domain.Card) Action {
	return Action{Type: ActionPlayCard, Card: c}
}

// SelectContract builds a contract-choice action.
func SelectContract(c domain.Contract) Action {
	return Action{Type: ActionSelectContract, Contract: c}
}

// BidValue builds a numeric auction bid.
func BidValue(n int) Action {
	return Action{Type: ActionBid, Bid: n}
}

// Pass builds an auction pass.
func Pass() Action {
	return Action{Type: ActionPass}
}

package nakama

import (
	"trex/internal/domain"
)

// Client request payloads, JSON-encoded in the match data.

type SelectContractRequest struct {
	Contract string `json:"contract"`
}

type PlaceBidRequest struct {
	Bid  int  `json:"bid"`
	Pass bool `json:"pass"`
}

type PlayCardRequest struct {
	Card domain.Card `json:"card"`
}

// Server event payloads.

// PlayerState describes one occupied seat in the lobby broadcast.
type PlayerState struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
}

// LobbySnapshot is broadcast whenever seat occupancy changes.
type LobbySnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"owner_seat"`
	Tick      int64         `json:"tick"`
	Players   []PlayerState `json:"players"`
}

// MatchErrorEvent is sent privately to the user whose action was rejected.
type MatchErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MatchLabel is the indexed match listing document used by quick-match
// queries.
type MatchLabel struct {
	Game  string `json:"game"`
	Open  int    `json:"open"`
	Phase string `json:"phase"`
}

package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameTrex is the authoritative match handler name registered with Nakama.
	MatchNameTrex = "trex_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartMatch     int64 = 1
	OpSelectContract int64 = 2
	OpPlaceBid       int64 = 3
	OpPlayCard       int64 = 4

	// Server -> Client events
	OpPlayerJoined     int64 = 101
	OpPlayerLeft       int64 = 102
	OpRoundStarted     int64 = 103
	OpHandDealt        int64 = 104 // send privately
	OpBidPlaced        int64 = 105
	OpContractSelected int64 = 106
	OpCardPlayed       int64 = 107
	OpTrickWon         int64 = 108
	OpRoundScored      int64 = 109
	OpCycleEnded       int64 = 110
	OpMatchEnded       int64 = 111
	OpMatchError       int64 = 120
)

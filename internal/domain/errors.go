package domain

import "errors"

// Rejection errors. Every one of these is returned before any state is
// mutated, so a rejected action leaves the match exactly as it was.
var (
	ErrIllegalPlay     = errors.New("illegal play")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrContractUsed    = errors.New("contract already used this cycle")
	ErrBidOutOfRange   = errors.New("bid out of range")
	ErrInvalidDeckSize = errors.New("invalid deck size")
	ErrMatchComplete   = errors.New("match already complete")
	ErrWrongPhase      = errors.New("action not valid in current phase")
	ErrCardNotHeld     = errors.New("card not in hand")
)

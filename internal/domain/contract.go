package domain

// Contract is one of the five round-long rule sets. A cycle of four rounds
// consumes four of them, each at most once; the fifth is left to the next
// cycle's selectors.
type Contract int

const (
	ContractKingOfHearts Contract = iota
	ContractQueens
	ContractDiamonds
	ContractCollections
	ContractTrex

	NumContracts = 5
)

func (c Contract) String() string {
	switch c {
	case ContractKingOfHearts:
		return "king_of_hearts"
	case ContractQueens:
		return "queens"
	case ContractDiamonds:
		return "diamonds"
	case ContractCollections:
		return "collections"
	case ContractTrex:
		return "trex"
	default:
		return "unknown"
	}
}

// ContractFromString parses the wire name of a contract.
func ContractFromString(s string) (Contract, bool) {
	for c := ContractKingOfHearts; c <= ContractTrex; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Penalty values. Negative numbers are penalties to the named seat.
const (
	PenaltyKingOfHearts = -75  // capturing the king of hearts
	PenaltyPerQueen     = -25  // per captured queen
	PenaltyPerDiamond   = -10  // per captured diamond-suit card
	PenaltyPerTrick     = -15  // per trick captured under Collections
	BonusTrexFirstOut   = +100 // first seat to empty its hand under Trex
	PenaltyTrexPerCard  = -10  // per card still held when Trex ends
)

// contractRule bundles the behavior that differs per contract: its scoring
// function and its round-termination predicate. Dispatch is a plain switch,
// one record per contract.
type contractRule struct {
	score    func(r *Round) [4]int
	earlyEnd func(r *Round) bool
}

func ruleFor(c Contract) contractRule {
	switch c {
	case ContractKingOfHearts:
		return contractRule{score: scoreKingOfHearts, earlyEnd: neverEarly}
	case ContractQueens:
		return contractRule{score: scoreQueens, earlyEnd: neverEarly}
	case ContractDiamonds:
		return contractRule{score: scoreDiamonds, earlyEnd: neverEarly}
	case ContractCollections:
		return contractRule{score: scoreCollections, earlyEnd: neverEarly}
	case ContractTrex:
		return contractRule{score: scoreTrex, earlyEnd: trexHandEmpty}
	default:
		panic("unknown contract")
	}
}

func neverEarly(*Round) bool { return false }

// trexHandEmpty ends a Trex round the instant any seat runs out of cards,
// even mid-trick.
func trexHandEmpty(r *Round) bool {
	for seat := 0; seat < 4; seat++ {
		if len(r.Hands[seat]) == 0 {
			return true
		}
	}
	return false
}

func scoreKingOfHearts(r *Round) [4]int {
	var deltas [4]int
	for seat := 0; seat < 4; seat++ {
		for _, c := range r.Captured[seat] {
			if c == KingOfHeartsCard {
				deltas[seat] += PenaltyKingOfHearts
			}
		}
	}
	return deltas
}

func scoreQueens(r *Round) [4]int {
	var deltas [4]int
	for seat := 0; seat < 4; seat++ {
		for _, c := range r.Captured[seat] {
			if c.Rank == Queen {
				deltas[seat] += PenaltyPerQueen
			}
		}
	}
	return deltas
}

func scoreDiamonds(r *Round) [4]int {
	var deltas [4]int
	for seat := 0; seat < 4; seat++ {
		for _, c := range r.Captured[seat] {
			if c.Suit == Diamonds {
				deltas[seat] += PenaltyPerDiamond
			}
		}
	}
	return deltas
}

func scoreCollections(r *Round) [4]int {
	var deltas [4]int
	for seat := 0; seat < 4; seat++ {
		deltas[seat] = r.TricksWon[seat] * PenaltyPerTrick
	}
	return deltas
}

// scoreTrex rewards the first seat out and charges everyone else per card
// still in hand at the instant the round ended.
func scoreTrex(r *Round) [4]int {
	var deltas [4]int
	for seat := 0; seat < 4; seat++ {
		if seat == r.FirstOut {
			deltas[seat] = BonusTrexFirstOut
			continue
		}
		deltas[seat] = len(r.Hands[seat]) * PenaltyTrexPerCard
	}
	return deltas
}

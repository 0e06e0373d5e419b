package domain

import "testing"

func TestScoreKingOfHearts(t *testing.T) {
	r := &Round{Contract: ContractKingOfHearts, FirstOut: -1}
	r.Captured[2] = []Card{{Hearts, King}, {Spades, Four}}
	r.Captured[0] = []Card{{Hearts, Ace}}

	deltas := r.Score()
	want := [4]int{0, 0, PenaltyKingOfHearts, 0}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestScoreQueensSumsPerQueen(t *testing.T) {
	r := &Round{Contract: ContractQueens, FirstOut: -1}
	r.Captured[1] = []Card{{Clubs, Queen}, {Hearts, Queen}, {Clubs, Two}}
	r.Captured[3] = []Card{{Spades, Queen}}

	deltas := r.Score()
	want := [4]int{0, 2 * PenaltyPerQueen, 0, PenaltyPerQueen}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestScoreDiamondsCountsSuitOnly(t *testing.T) {
	r := &Round{Contract: ContractDiamonds, FirstOut: -1}
	r.Captured[0] = []Card{{Diamonds, Two}, {Diamonds, Ace}, {Hearts, Ace}}

	deltas := r.Score()
	want := [4]int{2 * PenaltyPerDiamond, 0, 0, 0}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestScoreCollectionsChargesPerTrick(t *testing.T) {
	r := &Round{Contract: ContractCollections, FirstOut: -1}
	r.TricksWon = [4]int{3, 0, 9, 1}

	deltas := r.Score()
	want := [4]int{3 * PenaltyPerTrick, 0, 9 * PenaltyPerTrick, PenaltyPerTrick}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestScoreTrexByRemainingCards(t *testing.T) {
	r := &Round{Contract: ContractTrex, FirstOut: 3}
	r.Hands[0] = []Card{{Clubs, Two}, {Clubs, Three}}
	r.Hands[1] = []Card{{Hearts, Two}, {Hearts, Three}, {Hearts, Four}}
	r.Hands[2] = []Card{{Spades, Two}}
	r.Hands[3] = nil

	deltas := r.Score()
	want := [4]int{
		2 * PenaltyTrexPerCard,
		3 * PenaltyTrexPerCard,
		1 * PenaltyTrexPerCard,
		BonusTrexFirstOut,
	}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestTrexEndsTheInstantAHandEmpties(t *testing.T) {
	r := newRound(ContractTrex, 0, 0, [4][]Card{
		{{Clubs, Five}},
		{{Hearts, Two}, {Hearts, Three}},
		{{Spades, Two}, {Spades, Three}},
		{{Diamonds, Two}, {Diamonds, Three}},
	}, nil)

	r.playCard(0, Card{Clubs, Five})
	if !r.Finished() {
		t.Fatalf("round should be finished when seat 0 empties its hand")
	}
	if r.Current != nil {
		t.Fatalf("no trick should remain open after early termination")
	}
	if r.FirstOut != 0 {
		t.Fatalf("first out = %d, want 0", r.FirstOut)
	}
}

func TestOtherContractsRunThirteenTricks(t *testing.T) {
	for c := ContractKingOfHearts; c <= ContractCollections; c++ {
		rule := ruleFor(c)
		r := &Round{Contract: c, FirstOut: 0}
		// One empty hand must not terminate a 13-trick contract.
		r.Hands[1] = []Card{{Clubs, Two}}
		if rule.earlyEnd(r) {
			t.Fatalf("%s must not terminate early", c)
		}
	}
}

func TestContractFromString(t *testing.T) {
	for c := ContractKingOfHearts; c <= ContractTrex; c++ {
		got, ok := ContractFromString(c.String())
		if !ok || got != c {
			t.Fatalf("round trip %s -> %v (%v)", c, got, ok)
		}
	}
	if _, ok := ContractFromString("whist"); ok {
		t.Fatalf("unknown contract name must not parse")
	}
}

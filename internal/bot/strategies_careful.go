package bot

import (
	"trex/internal/app"
	"trex/internal/bot/brain"
	"trex/internal/domain"
)

// CarefulBot counts cards through the round and plays to avoid penalties:
// it ducks under the winning card when following, dumps its most dangerous
// card when void, and picks the contract its hand suffers least under.
type CarefulBot struct {
	mem      *brain.Memory
	contract domain.Contract
	inRound  bool
	cur      []domain.Play
}

func NewCarefulBot() *CarefulBot {
	return &CarefulBot{mem: brain.NewMemory()}
}

func (b *CarefulBot) OnEvent(event app.Event) {
	switch p := event.Payload.(type) {
	case app.RoundStartedPayload:
		b.mem.Reset()
		b.inRound = false
		b.cur = nil
	case app.HandDealtPayload:
		b.mem.MarkMine(p.Hand)
	case app.ContractSelectedPayload:
		b.contract = p.Contract
		b.inRound = true
	case app.CardPlayedPayload:
		if len(b.cur) == 0 {
			b.mem.RecordPlay(p.Seat, p.Card, p.Card.Suit, false)
		} else {
			b.mem.RecordPlay(p.Seat, p.Card, b.cur[0].Card.Suit, true)
		}
		b.cur = append(b.cur, domain.Play{Seat: p.Seat, Card: p.Card})
	case app.TrickWonPayload:
		b.cur = nil
	}
}

func (b *CarefulBot) ChooseAction(snap app.Snapshot, seat int) (app.Action, error) {
	legal := snap.LegalActions
	if len(legal) == 0 {
		return app.Action{}, errNoLegalActions
	}

	switch legal[0].Type {
	case app.ActionBid:
		return b.chooseBid(snap, seat), nil
	case app.ActionSelectContract:
		return b.chooseContract(snap, seat, legal), nil
	case app.ActionPlayCard:
		return b.choosePlay(snap, seat, legal), nil
	default:
		return legal[0], nil
	}
}

// chooseBid estimates hand strength from court cards and bids only when the
// hand can plausibly steer the round.
func (b *CarefulBot) chooseBid(snap app.Snapshot, seat int) app.Action {
	strength := 0
	for _, c := range snap.Seats[seat].Hand {
		if c.Rank >= domain.Queen {
			strength++
		}
		if c.Rank == domain.Ace {
			strength++
		}
	}
	bid := domain.MinBid + strength - 5
	if bid < domain.MinBid {
		return app.Pass()
	}
	if bid > domain.MaxBid {
		bid = domain.MaxBid
	}
	return app.BidValue(bid)
}

// chooseContract picks the offered contract with the lowest estimated damage
// for this hand.
func (b *CarefulBot) chooseContract(snap app.Snapshot, seat int, legal []app.Action) app.Action {
	hand := snap.Seats[seat].Hand
	best := legal[0]
	bestRisk := contractRisk(legal[0].Contract, hand)
	for _, a := range legal[1:] {
		if r := contractRisk(a.Contract, hand); r < bestRisk {
			best, bestRisk = a, r
		}
	}
	return best
}

func contractRisk(contract domain.Contract, hand []domain.Card) int {
	risk := 0
	switch contract {
	case domain.ContractKingOfHearts:
		if domain.HoldsCard(hand, domain.KingOfHeartsCard) {
			return 75
		}
		for _, c := range hand {
			if c.Suit == domain.Hearts && c.Rank > domain.King {
				risk += 20
			}
		}
		risk += 10
	case domain.ContractQueens:
		for _, c := range hand {
			if c.Rank == domain.Queen {
				risk += 25
			}
			if c.Rank > domain.Queen {
				risk += 5
			}
		}
	case domain.ContractDiamonds:
		for _, c := range hand {
			if c.Suit == domain.Diamonds {
				risk += 5
				if c.Rank >= domain.Ten {
					risk += 5
				}
			}
		}
	case domain.ContractCollections:
		for _, c := range hand {
			if c.Rank >= domain.Jack {
				risk += 8
			}
		}
	case domain.ContractTrex:
		for _, c := range hand {
			risk += int(c.Rank-domain.Two) / 2
		}
	}
	return risk
}

func (b *CarefulBot) choosePlay(snap app.Snapshot, seat int, legal []app.Action) app.Action {
	contract := b.contract
	if snap.Contract != nil {
		contract = *snap.Contract
	}

	// No capture danger in a shedding round: dump the highest legal card to
	// keep the lead and empty the hand first.
	if contract == domain.ContractTrex {
		return highestLegal(legal)
	}

	// All penalty cards accounted for: win tricks freely to shed high cards.
	if b.penaltiesSettled(contract, snap.Seats[seat].Hand) {
		return highestLegal(legal)
	}

	if len(snap.Trick) == 0 {
		return lowestLegal(legal)
	}

	led := snap.Trick[0].Card.Suit
	if legal[0].Card.Suit != led {
		// Void in the led suit: this trick cannot be won, unload the most
		// dangerous card.
		best := legal[0]
		bestDanger := cardDanger(legal[0].Card, contract)
		for _, a := range legal[1:] {
			if d := cardDanger(a.Card, contract); d > bestDanger {
				best, bestDanger = a, d
			}
		}
		return best
	}

	// Following suit: play the highest card that still loses to the current
	// winner, or the lowest card when every option would win.
	winning := winningRank(snap.Trick, led)
	var duck *app.Action
	for i := range legal {
		a := legal[i]
		if a.Card.Rank >= winning {
			continue
		}
		if duck == nil || a.Card.Rank > duck.Card.Rank {
			duck = &legal[i]
		}
	}
	if duck != nil {
		return *duck
	}
	return lowestLegal(legal)
}

// penaltiesSettled reports whether no penalty card of the contract remains in
// an opponent's hand or this bot's own.
func (b *CarefulBot) penaltiesSettled(contract domain.Contract, hand []domain.Card) bool {
	switch contract {
	case domain.ContractKingOfHearts, domain.ContractQueens, domain.ContractDiamonds:
	default:
		return false
	}
	if b.mem.PenaltiesOutstanding(contract) > 0 {
		return false
	}
	for _, c := range hand {
		if cardDanger(c, contract) >= dangerPenalty {
			return false
		}
	}
	return true
}

const dangerPenalty = 500

// cardDanger ranks how badly a card wants to leave the hand under the
// contract. Penalty cards dominate; among equals, higher ranks go first.
func cardDanger(c domain.Card, contract domain.Contract) int {
	switch contract {
	case domain.ContractKingOfHearts:
		if c == domain.KingOfHeartsCard {
			return dangerPenalty + 100
		}
		if c.Suit == domain.Hearts && c.Rank > domain.King {
			return dangerPenalty
		}
	case domain.ContractQueens:
		if c.Rank == domain.Queen {
			return dangerPenalty
		}
	case domain.ContractDiamonds:
		if c.Suit == domain.Diamonds {
			return dangerPenalty + int(c.Rank)
		}
	}
	return int(c.Rank)
}

func winningRank(trick []domain.Play, led domain.Suit) domain.Rank {
	best := domain.Rank(0)
	for _, p := range trick {
		if p.Card.Suit == led && p.Card.Rank > best {
			best = p.Card.Rank
		}
	}
	return best
}

func lowestLegal(legal []app.Action) app.Action {
	best := legal[0]
	for _, a := range legal[1:] {
		if a.Card.Rank < best.Card.Rank {
			best = a
		}
	}
	return best
}

func highestLegal(legal []app.Action) app.Action {
	best := legal[0]
	for _, a := range legal[1:] {
		if a.Card.Rank > best.Card.Rank {
			best = a
		}
	}
	return best
}

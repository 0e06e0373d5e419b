package app

import (
	"errors"
	"math/rand"
	"time"

	"trex/internal/domain"
)

// ErrUnknownAction rejects an action whose type the engine does not recognize.
var ErrUnknownAction = errors.New("unknown action type")

// Service is the engine facade: the single entry point hosts use to start
// matches, query legal actions, submit actions, and read snapshots. It holds
// no match state itself; callers own the MatchState and pass it in, one
// mutation at a time.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. Tests pass a seeded rng for reproducible deals.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartMatch creates a match and deals its first round.
func (s *Service) StartMatch(params domain.MatchParams) (*domain.MatchState, []Event, error) {
	g := domain.NewMatch(params)
	events, err := s.deal(g)
	if err != nil {
		return nil, nil, err
	}
	return g, events, nil
}

// deal shuffles a fresh deck into the next round and emits the private hand
// events plus the public round announcement.
func (s *Service) deal(g *domain.MatchState) ([]Event, error) {
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	if err := g.StartRound(deck); err != nil {
		return nil, err
	}

	events := make([]Event, 0, 5)
	for seat := 0; seat < 4; seat++ {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: g.Hands[seat]},
			Recipients: []int{seat},
		})
	}
	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Cycle:        g.Cycle,
			RoundInCycle: g.RoundInCycle,
			Selector:     g.Selector,
			Mode:         g.Params.Mode,
		},
	})
	return events, nil
}

// LegalActions returns every action the seat may submit right now. It is
// empty when it is not the seat's turn and never errors.
func (s *Service) LegalActions(g *domain.MatchState, seat int) []Action {
	if g == nil || g.Turn() != seat {
		return nil
	}

	switch g.Phase {
	case domain.PhaseSelecting:
		if g.Params.Mode == domain.SelectionAuction && len(g.Bids) < 4 {
			actions := make([]Action, 0, domain.MaxBid-domain.MinBid+2)
			for v := domain.MinBid; v <= domain.MaxBid; v++ {
				actions = append(actions, BidValue(v))
			}
			return append(actions, Pass())
		}
		var actions []Action
		for _, c := range g.UnusedContracts() {
			actions = append(actions, SelectContract(c))
		}
		return actions
	case domain.PhasePlaying:
		var actions []Action
		for _, c := range domain.LegalPlays(g.Round.Hands[seat], g.Round.Current) {
			if g.Round.OpeningLead != nil && len(g.Round.Tricks) == 0 &&
				len(g.Round.Current.Plays) == 0 && c != *g.Round.OpeningLead {
				continue
			}
			actions = append(actions, PlayCard(c))
		}
		return actions
	default:
		return nil
	}
}

// Submit validates and applies one action for the seat. On error nothing has
// changed and the caller may retry with a different action. Accepted card
// plays that terminate a round also fold it, emit the scoring events, and
// deal the next round when the match continues.
func (s *Service) Submit(g *domain.MatchState, seat int, a Action) ([]Event, error) {
	switch a.Type {
	case ActionBid, ActionPass:
		pass := a.Type == ActionPass
		if err := g.PlaceBid(seat, a.Bid, pass); err != nil {
			return nil, err
		}
		return []Event{{
			Kind: EventBidPlaced,
			Payload: BidPlacedPayload{
				Seat:     seat,
				Bid:      a.Bid,
				Pass:     pass,
				Declarer: g.Declarer,
				NextTurn: g.Turn(),
			},
		}}, nil

	case ActionSelectContract:
		if err := g.SelectContract(seat, a.Contract); err != nil {
			return nil, err
		}
		return []Event{{
			Kind: EventContractSelected,
			Payload: ContractSelectedPayload{
				Seat:     seat,
				Contract: a.Contract,
				Leader:   g.Round.Current.Leader,
			},
		}}, nil

	case ActionPlayCard:
		return s.submitPlay(g, seat, a.Card)

	default:
		return nil, ErrUnknownAction
	}
}

func (s *Service) submitPlay(g *domain.MatchState, seat int, card domain.Card) ([]Event, error) {
	prevTricks := 0
	if g.Phase == domain.PhasePlaying {
		prevTricks = len(g.Round.Tricks)
	}

	if err := g.PlayCard(seat, card); err != nil {
		return nil, err
	}

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Card: card, NextTurn: g.Turn()},
	}}

	round := g.Round
	if len(round.Tricks) > prevTricks {
		last := round.Tricks[len(round.Tricks)-1]
		events = append(events, Event{
			Kind:    EventTrickWon,
			Payload: TrickWonPayload{Winner: last.Winner(), Trick: last},
		})
	}

	if g.Phase != domain.PhaseScoring {
		return events, nil
	}

	contract := round.Contract
	closingCycle := g.RoundInCycle == domain.RoundsPerCycle-1

	deltas, err := g.FinalizeRound()
	if err != nil {
		return nil, err
	}
	events = append(events, Event{
		Kind: EventRoundScored,
		Payload: RoundScoredPayload{
			Contract: contract,
			Deltas:   deltas,
			Totals:   g.Ledger.Totals,
		},
	})

	if closingCycle {
		events = append(events, Event{
			Kind:    EventCycleEnded,
			Payload: CycleEndedPayload{Cycle: g.Cycle - 1, Standings: g.Ledger.Standings()},
		})
	}

	if g.Complete() {
		events = append(events, Event{
			Kind:    EventMatchEnded,
			Payload: MatchEndedPayload{Standings: g.Ledger.Standings()},
		})
		return events, nil
	}

	dealEvents, err := s.deal(g)
	if err != nil {
		return nil, err
	}
	return append(events, dealEvents...), nil
}

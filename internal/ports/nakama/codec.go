package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"trex/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Match state is persisted through the host's storage API on round boundaries
// so an interrupted match can be resumed with its ledger and cycle intact.

const storageCollection = "trex_matches"

// savedMatch is the storage document: seat occupancy plus the full engine
// state. Presences and bot agents are runtime-only and rebuilt on resume.
type savedMatch struct {
	Seats     [4]string          `json:"seats"`
	OwnerSeat int                `json:"owner_seat"`
	Game      *domain.MatchState `json:"game"`
}

func encodeMatchState(state *MatchState) ([]byte, error) {
	return json.Marshal(savedMatch{
		Seats:     state.Seats,
		OwnerSeat: state.OwnerSeat,
		Game:      state.Game,
	})
}

// decodeMatchState parses a storage document and re-checks the deck invariant
// before the state is trusted. A corrupted document is an error, never a
// partially restored match.
func decodeMatchState(data []byte) (*savedMatch, error) {
	var saved savedMatch
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved match: %w", err)
	}
	if saved.Game != nil {
		if err := checkDeckInvariant(saved.Game); err != nil {
			return nil, err
		}
	}
	return &saved, nil
}

// checkDeckInvariant verifies that the cards visible in the state are
// pairwise distinct, and that a round in progress accounts for all 52.
func checkDeckInvariant(g *domain.MatchState) error {
	var seen [52]bool
	total := 0
	note := func(c domain.Card) error {
		idx := c.Index()
		if idx < 0 || idx >= 52 {
			return fmt.Errorf("saved match holds invalid card %s", c)
		}
		if seen[idx] {
			return fmt.Errorf("saved match duplicates card %s", c)
		}
		seen[idx] = true
		total++
		return nil
	}

	for seat := 0; seat < 4; seat++ {
		for _, c := range g.Hands[seat] {
			if err := note(c); err != nil {
				return err
			}
		}
	}
	if r := g.Round; r != nil {
		for seat := 0; seat < 4; seat++ {
			for _, c := range r.Hands[seat] {
				if err := note(c); err != nil {
					return err
				}
			}
			for _, c := range r.Captured[seat] {
				if err := note(c); err != nil {
					return err
				}
			}
		}
		if r.Current != nil {
			for _, p := range r.Current.Plays {
				if err := note(p.Card); err != nil {
					return err
				}
			}
		}
		// Hands, captures, and the open trick must account for the full deck
		// while a round is in play.
		if g.Phase == domain.PhasePlaying && total != 52 {
			return fmt.Errorf("saved round accounts for %d of 52 cards", total)
		}
	}
	return nil
}

func saveMatchState(ctx context.Context, nk runtime.NakamaModule, matchID string, state *MatchState) error {
	value, err := encodeMatchState(state)
	if err != nil {
		return err
	}
	_, err = nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      storageCollection,
		Key:             matchID,
		Value:           string(value),
		PermissionRead:  0,
		PermissionWrite: 0,
	}})
	return err
}

func loadMatchState(ctx context.Context, nk runtime.NakamaModule, matchID string) (*savedMatch, error) {
	objects, err := nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: storageCollection,
		Key:        matchID,
	}})
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, nil
	}
	return decodeMatchState([]byte(objects[0].GetValue()))
}

func deleteMatchState(ctx context.Context, nk runtime.NakamaModule, matchID string) error {
	return nk.StorageDelete(ctx, []*runtime.StorageDelete{{
		Collection: storageCollection,
		Key:        matchID,
	}})
}

package brain

import (
	"fmt"

	"trex/internal/app"
	"trex/internal/domain"
)

// EncodingVersion selects the fixed-width observation layout handed to a
// learned policy. The width is a contract between the engine build and the
// model checkpoint it ships with: V1 models consume 186 floats, V2 models 84.
// A mismatched pair must fail loudly, never silently truncate.
type EncodingVersion int

const (
	// EncodingV1 is the original 186-float layout:
	// [0,52)    hand mask
	// [52,104)  legal-card mask
	// [104,156) current-trick mask
	// [156,186) scalar context block
	EncodingV1 EncodingVersion = 1
	// EncodingV2 is the compact 84-float layout:
	// [0,52) hand mask
	// [52,84) scalar context block
	EncodingV2 EncodingVersion = 2

	WidthV1 = 186
	WidthV2 = 84
)

// Width returns the observation width of the version.
func (v EncodingVersion) Width() int {
	switch v {
	case EncodingV1:
		return WidthV1
	case EncodingV2:
		return WidthV2
	default:
		return 0
	}
}

// Encoder turns a viewer snapshot into the numeric observation a policy
// model consumes.
type Encoder struct {
	Version EncodingVersion
}

// Encode renders the snapshot into the version's layout. The snapshot must
// be the acting seat's own view so that its hand and legal actions are
// populated.
func (e Encoder) Encode(snap app.Snapshot, seat int) ([]float32, error) {
	switch e.Version {
	case EncodingV1:
		return e.encodeV1(snap, seat), nil
	case EncodingV2:
		return e.encodeV2(snap, seat), nil
	default:
		return nil, fmt.Errorf("unknown encoding version %d", e.Version)
	}
}

func (e Encoder) encodeV1(snap app.Snapshot, seat int) []float32 {
	obs := make([]float32, WidthV1)

	for _, c := range snap.Seats[seat].Hand {
		obs[c.Index()] = 1
	}
	for _, a := range snap.LegalActions {
		if a.Type == app.ActionPlayCard {
			obs[52+a.Card.Index()] = 1
		}
	}
	for _, p := range snap.Trick {
		obs[104+p.Card.Index()] = 1
	}

	writeContext(obs[156:], snap, seat)
	return obs
}

func (e Encoder) encodeV2(snap app.Snapshot, seat int) []float32 {
	obs := make([]float32, WidthV2)

	for _, c := range snap.Seats[seat].Hand {
		obs[c.Index()] = 1
	}

	writeContext(obs[52:], snap, seat)
	return obs
}

// writeContext fills the shared scalar block: turn, progress, contract and
// used-contract one-hots, normalized scores, hand counts, and per-seat
// trick-participation flags. Both layouts reserve at least 30 slots.
func writeContext(ctx []float32, snap app.Snapshot, seat int) {
	ctx[0] = float32(snap.Turn) / 3
	ctx[1] = float32(snap.TricksPlayed) / 13
	ctx[2] = float32(snap.Seats[seat].HandCount) / 13
	ctx[3] = float32(snap.Selector) / 3

	if snap.Contract != nil {
		ctx[4+int(*snap.Contract)] = 1
	}
	for _, c := range snap.UsedContracts {
		ctx[9+int(c)] = 1
	}

	for s := 0; s < 4; s++ {
		ctx[14+s] = clamp(float32(snap.Seats[s].Score)/200, -1, 1)
		ctx[18+s] = float32(snap.Seats[s].HandCount) / 13
	}
	for _, p := range snap.Trick {
		ctx[22+p.Seat] = 1
	}

	ctx[26] = float32(snap.RoundInCycle) / 3
	ctx[27] = float32(snap.Cycle)
	if snap.Mode == domain.SelectionAuction {
		ctx[28] = 1
	}
	ctx[29] = float32(len(snap.LegalActions)) / 13
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

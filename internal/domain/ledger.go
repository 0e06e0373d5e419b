package domain

import "sort"

// Ledger accumulates per-seat scores across rounds. It is only written when a
// round is folded in; nothing else mutates it.
type Ledger struct {
	Totals [4]int `json:"totals"`
}

// Apply adds one round's deltas to the running totals.
func (l *Ledger) Apply(deltas [4]int) {
	for seat, d := range deltas {
		l.Totals[seat] += d
	}
}

// Standing is one seat's cumulative position.
type Standing struct {
	Seat  int `json:"seat"`
	Total int `json:"total"`
}

// Standings returns seats ordered best-first. Ties break by seat index so the
// ordering is deterministic.
func (l *Ledger) Standings() []Standing {
	out := make([]Standing, 4)
	for seat, total := range l.Totals {
		out[seat] = Standing{Seat: seat, Total: total}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Seat < out[j].Seat
	})
	return out
}

package bot

import (
	"trex/internal/app"
)

// BasicBot is the simplest strategy: it passes every auction, takes the first
// available contract, and plays its lowest legal card.
type BasicBot struct{}

func (b *BasicBot) ChooseAction(snap app.Snapshot, seat int) (app.Action, error) {
	legal := snap.LegalActions
	if len(legal) == 0 {
		return app.Action{}, errNoLegalActions
	}

	switch legal[0].Type {
	case app.ActionBid:
		return app.Pass(), nil
	case app.ActionPlayCard:
		best := legal[0]
		for _, a := range legal[1:] {
			if a.Card.Rank < best.Card.Rank {
				best = a
			}
		}
		return best, nil
	default:
		return legal[0], nil
	}
}

func (b *BasicBot) OnEvent(event app.Event) {}

package bot

import (
	"trex/internal/app"
	"trex/internal/domain"
)

// Agent represents an autonomous bot player occupying one seat.
type Agent struct {
	ID       string
	Name     string
	Seat     int
	Strategy Brain
}

// Act asks the agent for its next action. A strategy error or an action
// outside the legal list degrades to the first legal action so a misbehaving
// strategy can never stall the match.
func (a *Agent) Act(svc *app.Service, g *domain.MatchState) (app.Action, error) {
	snap := svc.Snapshot(g, a.Seat)
	legal := snap.LegalActions
	if len(legal) == 0 {
		return app.Action{}, errNoLegalActions
	}

	action, err := a.Strategy.ChooseAction(snap, a.Seat)
	if err != nil {
		return legal[0], nil
	}
	for _, l := range legal {
		if l == action {
			return action, nil
		}
	}
	return legal[0], nil
}

// OnGameEvent forwards an engine event to the strategy. Targeted events
// addressed to other seats are dropped so the strategy never sees hidden
// information.
func (a *Agent) OnGameEvent(event app.Event) {
	if len(event.Recipients) > 0 {
		mine := false
		for _, seat := range event.Recipients {
			if seat == a.Seat {
				mine = true
				break
			}
		}
		if !mine {
			return
		}
	}
	a.Strategy.OnEvent(event)
}

package bot

import (
	"errors"

	"trex/internal/app"
)

var errNoLegalActions = errors.New("no legal actions available")

// Brain is the interface that all bot strategies must implement. ChooseAction
// receives the bot's own view of the match, with its hand and legal actions
// populated, and must return one of those legal actions.
type Brain interface {
	ChooseAction(snap app.Snapshot, seat int) (app.Action, error)
	OnEvent(event app.Event)
}

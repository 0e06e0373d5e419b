package brain

import "trex/internal/app"

// Policy is an opaque decision source: given an observation it returns the
// index of the action to take within the legal-action list the observation
// was built from. The engine does not care whether the implementation is a
// bundled neural network, a scripted table, or a remote service.
type Policy interface {
	Predict(obs []float32) (int, error)
}

// SelectAction maps a policy's raw output back onto the legal-action list.
// An out-of-range or otherwise unusable index falls back to the first legal
// action, the safe default, so a broken model can never submit an illegal
// move.
func SelectAction(p Policy, obs []float32, legal []app.Action) (app.Action, bool) {
	if len(legal) == 0 {
		return app.Action{}, false
	}
	idx, err := p.Predict(obs)
	if err != nil || idx < 0 || idx >= len(legal) {
		return legal[0], true
	}
	return legal[idx], true
}

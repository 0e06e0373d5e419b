package bot

import (
	"trex/internal/app"
	"trex/internal/bot/brain"
)

// NeuralBot delegates the decision to a learned policy over the encoded
// observation. With no policy attached, or when encoding fails, it plays its
// careful fallback instead.
type NeuralBot struct {
	policy   brain.Policy
	encoder  brain.Encoder
	fallback Brain
}

func NewNeuralBot(policy brain.Policy, version brain.EncodingVersion) *NeuralBot {
	return &NeuralBot{
		policy:   policy,
		encoder:  brain.Encoder{Version: version},
		fallback: NewCarefulBot(),
	}
}

// SetPolicy attaches or replaces the decision model.
func (b *NeuralBot) SetPolicy(p brain.Policy) {
	b.policy = p
}

func (b *NeuralBot) ChooseAction(snap app.Snapshot, seat int) (app.Action, error) {
	if b.policy == nil {
		return b.fallback.ChooseAction(snap, seat)
	}

	obs, err := b.encoder.Encode(snap, seat)
	if err != nil {
		return b.fallback.ChooseAction(snap, seat)
	}
	action, ok := brain.SelectAction(b.policy, obs, snap.LegalActions)
	if !ok {
		return app.Action{}, errNoLegalActions
	}
	return action, nil
}

func (b *NeuralBot) OnEvent(event app.Event) {
	b.fallback.OnEvent(event)
}

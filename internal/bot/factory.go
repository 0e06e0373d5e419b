package bot

import (
	"fmt"

	"trex/internal/bot/brain"
)

// BotLevel selects the strategy an agent plays with.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota
	BotLevelCareful
	BotLevelNeural
)

// LevelFromDifficulty maps identity-file difficulty strings onto levels.
// Unknown strings get the careful strategy.
func LevelFromDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "easy":
		return BotLevelBasic
	case "hard":
		return BotLevelNeural
	default:
		return BotLevelCareful
	}
}

// NewBrain creates a new AI brain based on the specified level. The neural
// level ships without a model attached and plays its careful fallback until
// a policy is set.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelCareful:
		return NewCarefulBot(), nil
	case BotLevelNeural:
		return NewNeuralBot(nil, brain.EncodingV1), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

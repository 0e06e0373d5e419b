package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// SelectionMode is "king" or "auction".
	SelectionMode string `json:"selection_mode"`
	Cycles        int    `json:"cycles"`
	// FirstSelector is the seat that selects the first contract.
	FirstSelector       int `json:"first_selector"`
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotTurnDelayMs paces bot plays so clients can animate them.
	BotTurnDelayMs int `json:"bot_turn_delay_ms"`
	// OpeningLeads forces the holder of a card (by 0..51 deck index) to open
	// the first trick of the named contract.
	OpeningLeads map[string]int `json:"opening_leads,omitempty"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or safe defaults when
// no file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return GameConfig{
			SelectionMode:           "king",
			Cycles:                  1,
			TurnDurationSeconds:     30,
			BotAutoFillDelaySeconds: 10,
			BotTurnDelayMs:          800,
		}
	}
	return *cfg
}

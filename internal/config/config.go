package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardsmith/blackjack/internal/chips"
	"github.com/cardsmith/blackjack/internal/game"
)

// GameConfig represents the complete game configuration
type GameConfig struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings contains table-level configuration
type GameSettings struct {
	Players         int   `hcl:"players,optional"`
	HitSoft17       *bool `hcl:"hit_soft_17,optional"`
	DeckMultiplier  int   `hcl:"deck_multiplier,optional"`
	StartingBalance int   `hcl:"starting_balance,optional"`
	Seed            int64 `hcl:"seed,optional"`
}

// Default returns the default game configuration
func Default() *GameConfig {
	hitSoft17 := true
	return &GameConfig{
		Game: GameSettings{
			Players:        2,
			HitSoft17:      &hitSoft17,
			DeckMultiplier: 2,
		},
	}
}

// Load loads game configuration from an HCL file. A missing file yields
// the defaults; a present file is decoded and then back-filled with
// defaults for anything unset.
func Load(filename string) (*GameConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg GameConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Game.Players == 0 {
		cfg.Game.Players = 2
	}
	if cfg.Game.HitSoft17 == nil {
		hitSoft17 := true
		cfg.Game.HitSoft17 = &hitSoft17
	}
	if cfg.Game.DeckMultiplier == 0 {
		cfg.Game.DeckMultiplier = 2
	}

	return &cfg, nil
}

// Rules converts the settings into house rules. A zero starting balance
// means the Euro5 rack; anything else funds players via greedy conversion.
func (c *GameConfig) Rules() game.Rules {
	rules := game.DefaultRules()
	rules.HitSoft17 = *c.Game.HitSoft17
	rules.DeckMultiplier = c.Game.DeckMultiplier
	if c.Game.StartingBalance > 0 {
		rules.Loadout = chips.FromAmount(c.Game.StartingBalance)
	}
	return rules
}

package display

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/cardsmith/blackjack/internal/chips"
	"github.com/cardsmith/blackjack/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// scriptedAllIn answers every betting prompt with all-in
type scriptedAllIn struct{}

func (scriptedAllIn) NextBet(p *game.Player, current chips.Bet) (game.BetInput, error) {
	return game.BetInput{Action: game.BetAllIn}, nil
}

// standSource answers every turn with a stand
type standSource struct{}

func (standSource) NextMove(view game.TurnView) (game.Move, error) {
	return game.Stand, nil
}

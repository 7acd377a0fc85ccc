package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardsmith/blackjack/internal/chips"
	"github.com/cardsmith/blackjack/internal/deck"
)

// ErrBetting is returned when the betting phase cannot complete: a player
// lookup failed or a bet source broke mid-phase. It propagates up to end
// the game loop; it is never retried internally.
var ErrBetting = errors.New("betting phase could not complete")

// BetAction is one step of building a bet
type BetAction int

const (
	// BetPlaceChip adds one chip of the given denomination to the bet
	BetPlaceChip BetAction = iota
	// BetAllIn replaces the bet with the player's entire balance
	BetAllIn
	// BetConfirm locks the bet in; rejected while the bet is zero
	BetConfirm
)

func (a BetAction) String() string {
	return [...]string{"place_chip", "all_in", "confirm"}[a]
}

// BetInput is a single enumerated input from the betting boundary
type BetInput struct {
	Action BetAction
	Chip   chips.Chip // used with BetPlaceChip
}

// BetSource supplies betting inputs for a player. It is the synchronous
// boundary to the I/O layer: one blocking call per decision, no timeout.
type BetSource interface {
	NextBet(p *Player, current chips.Bet) (BetInput, error)
}

// TurnView is what a player sees when choosing a move
type TurnView struct {
	Player          *Player
	Hand            *deck.Hand
	DealerUp        deck.Card
	BustProbability float64
}

// MoveSource supplies turn moves for a player, same contract as BetSource.
// The engine re-prompts on an invalid move without changing state.
type MoveSource interface {
	NextMove(view TurnView) (Move, error)
}

// RoundResult is the engine's structured report of a settled round
type RoundResult struct {
	Round      int
	Outcomes   []Outcome
	DealerHand *deck.Hand
}

// GameEngine orchestrates betting phases and rounds over a persistent
// table. Deck and hands are round-scoped; balances persist. The engine is
// single-threaded: one logical actor mutates all state serially.
type GameEngine struct {
	table  *Table
	deck   *deck.Deck
	rules  Rules
	logger *log.Logger
	events *EventBus
	round  int
}

// EngineOption configures a GameEngine during creation
type EngineOption func(*engineConfig)

type engineConfig struct {
	clock quartz.Clock
}

// WithClock injects the clock used for event timestamps
func WithClock(clock quartz.Clock) EngineOption {
	return func(cfg *engineConfig) {
		cfg.clock = clock
	}
}

// NewEngine seats players and prepares an empty shoe; the shoe is rebuilt
// and shuffled at the start of every round. The RNG is required so tests
// are deterministic.
func NewEngine(rng *rand.Rand, players int, rules Rules, logger *log.Logger, opts ...EngineOption) *GameEngine {
	if rng == nil {
		panic("rng is required")
	}
	if players < 1 {
		panic("at least 1 player required")
	}

	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &GameEngine{
		table:  NewTable(players, rules.Loadout),
		deck:   deck.New(rng),
		rules:  rules,
		logger: logger,
		events: NewEventBus(cfg.clock),
		round:  1,
	}
}

// Table returns the engine's player table
func (ge *GameEngine) Table() *Table {
	return ge.table
}

// Events returns the bus game events are published on
func (ge *GameEngine) Events() *EventBus {
	return ge.events
}

// Round returns the upcoming (or in-progress) round number, 1-based
func (ge *GameEngine) Round() int {
	return ge.round
}

// Rules returns the house rules the engine was created with
func (ge *GameEngine) Rules() Rules {
	return ge.rules
}

// GameOver reports whether every player has gone bankrupt
func (ge *GameEngine) GameOver() bool {
	return ge.table.AllBankrupt()
}

// BettingPhase collects a bet from every active player. A confirmed zero
// bet is rejected and re-prompted; a bet exceeding the balance is clamped
// to the balance; a bet equal to the balance is an all-in and confirms
// immediately. Returns gameOver=true without consulting the source when
// everyone is already bankrupt. A broken source or failed player lookup
// surfaces ErrBetting.
func (ge *GameEngine) BettingPhase(src BetSource) (bool, error) {
	if ge.table.AllBankrupt() {
		return true, nil
	}

	for _, p := range ge.table.Players {
		p.Bet = nil
	}

	for _, p := range ge.table.Players {
		if !p.IsActive() {
			continue
		}

		bet, err := ge.collectBet(src, p)
		if err != nil {
			return false, err
		}
		p.Bet = bet
		ge.logger.Debug("bet placed", "player", p.ID, "bet", bet.Sum(), "balance", p.BalanceValue())
	}

	return false, nil
}

func (ge *GameEngine) collectBet(src BetSource, p *Player) (chips.Bet, error) {
	var current chips.Bet
	balance := p.BalanceValue()

	for {
		in, err := src.NextBet(p, current)
		if err != nil {
			return nil, fmt.Errorf("player %d: %v: %w", p.ID, err, ErrBetting)
		}

		switch in.Action {
		case BetPlaceChip:
			current = append(current, in.Chip)
			if current.Sum() > balance {
				current = chips.Bet(chips.IntoChips(balance))
			}
			if current.Sum() == balance {
				return current, nil
			}

		case BetAllIn:
			return chips.Bet(chips.IntoChips(balance)), nil

		case BetConfirm:
			if current.Sum() == 0 {
				continue
			}
			return current, nil

		default:
			return nil, fmt.Errorf("player %d: unknown bet action %d: %w", p.ID, int(in.Action), ErrBetting)
		}
	}
}

// PlayRound runs one full round: Dealing, PlayerTurns, DealerTurn, Payout.
// Moves come from the source; an invalid move is logged and re-prompted
// with no state change. ErrEmptyDeck from any draw propagates untouched.
func (ge *GameEngine) PlayRound(src MoveSource) (*RoundResult, error) {
	round := NewRound(ge.table, ge.deck, ge.rules)

	if err := round.Deal(); err != nil {
		return nil, err
	}
	ge.events.publish(RoundStartEvent{Round: ge.round, DealerHand: round.DealerHand(), timestamp: ge.events.now()})
	ge.logger.Debug("round dealt", "round", ge.round, "dealerUp", round.DealerUpCard().String())

	for seat, p := range ge.table.Players {
		if !p.IsActive() {
			continue
		}
		if err := ge.playTurn(round, src, seat); err != nil {
			return nil, err
		}
	}
	round.FinishPlayerTurns()

	if err := round.PlayDealer(); err != nil {
		return nil, err
	}
	ge.events.publish(DealerDoneEvent{
		Hand:      round.DealerHand(),
		Busted:    round.DealerHand().Busted(),
		timestamp: ge.events.now(),
	})
	ge.logger.Debug("dealer done", "sum", round.DealerHand().Sum(), "busted", round.DealerHand().Busted())

	outcomes, err := round.Resolve()
	if err != nil {
		return nil, err
	}

	result := &RoundResult{
		Round:      ge.round,
		Outcomes:   outcomes,
		DealerHand: round.DealerHand(),
	}
	ge.events.publish(RoundEndEvent{Round: ge.round, Outcomes: outcomes, timestamp: ge.events.now()})
	ge.round++

	return result, nil
}

func (ge *GameEngine) playTurn(round *Round, src MoveSource, seat int) error {
	p := ge.table.Players[seat]
	hand := round.HandOf(seat)

	for {
		view := TurnView{
			Player:          p,
			Hand:            hand,
			DealerUp:        round.DealerUpCard(),
			BustProbability: BustProbability(ge.deck, hand),
		}
		move, err := src.NextMove(view)
		if err != nil {
			return fmt.Errorf("player %d move: %w", p.ID, err)
		}

		res, err := round.ApplyMove(seat, move)
		if errors.Is(err, ErrInvalidMove) {
			ge.logger.Debug("invalid move", "player", p.ID, "move", move.String(), "err", err)
			continue
		}
		if err != nil {
			return err
		}

		ge.events.publish(PlayerMoveEvent{
			PlayerID:  p.ID,
			Move:      move,
			Hand:      hand,
			Busted:    res.Busted,
			timestamp: ge.events.now(),
		})

		if res.TurnOver {
			return nil
		}
	}
}

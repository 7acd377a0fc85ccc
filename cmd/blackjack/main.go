package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cardsmith/blackjack/internal/config"
	"github.com/cardsmith/blackjack/internal/display"
	"github.com/cardsmith/blackjack/internal/game"
	"github.com/cardsmith/blackjack/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play an interactive game"`
}

type PlayCmd struct {
	Players   int    `short:"p" help:"Number of players at the table" default:"0"`
	Decks     int    `help:"52-card sets in the shoe each round" default:"0"`
	Seed      int64  `help:"RNG seed for reproducible shuffles (0 = time-based)"`
	HitSoft17 *bool  `help:"Dealer hits a soft 17" negatable:""`
	Config    string `short:"c" help:"HCL config file" default:"blackjack.hcl"`
	Debug     bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Multi-player blackjack at the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (cmd *PlayCmd) Run() error {
	logLevel := log.WarnLevel
	if cmd.Debug {
		logLevel = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           logLevel,
	})

	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// flags win over config
	players := cfg.Game.Players
	if cmd.Players > 0 {
		players = cmd.Players
	}
	if players < 1 {
		return fmt.Errorf("at least 1 player required, got %d", players)
	}
	seed := cfg.Game.Seed
	if cmd.Seed != 0 {
		seed = cmd.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rules := cfg.Rules()
	if cmd.Decks > 0 {
		rules.DeckMultiplier = cmd.Decks
	}
	if cmd.HitSoft17 != nil {
		rules.HitSoft17 = *cmd.HitSoft17
	}

	logger.Debug("starting game", "players", players, "seed", seed,
		"decks", rules.DeckMultiplier, "hitSoft17", rules.HitSoft17)

	engine := game.NewEngine(randutil.New(seed), players, rules, logger)
	prompter := display.NewPrompter(os.Stdin, os.Stdout)
	reporter := display.NewReporter(os.Stdout)
	reporter.Attach(engine.Events())

	reporter.Title()
	return runGame(engine, prompter, reporter, rules.Loadout.Sum())
}

func runGame(engine *game.GameEngine, prompter *display.Prompter, reporter *display.Reporter, startingBalance int) error {
	for {
		reporter.BettingPhase()
		gameOver, err := engine.BettingPhase(prompter)
		if err != nil {
			return err
		}
		if gameOver {
			fmt.Println(display.ErrorStyle.Render("All players have gone bankrupt!"))
			reporter.FinalResults(engine.Table(), engine.Round()-1, startingBalance)
			return nil
		}
		reporter.Bets(engine.Table())

		result, err := engine.PlayRound(prompter)
		if err != nil {
			return err
		}
		reporter.RoundResult(result)

		again, err := prompter.NextRound()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again || err != nil {
			reporter.FinalResults(engine.Table(), engine.Round()-1, startingBalance)
			return nil
		}
	}
}

package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cardsmith/blackjack/internal/chips"
	"github.com/cardsmith/blackjack/internal/game"
)

// Prompter is the interactive implementation of the engine's BetSource and
// MoveSource boundaries: it prints a prompt, blocks on one line of input
// and maps it to an enumerated engine input. Unrecognized input is
// re-prompted locally and never reaches the engine.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading lines from in and writing prompts
// to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (pr *Prompter) readLine() (string, error) {
	if !pr.in.Scan() {
		if err := pr.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(pr.in.Text()), nil
}

// NextBet prompts for one betting input
func (pr *Prompter) NextBet(p *game.Player, current chips.Bet) (game.BetInput, error) {
	if len(current) == 0 {
		fmt.Fprintf(pr.out, "%s\t%s\tPlace your bet:\n",
			PlayerStyle.Render(fmt.Sprintf("Player %d:", p.ID+1)),
			ErrorStyle.Render(fmt.Sprintf("Balance: %d", p.BalanceValue())),
		)
	}
	fmt.Fprintln(pr.out, InfoStyle.Render("'1', '5', '10', '25', '100', '500', '1000', 'All-In', 'Ok'"))
	fmt.Fprintf(pr.out, "Current bet: %s\n", SuccessStyle.Render(strconv.Itoa(current.Sum())))

	for {
		line, err := pr.readLine()
		if err != nil {
			return game.BetInput{}, err
		}

		switch line {
		case "1":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C1}, nil
		case "5":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C5}, nil
		case "10":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C10}, nil
		case "25":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C25}, nil
		case "100":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C100}, nil
		case "500":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C500}, nil
		case "1000":
			return game.BetInput{Action: game.BetPlaceChip, Chip: chips.C1000}, nil
		case "All-In", "A", "a":
			return game.BetInput{Action: game.BetAllIn}, nil
		case "Ok", "ok", "O", "o":
			if current.Sum() == 0 {
				fmt.Fprintln(pr.out, ErrorStyle.Render("You must place a bet!"))
				continue
			}
			return game.BetInput{Action: game.BetConfirm}, nil
		default:
			fmt.Fprintln(pr.out, ErrorStyle.Render("You must place a bet!"))
		}
	}
}

// NextMove prompts for one turn move
func (pr *Prompter) NextMove(view game.TurnView) (game.Move, error) {
	fmt.Fprintf(pr.out, "%s %s  (dealer shows %s, bust chance %.0f%%)\n",
		PlayerStyle.Render(fmt.Sprintf("Player %d:", view.Player.ID+1)),
		RenderHand(view.Hand),
		RenderCard(view.DealerUp),
		view.BustProbability*100,
	)
	fmt.Fprintln(pr.out, InfoStyle.Render("Hit: 'H', Double-Down: 'D', Stand: 'S'"))

	for {
		line, err := pr.readLine()
		if err != nil {
			return 0, err
		}

		switch line {
		case "H", "h":
			return game.Hit, nil
		case "D", "d":
			return game.DoubleDown, nil
		case "S", "s":
			return game.Stand, nil
		default:
			fmt.Fprintln(pr.out, ErrorStyle.Render("Invalid response! Please try again."))
		}
	}
}

// NextRound prompts whether to keep playing; false means quit
func (pr *Prompter) NextRound() (bool, error) {
	fmt.Fprintln(pr.out, InfoStyle.Render("Next round: 'Y', Quit: 'Q'"))

	for {
		line, err := pr.readLine()
		if err != nil {
			return false, err
		}

		switch line {
		case "Y", "y":
			return true, nil
		case "Q", "q":
			return false, nil
		default:
			fmt.Fprintln(pr.out, ErrorStyle.Render("Invalid response! Please try again."))
		}
	}
}

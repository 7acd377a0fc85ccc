package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cardsmith/blackjack/internal/deck"
	"github.com/cardsmith/blackjack/internal/game"
)

// Reporter renders the engine's structured results. All coloring and
// formatting lives here; the engine never formats strings for display.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Title prints the game banner
func (r *Reporter) Title() {
	fmt.Fprintln(r.out, HeaderStyle.Render(" ♠ ♥ CLI BLACKJACK ♦ ♣ "))
	fmt.Fprintln(r.out)
}

// BettingPhase announces the start of a betting phase
func (r *Reporter) BettingPhase() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, HeaderStyle.Render(" Betting Phase "))
}

// Bets summarizes every active player's locked-in bet
func (r *Reporter) Bets(t *game.Table) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "All bets were placed!")
	for _, p := range t.Players {
		if !p.IsActive() {
			continue
		}
		fmt.Fprintf(r.out, "%s\tBet: %s\n",
			PlayerStyle.Render(fmt.Sprintf("Player %d:", p.ID+1)),
			SuccessStyle.Render(strconv.Itoa(p.Bet.Sum())),
		)
	}
}

// RoundStart announces a round
func (r *Reporter) RoundStart(round int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, HeaderStyle.Render(fmt.Sprintf(" Round %d! ", round)))
	fmt.Fprintln(r.out)
}

// DealerHand shows the dealer's cards, hole card masked until revealed
func (r *Reporter) DealerHand(h *deck.Hand) {
	fmt.Fprintln(r.out, DealerStyle.Render("Dealer Cards:"))
	fmt.Fprintln(r.out, RenderHand(h))
	fmt.Fprintln(r.out)
}

// DealerDone reports the dealer's final hand
func (r *Reporter) DealerDone(h *deck.Hand) {
	fmt.Fprintf(r.out, "%s\t%s\n", DealerStyle.Render("Dealer's final hand:"), RenderHand(h))
	if h.Busted() {
		fmt.Fprintln(r.out, DealerStyle.Render("Dealer busted!"))
	} else {
		fmt.Fprintln(r.out, DealerStyle.Render(fmt.Sprintf("Dealer stands with a total of %d", h.Sum())))
	}
}

// Attach subscribes the reporter to the engine's event bus so the deal,
// player busts and the dealer's final hand are narrated as they happen.
func (r *Reporter) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventTypeRoundStart, func(e game.Event) {
		ev := e.(game.RoundStartEvent)
		r.RoundStart(ev.Round)
		r.DealerHand(ev.DealerHand)
	})
	bus.Subscribe(game.EventTypePlayerMove, func(e game.Event) {
		ev := e.(game.PlayerMoveEvent)
		if ev.Busted {
			fmt.Fprintln(r.out, ErrorStyle.Render(fmt.Sprintf("player %d busted!", ev.PlayerID+1)))
		}
	})
	bus.Subscribe(game.EventTypeDealerDone, func(e game.Event) {
		ev := e.(game.DealerDoneEvent)
		r.DealerDone(ev.Hand)
	})
}

// RoundResult reports every settled outcome of a round
func (r *Reporter) RoundResult(res *game.RoundResult) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, HeaderStyle.Render(fmt.Sprintf(" Results of Round %d ", res.Round)))
	fmt.Fprintln(r.out)

	for _, out := range res.Outcomes {
		label, amount := outcomeLabel(out)
		fmt.Fprintf(r.out, "%s\t%s\t%s\n",
			PlayerStyle.Render(fmt.Sprintf("Player %d:", out.PlayerID+1)),
			label,
			amount,
		)
		if out.Bankrupt {
			fmt.Fprintln(r.out, ErrorStyle.Render(fmt.Sprintf("Player %d has gone bankrupt!", out.PlayerID+1)))
		}
	}
}

func outcomeLabel(out game.Outcome) (string, string) {
	switch out.Result {
	case game.ResultBust:
		return "Busted!", ErrorStyle.Render(strconv.Itoa(out.Delta))
	case game.ResultWinDealerBust:
		return "Win! (Dealer Busted)", SuccessStyle.Render("+" + strconv.Itoa(out.Delta))
	case game.ResultBlackjack:
		return "Blackjack!", SuccessStyle.Render("+" + strconv.Itoa(out.Delta))
	case game.ResultWin:
		return "Win!", SuccessStyle.Render("+" + strconv.Itoa(out.Delta))
	case game.ResultLoss:
		return "Loss!", ErrorStyle.Render(strconv.Itoa(out.Delta))
	default:
		return "Push!", InfoStyle.Render("0")
	}
}

// FinalResults prints the end-of-game report: rounds played and every
// player's closing balance against their starting rack.
func (r *Reporter) FinalResults(t *game.Table, roundsPlayed, startingBalance int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, HeaderStyle.Render(" Final Results "))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Hands played:\t%d\n", roundsPlayed)
	fmt.Fprintln(r.out)

	for _, p := range t.Players {
		balance := p.BalanceValue()
		var balanceCol, deltaCol string
		if balance <= 0 {
			balanceCol = ErrorStyle.Render("Bankrupt!")
		} else {
			balanceCol = SuccessStyle.Render(strconv.Itoa(balance))
		}
		if diff := balance - startingBalance; diff < 0 {
			deltaCol = ErrorStyle.Render(fmt.Sprintf("Loss: %d", diff))
		} else {
			deltaCol = SuccessStyle.Render(fmt.Sprintf("Won: %d", diff))
		}
		fmt.Fprintf(r.out, "%s\tBalance: %s\t%s\n",
			PlayerStyle.Render(fmt.Sprintf("Player %d:", p.ID+1)),
			balanceCol,
			deltaCol,
		)
	}
}

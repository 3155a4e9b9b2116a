package blackjack

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	triggerDeal   = "deal"
	triggerStand  = "stand"
	triggerSettle = "settle"
)

// round runs the phases of a single round:
// IDLE -> DEALT -> DEALER_TURN -> SETTLED
type round struct {
	game      *Game
	threshold int
	player    *entities.Hand
	dealer    *entities.Hand
	stake     int64
	result    *entities.RoundResult
	machine   *stateless.StateMachine
}

func newRound(g *Game, threshold int) *round {
	r := &round{
		game:      g,
		threshold: threshold,
		player:    entities.NewPlayerHand(),
		dealer:    entities.NewDealerHand(),
		machine:   stateless.NewStateMachine(entities.StateIdle),
	}

	r.machine.Configure(entities.StateIdle).
		Permit(triggerDeal, entities.StateDealt)
	r.machine.Configure(entities.StateDealt).
		OnEntry(r.deal).
		OnEntry(r.playerTurn).
		Permit(triggerStand, entities.StateDealerTurn)
	r.machine.Configure(entities.StateDealerTurn).
		OnEntry(r.dealerTurn).
		Permit(triggerSettle, entities.StateSettled)
	r.machine.Configure(entities.StateSettled).
		OnEntry(r.settle)

	r.machine.OnTransitioned(func(ctx context.Context, t stateless.Transition) {
		g.logger.Debug("Round %d: %v -> %v", g.Round, t.Source, t.Destination)
	})

	return r
}

func (r *round) play(ctx context.Context) (*entities.RoundResult, error) {
	for _, trigger := range []stateless.Trigger{triggerDeal, triggerStand, triggerSettle} {
		if err := r.machine.FireCtx(ctx, trigger); err != nil {
			return nil, err
		}
	}
	return r.result, nil
}

func (r *round) deal(_ context.Context, _ ...any) error {
	g := r.game
	r.stake = g.wallet.Bet

	g.logf("Round %d of Blackjack!\n", g.Round)
	g.logf("wallet: %d\n", g.wallet.Balance)
	g.logf("bet: %d\n", g.wallet.Bet)

	mongean := g.entropy.IntN(MaxShuffleCount)
	overhand := g.entropy.IntN(MaxShuffleCount)
	g.logger.Debug("Shuffling: overhand %d, mongean %d", overhand, mongean)
	g.Deck.Shuffle(overhand, mongean)

	for _, hand := range []*entities.Hand{r.player, r.dealer, r.player, r.dealer} {
		if _, err := g.Deck.Deal(hand); err != nil {
			return err
		}
	}

	g.logf("Player Cards: %s\n", r.player)
	g.logf("Dealer Cards: %s\n", r.dealer)
	return nil
}

func (r *round) playerTurn(_ context.Context, _ ...any) error {
	return r.game.HitOrStand(r.player, r.threshold)
}

func (r *round) dealerTurn(_ context.Context, _ ...any) error {
	g := r.game
	r.dealer.Reveal()
	g.logf("Dealer Cards Revealed: %s\n", r.dealer)
	return g.HitOrStand(r.dealer, DealerStandThreshold)
}

func (r *round) settle(_ context.Context, _ ...any) error {
	g := r.game
	if !r.dealer.Revealed() {
		return types.NewGameError(types.ErrInternalError, "dealer hand settled before it was revealed")
	}
	playerScore := CalculateScore(r.player)
	dealerScore := CalculateScore(r.dealer)

	outcome := g.DetermineWinner(playerScore, dealerScore)
	g.wallet.Settle(outcome)
	g.logger.Debug("Round %d settled: %s, wallet $%d, next bet $%d", g.Round, outcome, g.wallet.Balance, g.wallet.Bet)

	r.result = &entities.RoundResult{
		ID:          uuid.NewString(),
		GameID:      g.ID,
		GameNumber:  g.Number,
		Round:       g.Round,
		Player:      r.player,
		Dealer:      r.dealer,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
		Outcome:     outcome,
		Stake:       r.stake,
		Wallet:      g.wallet.Balance,
		Bet:         g.wallet.Bet,
		CompletedAt: time.Now().UTC(),
	}
	return nil
}

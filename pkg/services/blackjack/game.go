package blackjack

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Option configures a Game
type Option func(*options)

type options struct {
	entropy  Entropy
	recorder RoundRecorder
	logger   *logging.Logger
	deck     *entities.Deck
}

// WithEntropy sets the source of the per-round shuffle counts
func WithEntropy(entropy Entropy) Option {
	return func(o *options) {
		o.entropy = entropy
	}
}

// WithRecorder sets the hook notified after every round
func WithRecorder(recorder RoundRecorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDeck starts the game from a prepared deck instead of a fresh one.
// The deck is used as is, so it must not be shared between games.
func WithDeck(deck *entities.Deck) Option {
	return func(o *options) {
		o.deck = deck
	}
}

// Game is one automated blackjack session between a scripted player and
// the dealer. A Game is not safe for concurrent use.
type Game struct {
	ID     string
	Number int
	Deck   *entities.Deck
	Round  int

	wallet   *entities.Wallet
	log      strings.Builder
	entropy  Entropy
	recorder RoundRecorder
	logger   *logging.Logger
}

// NewGame creates game number `number` with a fresh deck and the given
// wallet balance
func NewGame(number int, wallet int64, opts ...Option) (*Game, error) {
	if wallet < 0 {
		return nil, types.NewGameErrorf(types.ErrInvalidArgument, "wallet must not be negative, got %d", wallet)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.entropy == nil {
		o.entropy = NewSeededEntropy(uint64(number))
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	if o.logger == nil {
		o.logger = logging.Default
	}
	if o.deck == nil {
		o.deck = entities.NewDeck()
	}

	id := uuid.NewString()
	return &Game{
		ID:       id,
		Number:   number,
		Deck:     o.deck,
		Round:    1,
		wallet:   entities.NewWallet(wallet),
		entropy:  o.entropy,
		recorder: o.recorder,
		logger:   o.logger.With("game", number, "game_id", id),
	}, nil
}

// Wallet returns the current balance
func (g *Game) Wallet() int64 {
	return g.wallet.Balance
}

// Bet returns the bet the next round will be played for
func (g *Game) Bet() int64 {
	return g.wallet.Bet
}

// Log returns everything the game has written to its text log
func (g *Game) Log() string {
	return g.log.String()
}

// ResetLog clears the text log
func (g *Game) ResetLog() {
	g.log.Reset()
}

func (g *Game) logf(format string, v ...interface{}) {
	fmt.Fprintf(&g.log, format, v...)
}

// PlayRound plays up to numRounds rounds in which the player draws until
// reaching standThreshold. It stops early when the deck holds fewer than
// four cards or the wallet cannot cover the bet; both are logged and are
// not errors. The bet is back at the minimum when PlayRound returns.
func (g *Game) PlayRound(ctx context.Context, numRounds, standThreshold int) error {
	defer g.wallet.ResetBet()

	g.logger.Info("Playing up to %d rounds with the player standing at %d", numRounds, standThreshold)
	for i := 0; i < numRounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if g.Deck.Len() < MinimumDeckSize {
			g.logf("Not enough cards for a game.")
			g.logger.Info("Stopping before round %d: %d cards left in the deck", g.Round, g.Deck.Len())
			return nil
		}
		if !g.wallet.CanCoverBet() {
			g.logf("Wallet amount $%d is less than bet amount $%d.", g.wallet.Balance, g.wallet.Bet)
			g.logger.Info("Stopping before round %d: wallet $%d cannot cover bet $%d", g.Round, g.wallet.Balance, g.wallet.Bet)
			return nil
		}

		result, err := newRound(g, standThreshold).play(ctx)
		if err != nil {
			return types.WrapError(types.ErrInternalError, fmt.Sprintf("round %d failed", g.Round), err)
		}

		if err := g.recorder.RecordRound(ctx, result); err != nil {
			g.logger.Error("Failed to record round %d: %v", g.Round, err)
			return types.WrapError(types.ErrRecorderError, fmt.Sprintf("failed to record round %d", g.Round), err)
		}

		g.Round++
	}

	return nil
}

// HitOrStand deals to hand until its score reaches threshold or the deck
// runs out, logging every card pulled
func (g *Game) HitOrStand(hand *entities.Hand, threshold int) error {
	for CalculateScore(hand) < threshold && g.Deck.Len() > 0 {
		top := g.Deck.Peek()
		g.logf("(%s, %s) was pulled by a %s\n", top.Rank, top.Suit, hand.Participant())
		if _, err := g.Deck.Deal(hand); err != nil {
			return err
		}
	}
	return nil
}

// DetermineWinner resolves the round and logs the result
func (g *Game) DetermineWinner(playerScore, dealerScore int) entities.Outcome {
	outcome := Resolve(playerScore, dealerScore)
	switch outcome {
	case entities.DealerWin:
		g.logf("Player lost with a score of %d. Dealer won with a score of %d.\n", playerScore, dealerScore)
	case entities.PlayerWin:
		g.logf("Player won with a score of %d. Dealer lost with a score of %d.\n", playerScore, dealerScore)
	default:
		g.logf("Player and Dealer tie.\n")
	}
	return outcome
}

package entities

const (
	// MinimumBet is the starting bet and the floor a losing streak can push it down to
	MinimumBet int64 = 5
	// BetStep is how much the bet moves after a win or a loss
	BetStep int64 = 5
)

// Wallet tracks a session's balance and the bet for the next round
type Wallet struct {
	Balance int64
	Bet     int64
}

// NewWallet creates a wallet holding balance with the bet at its minimum
func NewWallet(balance int64) *Wallet {
	return &Wallet{
		Balance: balance,
		Bet:     MinimumBet,
	}
}

// CanCoverBet reports whether the balance is at least the current bet
func (w *Wallet) CanCoverBet() bool {
	return w.Balance >= w.Bet
}

// Settle pays out or collects the current bet and adjusts the bet for the
// next round. A win raises the bet by BetStep, a loss lowers it by BetStep
// but never below MinimumBet, and a tie leaves both untouched. It returns
// the change in balance.
func (w *Wallet) Settle(outcome Outcome) int64 {
	var delta int64
	switch outcome {
	case PlayerWin:
		delta = w.Bet
		w.Bet += BetStep
	case DealerWin:
		delta = -w.Bet
		if w.Bet > MinimumBet {
			w.Bet -= BetStep
		}
	}
	w.Balance += delta
	return delta
}

// ResetBet puts the bet back to MinimumBet
func (w *Wallet) ResetBet() {
	w.Bet = MinimumBet
}

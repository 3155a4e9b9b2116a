package entities

import "time"

// Outcome is the result of a round from the player's point of view
type Outcome int

const (
	DealerWin Outcome = -1
	Tie       Outcome = 0
	PlayerWin Outcome = 1
)

// String returns the winner's name as written in game summaries
func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "Player"
	case DealerWin:
		return "Dealer"
	default:
		return "Tied"
	}
}

// IsWin returns true if the player won the round
func (o Outcome) IsWin() bool {
	return o == PlayerWin
}

// RoundState is a phase within a single round
type RoundState string

const (
	StateIdle       RoundState = "IDLE"
	StateDealt      RoundState = "DEALT"
	StateDealerTurn RoundState = "DEALER_TURN"
	StateSettled    RoundState = "SETTLED"
)

// RoundResult describes a resolved round. Wallet and Bet hold the values
// after settlement; Stake is the bet the round was played for.
type RoundResult struct {
	ID          string
	GameID      string
	GameNumber  int
	Round       int
	Player      *Hand
	Dealer      *Hand
	PlayerScore int
	DealerScore int
	Outcome     Outcome
	Stake       int64
	Wallet      int64
	Bet         int64
	CompletedAt time.Time
}

// PlayerBusted reports whether the player's score went over 21
func (r *RoundResult) PlayerBusted() bool {
	return r.PlayerScore > 21
}

// DealerBusted reports whether the dealer's score went over 21
func (r *RoundResult) DealerBusted() bool {
	return r.DealerScore > 21
}

package entities

// GameStatistics aggregates the rounds of one game
type GameStatistics struct {
	GameID       string
	GameNumber   int
	RoundsPlayed int
	Wins         int
	Losses       int
	Ties         int
	PlayerBusts  int
	DealerBusts  int
	TotalStaked  int64
	NetWinnings  int64
	FinalWallet  int64
	HighestStake int64

	LongestWinStreak int
	winStreak        int
}

// Add folds one round into the statistics
func (s *GameStatistics) Add(outcome Outcome, stake int64, walletAfter int64, playerBust, dealerBust bool) {
	s.RoundsPlayed++
	s.TotalStaked += stake
	if outcome.IsWin() {
		s.winStreak++
		s.LongestWinStreak = max(s.LongestWinStreak, s.winStreak)
	} else {
		s.winStreak = 0
	}
	switch outcome {
	case PlayerWin:
		s.Wins++
		s.NetWinnings += stake
	case DealerWin:
		s.Losses++
		s.NetWinnings -= stake
	default:
		s.Ties++
	}
	if playerBust {
		s.PlayerBusts++
	}
	if dealerBust {
		s.DealerBusts++
	}
	if stake > s.HighestStake {
		s.HighestStake = stake
	}
	s.FinalWallet = walletAfter
}

// WinRate calculates the player's win rate as a percentage
func (s *GameStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStatisticsAdd(t *testing.T) {
	stats := &GameStatistics{GameNumber: 1}

	stats.Add(PlayerWin, 5, 105, false, true)
	stats.Add(DealerWin, 10, 95, true, false)
	stats.Add(Tie, 5, 95, true, true)
	stats.Add(DealerWin, 5, 90, false, false)

	assert.Equal(t, 4, stats.RoundsPlayed)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 2, stats.Losses)
	assert.Equal(t, 1, stats.Ties)
	assert.Equal(t, 2, stats.PlayerBusts)
	assert.Equal(t, 2, stats.DealerBusts)
	assert.Equal(t, int64(25), stats.TotalStaked)
	assert.Equal(t, int64(-10), stats.NetWinnings)
	assert.Equal(t, int64(90), stats.FinalWallet)
	assert.Equal(t, int64(10), stats.HighestStake)
	assert.InDelta(t, 25.0, stats.WinRate(), 0.001)
	assert.Equal(t, 1, stats.LongestWinStreak)
}

func TestGameStatisticsLongestWinStreak(t *testing.T) {
	stats := &GameStatistics{}
	for _, outcome := range []Outcome{PlayerWin, PlayerWin, Tie, PlayerWin, PlayerWin, PlayerWin, DealerWin, PlayerWin} {
		stats.Add(outcome, 5, 100, false, false)
	}

	assert.Equal(t, 3, stats.LongestWinStreak)
	assert.Equal(t, 0, (&GameStatistics{}).LongestWinStreak)
}

func TestGameStatisticsWinRateEmpty(t *testing.T) {
	assert.Equal(t, 0.0, (&GameStatistics{}).WinRate())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Player", PlayerWin.String())
	assert.Equal(t, "Dealer", DealerWin.String())
	assert.Equal(t, "Tied", Tie.String())
	assert.True(t, PlayerWin.IsWin())
	assert.False(t, Tie.IsWin())
}

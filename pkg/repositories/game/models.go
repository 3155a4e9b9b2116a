package game

import (
	"fmt"
	"time"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// RoundRecord is the stored form of a resolved round. Cards are kept as
// "(rank, suit)" strings.
type RoundRecord struct {
	ID          string           `json:"id"`
	GameID      string           `json:"game_id"`
	GameNumber  int              `json:"game_number"`
	Round       int              `json:"round"`
	PlayerCards []string         `json:"player_cards"`
	DealerCards []string         `json:"dealer_cards"`
	PlayerScore int              `json:"player_score"`
	DealerScore int              `json:"dealer_score"`
	Outcome     entities.Outcome `json:"outcome"`
	Stake       int64            `json:"stake"`
	Wallet      int64            `json:"wallet"`
	Bet         int64            `json:"bet"`
	CompletedAt time.Time        `json:"completed_at"`
}

// GameInfo summarises one stored game
type GameInfo struct {
	GameID       string
	GameNumber   int
	RoundsPlayed int
	FinalWallet  int64
	LastPlayedAt time.Time
}

// NewRoundRecord converts a round result into its stored form
func NewRoundRecord(result *entities.RoundResult) *RoundRecord {
	return &RoundRecord{
		ID:          result.ID,
		GameID:      result.GameID,
		GameNumber:  result.GameNumber,
		Round:       result.Round,
		PlayerCards: cardStrings(result.Player),
		DealerCards: cardStrings(result.Dealer),
		PlayerScore: result.PlayerScore,
		DealerScore: result.DealerScore,
		Outcome:     result.Outcome,
		Stake:       result.Stake,
		Wallet:      result.Wallet,
		Bet:         result.Bet,
		CompletedAt: result.CompletedAt,
	}
}

// PlayerBusted reports whether the player's score went over 21
func (r *RoundRecord) PlayerBusted() bool {
	return r.PlayerScore > 21
}

// DealerBusted reports whether the dealer's score went over 21
func (r *RoundRecord) DealerBusted() bool {
	return r.DealerScore > 21
}

// cardStrings records the real rank and suit even for face down cards
func cardStrings(hand *entities.Hand) []string {
	if hand == nil {
		return []string{}
	}
	cards := hand.Cards()
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = fmt.Sprintf("(%s, %s)", c.Rank, c.Suit)
	}
	return out
}

// summarize folds records that are already in round order into a GameInfo
func summarize(gameID string, records []*RoundRecord) *GameInfo {
	info := &GameInfo{GameID: gameID}
	for _, r := range records {
		info.GameNumber = r.GameNumber
		info.RoundsPlayed++
		info.FinalWallet = r.Wallet
		if r.CompletedAt.After(info.LastPlayedAt) {
			info.LastPlayedAt = r.CompletedAt
		}
	}
	return info
}

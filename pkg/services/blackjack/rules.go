package blackjack

import (
	"strconv"

	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	// BlackjackScore is the highest score that does not bust
	BlackjackScore = 21
	// DealerStandThreshold is the score the dealer stops drawing at
	DealerStandThreshold = 17
	// MinimumDeckSize is the fewest cards a round can start with
	MinimumDeckSize = 4
)

// CardValue returns a non-ace card's value. Face cards count 10. Aces are
// scored by CalculateScore and return 0 here.
func CardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 0
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// CalculateScore returns the best score for a hand. At most one ace counts
// as 11 and only if that keeps the hand at or under 21. Hidden cards are
// scored by their real rank.
func CalculateScore(hand *entities.Hand) int {
	base := 0
	aces := 0
	for _, card := range hand.Cards() {
		if card.Rank == entities.Ace {
			aces++
			continue
		}
		base += CardValue(card)
	}

	if aces == 0 {
		return base
	}

	optimistic := base + 11 + (aces - 1)
	if optimistic > BlackjackScore {
		return base + aces
	}
	return optimistic
}

// IsBust checks if a score exceeds 21
func IsBust(score int) bool {
	return score > BlackjackScore
}

// Resolve compares the final scores. Both busting is a tie, otherwise a bust
// loses and the higher score wins.
func Resolve(playerScore, dealerScore int) entities.Outcome {
	playerBust := IsBust(playerScore)
	dealerBust := IsBust(dealerScore)

	switch {
	case playerBust && dealerBust:
		return entities.Tie
	case playerBust:
		return entities.DealerWin
	case dealerBust:
		return entities.PlayerWin
	case dealerScore > playerScore:
		return entities.DealerWin
	case dealerScore < playerScore:
		return entities.PlayerWin
	}
	return entities.Tie
}

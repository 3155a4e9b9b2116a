// Package display renders cards and hands as ASCII art for game summaries
package display

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/pkg/entities"
)

var suitSymbols = map[entities.Suit]string{
	entities.Hearts:   "♥",
	entities.Spades:   "♠",
	entities.Clubs:    "♣",
	entities.Diamonds: "♦",
}

const hiddenCard = "____\n|?  |\n| ? |\n|__?|"

// SuitSymbol returns the playing card symbol for a suit
func SuitSymbol(suit entities.Suit) string {
	return suitSymbols[suit]
}

// Card draws a card as four lines of ASCII art:
//
//	____
//	|A  |
//	| ♠ |
//	|__A|
//
// Hidden cards show question marks.
func Card(card *entities.Card) string {
	if !card.Visible {
		return hiddenCard
	}
	return fmt.Sprintf("____\n|%[1]s  |\n| %[2]s |\n|__%[1]s|", card.Rank, SuitSymbol(card.Suit))
}

// Hand draws every card in the hand, one below the other
func Hand(hand *entities.Hand) string {
	cards := hand.Cards()
	art := make([]string, len(cards))
	for i, card := range cards {
		art[i] = Card(card)
	}
	return strings.Join(art, "\n")
}

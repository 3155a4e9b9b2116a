package entities

import (
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/shuffle"
)

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// Deck is an ordered pile of cards. Index 0 is the top of the deck.
type Deck struct {
	Cards []*Card
}

// NewDeck creates a full deck sorted in ascending order:
// (2, spades), (2, hearts), (2, diamonds), (2, clubs), (3, spades), ...
func NewDeck() *Deck {
	cards := make([]*Card, 0, DeckSize)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	return &Deck{Cards: cards}
}

// NewDeckFrom creates a deck holding exactly the given cards, top first
func NewDeckFrom(cards ...*Card) *Deck {
	return &Deck{Cards: append([]*Card(nil), cards...)}
}

// Shuffle applies one modified overhand shuffle of overhandCount cards,
// then mongeanCount Mongean shuffles.
func (d *Deck) Shuffle(overhandCount, mongeanCount int) {
	d.Cards = shuffle.ModifiedOverhand(d.Cards, overhandCount)
	for i := 0; i < mongeanCount; i++ {
		d.Cards = shuffle.Mongean(d.Cards)
	}
}

// Peek returns the top card without removing it, or nil if the deck is empty
func (d *Deck) Peek() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	return d.Cards[0]
}

// Deal removes the top card from the deck and adds it to hand
func (d *Deck) Deal(hand *Hand) (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, types.NewGameError(types.ErrDeckEmpty, "no cards left to deal")
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	hand.AddCard(card)
	return card, nil
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

package entities

import (
	"cmp"
	"fmt"

	"github.com/fadedpez/blackjack/internal/types"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists the suits from lowest to highest priority
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks lists the ranks from lowest to highest
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var (
	rankOrder = indexOf(Ranks)
	suitOrder = indexOf(Suits)
)

func indexOf[T comparable](values []T) map[T]int {
	order := make(map[T]int, len(values))
	for i, v := range values {
		order[v] = i
	}
	return order
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	_, ok := rankOrder[r]
	return ok
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	_, ok := suitOrder[s]
	return ok
}

// Card is a playing card. NewCard validates rank and suit; during play only
// visibility is changed.
type Card struct {
	Rank    Rank
	Suit    Suit
	Visible bool
}

// NewCard creates a visible card, rejecting ranks and suits outside the standard deck
func NewCard(rank Rank, suit Suit) (*Card, error) {
	if !rank.Valid() {
		return nil, types.NewGameErrorf(types.ErrInvalidCard, "invalid rank %q", rank)
	}
	if !suit.Valid() {
		return nil, types.NewGameErrorf(types.ErrInvalidCard, "invalid suit %q", suit)
	}
	return &Card{Rank: rank, Suit: suit, Visible: true}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit
func MustCard(rank Rank, suit Suit) *Card {
	card, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return card
}

// Compare orders cards by rank, then by suit. It returns -1, 0 or 1.
func (c *Card) Compare(other *Card) int {
	if c.Rank != other.Rank {
		return cmp.Compare(rankOrder[c.Rank], rankOrder[other.Rank])
	}
	return cmp.Compare(suitOrder[c.Suit], suitOrder[other.Suit])
}

// Less reports whether c sorts before other
func (c *Card) Less(other *Card) bool {
	return c.Compare(other) < 0
}

// SetVisible shows or hides the card's face
func (c *Card) SetVisible(visible bool) {
	c.Visible = visible
}

// String returns "(rank, suit)", or "(?, ?)" for a hidden card
func (c *Card) String() string {
	if !c.Visible {
		return "(?, ?)"
	}
	return fmt.Sprintf("(%s, %s)", c.Rank, c.Suit)
}

package entities

import (
	"slices"
	"strings"
)

// Visibility decides how a hand exposes the cards added to it
type Visibility int

const (
	// Open hands show every card and keep them sorted
	Open Visibility = iota
	// Concealed hands show only their first card until revealed
	Concealed
)

// Participant returns who holds a hand with this visibility
func (v Visibility) Participant() string {
	if v == Concealed {
		return "Dealer"
	}
	return "Player"
}

// Hand is an ordered set of cards held by the player or the dealer
type Hand struct {
	cards      []*Card
	visibility Visibility
	revealed   bool
}

// NewHand creates an empty hand with the given visibility policy
func NewHand(visibility Visibility) *Hand {
	return &Hand{
		cards:      make([]*Card, 0, 4),
		visibility: visibility,
	}
}

// NewPlayerHand creates an empty open hand
func NewPlayerHand() *Hand {
	return NewHand(Open)
}

// NewDealerHand creates an empty concealed hand
func NewDealerHand() *Hand {
	return NewHand(Concealed)
}

// AddCard adds cards to the hand. Open and revealed hands re-sort after the
// addition. An unrevealed concealed hand appends in deal order and hides
// everything except its first card.
func (h *Hand) AddCard(cards ...*Card) {
	if h.concealing() {
		for _, c := range cards {
			c.SetVisible(false)
			h.cards = append(h.cards, c)
		}
		if len(h.cards) > 0 {
			h.cards[0].SetVisible(true)
		}
		return
	}

	h.cards = append(h.cards, cards...)
	h.sort()
}

// Reveal turns every card face up and sorts the hand
func (h *Hand) Reveal() {
	h.revealed = true
	for _, c := range h.cards {
		c.SetVisible(true)
	}
	h.sort()
}

// Revealed reports whether a concealed hand has been revealed. Open hands
// are always revealed.
func (h *Hand) Revealed() bool {
	return h.visibility == Open || h.revealed
}

// Visibility returns the hand's visibility policy
func (h *Hand) Visibility() Visibility {
	return h.visibility
}

// Participant returns "Player" or "Dealer"
func (h *Hand) Participant() string {
	return h.visibility.Participant()
}

// Cards returns the hand's cards in display order
func (h *Hand) Cards() []*Card {
	return slices.Clone(h.cards)
}

// VisibleCards returns the cards currently face up
func (h *Hand) VisibleCards() []*Card {
	visible := make([]*Card, 0, len(h.cards))
	for _, c := range h.cards {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	return visible
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// String lists the cards separated by spaces, e.g. "(2, diamonds) (A, spades)"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (h *Hand) concealing() bool {
	return h.visibility == Concealed && !h.revealed
}

func (h *Hand) sort() {
	slices.SortStableFunc(h.cards, (*Card).Compare)
}

// Package shuffle implements deterministic deck permutations. The functions
// only look at positions, never at the elements themselves, and always
// return a new slice.
package shuffle

import "slices"

// ModifiedOverhand takes count cards from the middle of the deck and puts
// them on top, then repeats with count-1 until count reaches zero. The top
// of the deck is index 0.
//
// For an even-sized deck the block is split between the tail of the top half
// and the head of the bottom half; when count is odd the top half gives the
// extra card. For an odd-sized deck the middle card always moves and sits
// between the cards taken from the top half and those taken from the bottom.
func ModifiedOverhand[T any](cards []T, count int) []T {
	if len(cards) <= 1 || count <= 0 {
		return slices.Clone(cards)
	}

	for ; count > 0; count-- {
		cards = overhandPass(cards, count)
	}
	return cards
}

// overhandPass moves one block of count cards from the middle to the top
func overhandPass[T any](cards []T, count int) []T {
	half := len(cards) / 2
	top := cards[:half]

	var fromTop, fromBottom int
	var middle []T
	var bottom []T

	if len(cards)%2 == 0 {
		fromBottom = count / 2
		fromTop = fromBottom
		if count%2 != 0 {
			fromTop++
		}
		bottom = cards[half:]
	} else {
		fromBottom = (count - 1) / 2
		switch {
		case count == 1:
			fromTop = 0
		case count%2 != 0:
			fromTop = fromBottom
		default:
			fromTop = fromBottom + 1
		}
		middle = cards[half : half+1]
		bottom = cards[half+1:]
	}

	topKeep, topRemoved := splitTail(top, fromTop)
	bottomRemoved, bottomKeep := splitHead(bottom, fromBottom)

	next := make([]T, 0, len(cards))
	next = append(next, topRemoved...)
	next = append(next, middle...)
	next = append(next, bottomRemoved...)
	next = append(next, topKeep...)
	next = append(next, bottomKeep...)
	return next
}

// Mongean builds a new deck by taking cards from the bottom of the old one
// and alternately placing them on top of and beneath the cards already
// moved. Twelve passes over 52 cards restore the original order.
func Mongean[T any](cards []T) []T {
	if len(cards) == 0 {
		return []T{}
	}

	last := cards[len(cards)-1]
	rest := Mongean(cards[:len(cards)-1])
	if len(cards)%2 == 0 {
		return append([]T{last}, rest...)
	}
	return append(rest, last)
}

// splitTail separates the last n elements of s, taking all of s when n exceeds its length.
func splitTail[T any](s []T, n int) (keep, removed []T) {
	n = min(n, len(s))
	return s[:len(s)-n], s[len(s)-n:]
}

// splitHead separates the first n elements of s, taking all of s when n exceeds its length.
func splitHead[T any](s []T, n int) (removed, keep []T) {
	n = min(n, len(s))
	return s[:n], s[n:]
}

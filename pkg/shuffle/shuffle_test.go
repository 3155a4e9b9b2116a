package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ShuffleTestSuite struct {
	suite.Suite
}

func TestShuffleSuite(t *testing.T) {
	suite.Run(t, new(ShuffleTestSuite))
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (s *ShuffleTestSuite) TestModifiedOverhand() {
	testCases := []struct {
		name     string
		size     int
		count    int
		expected []int
	}{
		{name: "even deck single card", size: 10, count: 1, expected: []int{4, 0, 1, 2, 3, 5, 6, 7, 8, 9}},
		{name: "even deck two cards", size: 10, count: 2, expected: []int{2, 4, 5, 0, 1, 3, 6, 7, 8, 9}},
		{name: "even deck three cards", size: 10, count: 3, expected: []int{5, 1, 2, 3, 4, 0, 6, 7, 8, 9}},
		{name: "odd deck single card moves the middle", size: 9, count: 1, expected: []int{4, 0, 1, 2, 3, 5, 6, 7, 8}},
		{name: "odd deck two cards", size: 9, count: 2, expected: []int{2, 3, 4, 0, 1, 5, 6, 7, 8}},
		{name: "odd deck three cards", size: 9, count: 3, expected: []int{5, 0, 1, 3, 4, 2, 6, 7, 8}},
		{name: "odd deck four cards", size: 9, count: 4, expected: []int{1, 2, 3, 5, 0, 4, 6, 7, 8}},
		{name: "count larger than even deck", size: 6, count: 7, expected: []int{2, 4, 1, 3, 0, 5}},
		{name: "count larger than odd deck", size: 7, count: 9, expected: []int{5, 1, 2, 4, 3, 0, 6}},
		{name: "four cards", size: 4, count: 2, expected: []int{2, 1, 0, 3}},
		{name: "three cards", size: 3, count: 1, expected: []int{1, 0, 2}},
		{name: "two cards", size: 2, count: 1, expected: []int{0, 1}},
		{name: "single card", size: 1, count: 3, expected: []int{0}},
		{name: "single card huge count", size: 1, count: 100_000_000, expected: []int{0}},
		{name: "empty deck huge count", size: 0, count: 100_000_000, expected: []int{}},
		{name: "empty deck", size: 0, count: 2, expected: []int{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, ModifiedOverhand(sequence(tc.size), tc.count))
		})
	}
}

func (s *ShuffleTestSuite) TestModifiedOverhandZeroCountIsIdentity() {
	for _, size := range []int{0, 1, 2, 5, 52} {
		s.Equal(sequence(size), ModifiedOverhand(sequence(size), 0))
	}
}

func (s *ShuffleTestSuite) TestModifiedOverhandLargeCountOnFullDeck() {
	cards := sequence(52)

	shuffled := ModifiedOverhand(cards, 200_000)

	s.Len(shuffled, 52)
	s.ElementsMatch(sequence(52), shuffled)
	s.Equal(sequence(52), cards, "input must not be modified")
}

func (s *ShuffleTestSuite) TestModifiedOverhandOddDeckCountTwoRoundTrip() {
	s.Equal([]int{1, 2, 3, 4, 5}, ModifiedOverhand([]int{1, 2, 3, 4, 5}, 2))
}

func (s *ShuffleTestSuite) TestFullDeckPositions() {
	cards := sequence(52)
	s.Equal(25, cards[25])

	overhand := ModifiedOverhand(cards, 1)
	s.Equal(25, overhand[0])
	s.Equal(24, overhand[25])

	mongean := Mongean(overhand)
	s.Equal(51, mongean[0])
	s.Equal(25, mongean[26])
}

func (s *ShuffleTestSuite) TestMongean() {
	testCases := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: []int{}, expected: []int{}},
		{name: "one card", input: sequence(1), expected: []int{0}},
		{name: "two cards", input: sequence(2), expected: []int{1, 0}},
		{name: "three cards", input: sequence(3), expected: []int{1, 0, 2}},
		{name: "four cards", input: sequence(4), expected: []int{3, 1, 0, 2}},
		{name: "five cards", input: sequence(5), expected: []int{3, 1, 0, 2, 4}},
		{name: "six cards", input: sequence(6), expected: []int{5, 3, 1, 0, 2, 4}},
		{name: "seven cards", input: sequence(7), expected: []int{5, 3, 1, 0, 2, 4, 6}},
		{name: "eight cards", input: sequence(8), expected: []int{7, 5, 3, 1, 0, 2, 4, 6}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Mongean(tc.input))
		})
	}
}

func (s *ShuffleTestSuite) TestMongeanTwelvePassesRestoreDeck() {
	deck := sequence(52)
	shuffled := deck
	for i := 0; i < 12; i++ {
		shuffled = Mongean(shuffled)
		if i < 11 {
			s.NotEqual(deck, shuffled, "pass %d should not restore the deck yet", i+1)
		}
	}
	s.Equal(deck, shuffled)
}

func TestShufflesDoNotMutateInput(t *testing.T) {
	original := sequence(52)
	input := sequence(52)

	overhand := ModifiedOverhand(input, 5)
	require.Equal(t, original, input)
	require.Len(t, overhand, 52)

	mongean := Mongean(input)
	require.Equal(t, original, input)

	// results must not alias the caller's backing array
	overhand[0] = -1
	mongean[0] = -1
	identity := ModifiedOverhand(input, 0)
	identity[0] = -1
	assert.Equal(t, original, input)
}

func TestShufflesArePermutations(t *testing.T) {
	for count := 0; count < 8; count++ {
		shuffled := Mongean(ModifiedOverhand(sequence(52), count))
		seen := make(map[int]bool, len(shuffled))
		for _, v := range shuffled {
			assert.False(t, seen[v], "duplicate %d with count %d", v, count)
			seen[v] = true
		}
		assert.Len(t, seen, 52)
	}
}

func TestShufflesWorkOnAnyElementType(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, ModifiedOverhand([]string{"a", "b", "c"}, 1))
	assert.Equal(t, []string{"b", "a", "c"}, Mongean([]string{"a", "b", "c"}))
}

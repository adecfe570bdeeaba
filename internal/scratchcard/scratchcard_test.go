package scratchcard

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestMatchCount(t *testing.T) {
	got, err := MatchCount("Card N: 34 45 8 81 40 23 | 8 45 9 12 65 23")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestMatchCount_NoHandSeparator(t *testing.T) {
	got, err := MatchCount("Card 9: 1 2 3")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestScore(t *testing.T) {
	tests := []struct {
		matches int
		policy  Policy
		want    int
	}{
		{0, PolicyDoubling, 0},
		{1, PolicyDoubling, 1},
		{3, PolicyDoubling, 4},
		{4, PolicyDoubling, 8},
		{0, PolicyCounting, 0},
		{3, PolicyCounting, 3},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.matches, tt.policy))
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "PolicyDoubling", PolicyDoubling.String())
	assert.Equal(t, "PolicyCounting", PolicyCounting.String())
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, cards, 6)

	spew.Dump(cards)

	assert.Equal(t, Card{ID: 1, Matches: 4}, cards[0])
	assert.Equal(t, Card{ID: 6, Matches: 0}, cards[5])
}

func TestTotalScore(t *testing.T) {
	got, err := TotalScore(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestTotalCards(t *testing.T) {
	got, err := TotalCards(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

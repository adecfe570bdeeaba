package cubegame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const record = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestPermitted(t *testing.T) {
	pass := "Game X: 7 blue, 6 green; 5 red, 9 green; 1 blue, 6 red, 5 green"
	fail := "Game Y: 12 red, 15 green; 4 red, 6 blue, 5 green"

	ok, err := Permitted(pass, ReferenceBag)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Permitted(fail, ReferenceBag)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPower(t *testing.T) {
	got, err := Power("Game X: 7 blue, 6 green; 5 red, 9 green; 1 blue, 6 red, 5 green")
	require.NoError(t, err)
	assert.Equal(t, 378, got)
}

func TestSumPermittedIDs(t *testing.T) {
	got, err := SumPermittedIDs(strings.NewReader(record), ReferenceBag)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestSumPowers(t *testing.T) {
	got, err := SumPowers(strings.NewReader(record))
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestLinesWithoutGameIDAreSkipped(t *testing.T) {
	doc := "not a game line\nGame 7: 1 red\n"

	got, err := SumPermittedIDs(strings.NewReader(doc), ReferenceBag)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestMaxima(t *testing.T) {
	m, err := maxima("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)
	assert.Equal(t, Bag{Red: 20, Green: 13, Blue: 6}, m)
}

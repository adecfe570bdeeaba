package scan

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	got, err := Ints("Card 1: 41 48 | 83 86")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 41, 48, 83, 86}, got)
}

func TestInts_NoMatches(t *testing.T) {
	got, err := Ints("no numbers here")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInt64s(t *testing.T) {
	got, err := Int64s("seeds: 3640772818 104094365")
	require.NoError(t, err)
	assert.Equal(t, []int64{3640772818, 104094365}, got)
}

func TestInt64s_Overflow(t *testing.T) {
	_, err := Int64s("99999999999999999999999999")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	re := regexp.MustCompile(`[^\d.]`)

	tokens := Find(re, "..35*..#9")
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Text: "*", Pos: 4}, tokens[0])
	assert.Equal(t, Token{Text: "#", Pos: 7}, tokens[1])

	assert.Nil(t, Find(re, "123..456"))
}

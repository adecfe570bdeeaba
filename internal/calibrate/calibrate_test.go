package calibrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digitsDoc = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const wordsDoc = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestTotal_DigitsOnly(t *testing.T) {
	got, err := Total(strings.NewReader(digitsDoc), false)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestTotal_WithWords(t *testing.T) {
	got, err := Total(strings.NewReader(wordsDoc), true)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestTotal_OverlappedWords(t *testing.T) {
	// "oneight" must yield one from the left and eight from the right.
	got, err := Total(strings.NewReader("3fiveeightoneightg\n"), true)
	require.NoError(t, err)
	assert.Equal(t, 38, got)
}

func TestTotal_BlankLinesSkipped(t *testing.T) {
	got, err := Total(strings.NewReader("1a2\n\n\n3b4\n"), false)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestTotal_NoDigitsIsError(t *testing.T) {
	_, err := Total(strings.NewReader("nodigitshere\n"), false)
	assert.Error(t, err)
}

func TestLineValue(t *testing.T) {
	tests := []struct {
		line      string
		withWords bool
		want      int
	}{
		{"treb7uchet", false, 77},
		{"1abc2", false, 12},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"zoneight234", true, 14},
		{"seven", true, 77},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := lineValue(tt.line, tt.withWords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

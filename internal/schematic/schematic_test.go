package schematic

import (
	"strings"
	"testing"

	"puzzle-solvers/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blueprint = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestPartNumbers(t *testing.T) {
	parts, err := PartNumbers(strings.NewReader(blueprint))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{467, 35, 633, 617, 592, 755, 664, 598}, parts)
	assert.Equal(t, 4361, common.Sum(parts))
}

func TestGearRatios(t *testing.T) {
	ratios, err := GearRatios(strings.NewReader(blueprint))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{16345, 451490}, ratios)
	assert.Equal(t, 467835, common.Sum(ratios))
}

func TestAdjacent(t *testing.T) {
	n := number{value: 467, row: 0, col: 0, length: 3}

	tests := []struct {
		name string
		s    symbol
		want bool
	}{
		{"diagonal below right edge", symbol{"*", 1, 3}, true},
		{"directly right", symbol{"*", 0, 3}, true},
		{"directly below", symbol{"*", 1, 1}, true},
		{"too far right", symbol{"*", 0, 4}, false},
		{"two rows away", symbol{"*", 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adjacent(n, tt.s))
		})
	}
}

func TestParse_SymbolsExcludeDots(t *testing.T) {
	numbers, symbols, err := parse(strings.NewReader("..12*.#..\n"))
	require.NoError(t, err)

	require.Len(t, numbers, 1)
	assert.Equal(t, number{value: 12, row: 0, col: 2, length: 2}, numbers[0])

	require.Len(t, symbols, 2)
	assert.Equal(t, "*", symbols[0].text)
	assert.Equal(t, "#", symbols[1].text)
}

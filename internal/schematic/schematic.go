// Package schematic reads an engine schematic grid. Numbers adjacent
// (including diagonals) to any symbol other than '.' are part numbers;
// a '*' touching exactly two numbers is a gear, and its ratio is the
// product of those two numbers.
package schematic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"puzzle-solvers/internal/common"
	"puzzle-solvers/internal/scan"
)

var (
	numberRE = regexp.MustCompile(`\d+`)
	symbolRE = regexp.MustCompile(`[^\d.]`)
)

// GearSymbol marks a candidate gear on the schematic.
const GearSymbol = "*"

type number struct {
	value  int
	row    int
	col    int
	length int
}

type symbol struct {
	text string
	row  int
	col  int
}

// adjacent reports whether s touches n, including diagonally.
func adjacent(n number, s symbol) bool {
	return s.row >= n.row-1 && s.row <= n.row+1 &&
		s.col >= n.col-1 && s.col <= n.col+n.length
}

func parse(r io.Reader) ([]number, []symbol, error) {
	var (
		numbers []number
		symbols []symbol
	)

	scanner := bufio.NewScanner(r)

	for row := 0; scanner.Scan(); row++ {
		line := scanner.Text()

		for _, tok := range scan.Find(numberRE, line) {
			v, err := strconv.Atoi(tok.Text)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing schematic number %q: %w", tok.Text, err)
			}

			numbers = append(numbers, number{value: v, row: row, col: tok.Pos, length: len(tok.Text)})
		}

		for _, tok := range scan.Find(symbolRE, line) {
			symbols = append(symbols, symbol{text: tok.Text, row: row, col: tok.Pos})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading schematic: %w", err)
	}

	return numbers, symbols, nil
}

// PartNumbers returns every number with at least one neighbouring symbol.
func PartNumbers(r io.Reader) ([]int, error) {
	numbers, symbols, err := parse(r)
	if err != nil {
		return nil, err
	}

	var parts []int

	for _, n := range numbers {
		for _, s := range symbols {
			if adjacent(n, s) {
				parts = append(parts, n.value)
				break
			}
		}
	}

	return parts, nil
}

// GearRatios returns the ratio of every gear: a '*' symbol with exactly
// two neighbouring numbers.
func GearRatios(r io.Reader) ([]int, error) {
	numbers, symbols, err := parse(r)
	if err != nil {
		return nil, err
	}

	var ratios []int

	for _, s := range symbols {
		if s.text != GearSymbol {
			continue
		}

		var neighbours []int

		for _, n := range numbers {
			if adjacent(n, s) {
				neighbours = append(neighbours, n.value)
			}
		}

		if len(neighbours) == 2 {
			ratios = append(ratios, neighbours[0]*neighbours[1])
		}
	}

	return ratios, nil
}

// SumPartNumbersFile totals the part numbers in the schematic at path.
func SumPartNumbersFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening schematic: %w", err)
	}
	defer f.Close()

	parts, err := PartNumbers(f)
	if err != nil {
		return 0, err
	}

	return common.Sum(parts), nil
}

// SumGearRatiosFile totals the gear ratios in the schematic at path.
func SumGearRatiosFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening schematic: %w", err)
	}
	defer f.Close()

	ratios, err := GearRatios(f)
	if err != nil {
		return 0, err
	}

	return common.Sum(ratios), nil
}

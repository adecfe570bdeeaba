// Package cubegame scores the coloured-cube guessing game. Each line
// records one game as semicolon-separated draws of red, green and blue
// cubes; a game is permitted when every draw fits the available bag,
// and its power is the product of the per-colour maxima.
package cubegame

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
)

var (
	gameIDRE = regexp.MustCompile(`Game (\d+)`)
	redRE    = regexp.MustCompile(`(\d+) red`)
	greenRE  = regexp.MustCompile(`(\d+) green`)
	blueRE   = regexp.MustCompile(`(\d+) blue`)
)

// Bag holds the number of cubes of each colour available for a game.
type Bag struct {
	Red   int
	Green int
	Blue  int
}

// ReferenceBag is the bag the game host asks about.
var ReferenceBag = Bag{Red: 12, Green: 13, Blue: 14}

// maxima returns the largest count drawn per colour across all draws
// in a game line. A game fits a bag exactly when its per-colour maxima
// do, so draws never need to be checked individually.
func maxima(line string) (Bag, error) {
	var bag Bag

	for _, c := range []struct {
		re  *regexp.Regexp
		max *int
	}{
		{redRE, &bag.Red},
		{greenRE, &bag.Green},
		{blueRE, &bag.Blue},
	} {
		for _, m := range c.re.FindAllStringSubmatch(line, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Bag{}, fmt.Errorf("parsing cube count %q: %w", m[1], err)
			}

			if n > *c.max {
				*c.max = n
			}
		}
	}

	return bag, nil
}

// Permitted reports whether the game described by line is possible
// with the given bag.
func Permitted(line string, bag Bag) (bool, error) {
	m, err := maxima(line)
	if err != nil {
		return false, err
	}

	return m.Red <= bag.Red && m.Green <= bag.Green && m.Blue <= bag.Blue, nil
}

// Power returns the product of the per-colour maxima for one game line.
func Power(line string) (int, error) {
	m, err := maxima(line)
	if err != nil {
		return 0, err
	}

	return m.Red * m.Green * m.Blue, nil
}

// SumPermittedIDs totals the identifiers of every game in the record
// that is possible with the given bag. Lines without a game identifier
// are skipped.
func SumPermittedIDs(r io.Reader, bag Bag) (int, error) {
	total := 0

	err := eachGame(r, func(id int, line string) error {
		ok, err := Permitted(line, bag)
		if err != nil {
			return err
		}

		if ok {
			slog.Debug("game permitted", "id", id)

			total += id
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SumPowers totals the power of every game in the record.
func SumPowers(r io.Reader) (int, error) {
	total := 0

	err := eachGame(r, func(_ int, line string) error {
		p, err := Power(line)
		if err != nil {
			return err
		}

		total += p

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SumPermittedIDsFile reads the game record at path and totals the
// permitted game identifiers.
func SumPermittedIDsFile(path string, bag Bag) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening game record: %w", err)
	}
	defer f.Close()

	return SumPermittedIDs(f, bag)
}

// SumPowersFile reads the game record at path and totals the powers.
func SumPowersFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening game record: %w", err)
	}
	defer f.Close()

	return SumPowers(f)
}

func eachGame(r io.Reader, fn func(id int, line string) error) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		m := gameIDRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		id, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("parsing game id %q: %w", m[1], err)
		}

		if err := fn(id, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading game record: %w", err)
	}

	return nil
}

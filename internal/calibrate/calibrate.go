// Package calibrate totals the calibration values hidden in a document:
// per line, the first and last digit combine into a two-digit value.
// Word digits ("one" through "nine") optionally count as digits too.
package calibrate

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"puzzle-solvers/internal/scan"
)

var digitRE = regexp.MustCompile(`[0-9]`)

// wordDigits maps the word form of a digit to its value. Built once;
// word lookups scan for earliest and latest occurrence per line.
var wordDigits = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// Total reads a calibration document and sums the per-line values.
// With withWords, spelled-out digits participate by position, so
// overlapping words like "oneight" resolve to whichever end is asked
// for. Blank lines are skipped; a non-blank line without any digit is
// a malformed document.
func Total(r io.Reader, withWords bool) (int, error) {
	scanner := bufio.NewScanner(r)

	total := 0

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := lineValue(line, withWords)
		if err != nil {
			return 0, err
		}

		slog.Debug("calibration value", "line", line, "value", v)

		total += v
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading calibration document: %w", err)
	}

	return total, nil
}

// TotalFile reads the calibration document at path and totals it.
func TotalFile(path string, withWords bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening calibration document: %w", err)
	}
	defer f.Close()

	return Total(f, withWords)
}

// lineValue combines the first and last digit of a line into one
// two-digit value. A lone digit serves as both.
func lineValue(line string, withWords bool) (int, error) {
	firstPos, lastPos := -1, -1

	var firstVal, lastVal int

	if tokens := scan.Find(digitRE, line); len(tokens) > 0 {
		first, last := tokens[0], tokens[len(tokens)-1]
		firstPos, firstVal = first.Pos, int(first.Text[0]-'0')
		lastPos, lastVal = last.Pos, int(last.Text[0]-'0')
	}

	if withWords {
		for word, v := range wordDigits {
			if i := strings.Index(line, word); i >= 0 && (firstPos < 0 || i < firstPos) {
				firstPos, firstVal = i, v
			}

			if i := strings.LastIndex(line, word); i >= 0 && (lastPos < 0 || i > lastPos) {
				lastPos, lastVal = i, v
			}
		}
	}

	if firstPos < 0 {
		return 0, fmt.Errorf("no calibration digits in line %q", line)
	}

	return firstVal*10 + lastVal, nil
}

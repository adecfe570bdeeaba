// Package scratchcard scores a table of scratchcards. Each card lists
// winning numbers and hand numbers separated by '|'; the number of hand
// values appearing among the winning values drives two scoring schemes,
// selected by an explicit Policy rather than a caller-supplied function.
package scratchcard

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"puzzle-solvers/internal/common"
	"puzzle-solvers/internal/scan"
)

var cardIDRE = regexp.MustCompile(`Card\s+(\d+)`)

//go:generate go tool stringer -type=Policy -output=policy_string.go

// Policy selects how a card's match count turns into a score.
type Policy int

const (
	// PolicyDoubling scores 0 for no matches, otherwise doubles per
	// extra match: 2^(n-1).
	PolicyDoubling Policy = iota

	// PolicyCounting scores the match count itself; it feeds the
	// card-copy cascade.
	PolicyCounting
)

// Card is one parsed scratchcard.
type Card struct {
	ID      int
	Matches int
}

// Score applies the policy to a match count.
func Score(matches int, p Policy) int {
	switch p {
	case PolicyDoubling:
		if matches == 0 {
			return 0
		}

		return 1 << (matches - 1)
	case PolicyCounting:
		return matches
	default:
		return 0
	}
}

// MatchCount counts how many hand values appear among the winning
// values of one card line. A line without a '|' separator holds no hand
// and scores zero matches.
func MatchCount(line string) (int, error) {
	left, hand, found := strings.Cut(line, "|")
	if !found {
		return 0, nil
	}

	_, winning, found := strings.Cut(left, ":")
	if !found {
		return 0, fmt.Errorf("card line %q has no ':' separator", line)
	}

	winningVals, err := scan.Ints(winning)
	if err != nil {
		return 0, err
	}

	winSet := make(map[int]struct{}, len(winningVals))
	for _, v := range winningVals {
		winSet[v] = struct{}{}
	}

	handVals, err := scan.Ints(hand)
	if err != nil {
		return 0, err
	}

	matches := 0

	for _, v := range handVals {
		if _, ok := winSet[v]; ok {
			matches++
		}
	}

	return matches, nil
}

// ParseCards reads every card line in table order. Lines without a card
// identifier are skipped.
func ParseCards(r io.Reader) ([]Card, error) {
	var cards []Card

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		m := cardIDRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		id, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("parsing card id %q: %w", m[1], err)
		}

		matches, err := MatchCount(line)
		if err != nil {
			return nil, err
		}

		cards = append(cards, Card{ID: id, Matches: matches})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading card table: %w", err)
	}

	return cards, nil
}

// TotalScore sums the doubling-policy score of every card.
func TotalScore(r io.Reader) (int, error) {
	cards, err := ParseCards(r)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range cards {
		total += Score(c.Matches, PolicyDoubling)
	}

	return total, nil
}

// TotalCards plays the card-copy cascade: each of the n matches on a
// card wins one copy of each of the next n cards, copies included, and
// the result is the total number of cards held at the end.
func TotalCards(r io.Reader) (int, error) {
	cards, err := ParseCards(r)
	if err != nil {
		return 0, err
	}

	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, c := range cards {
		won := Score(c.Matches, PolicyCounting)

		for j := i + 1; j <= i+won && j < len(cards); j++ {
			copies[j] += copies[i]
		}

		slog.Debug("card cascade", "card", c.ID, "matches", c.Matches, "held", copies[i])
	}

	return common.Sum(copies), nil
}

// TotalScoreFile totals the doubling-policy score of the table at path.
func TotalScoreFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening card table: %w", err)
	}
	defer f.Close()

	return TotalScore(f)
}

// TotalCardsFile plays the card-copy cascade over the table at path.
func TotalCardsFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening card table: %w", err)
	}
	defer f.Close()

	return TotalCards(f)
}

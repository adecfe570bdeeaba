// Package scan provides the regular-expression token extraction shared
// by the solvers: integer lists and positioned tokens within a line.
package scan

import (
	"fmt"
	"regexp"
	"strconv"
)

var numberRE = regexp.MustCompile(`\d+`)

// Token is a matched substring together with its byte offset in the
// scanned string.
type Token struct {
	Text string
	Pos  int
}

// Find returns every match of re in s with its position.
func Find(re *regexp.Regexp, s string) []Token {
	locs := re.FindAllStringIndex(s, -1)
	if locs == nil {
		return nil
	}

	tokens := make([]Token, len(locs))
	for i, loc := range locs {
		tokens[i] = Token{Text: s[loc[0]:loc[1]], Pos: loc[0]}
	}

	return tokens
}

// Ints extracts every unsigned decimal run in s as an int.
func Ints(s string) ([]int, error) {
	matches := numberRE.FindAllString(s, -1)
	if matches == nil {
		return nil, nil
	}

	values := make([]int, len(matches))

	for i, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("parsing number %q: %w", m, err)
		}

		values[i] = v
	}

	return values, nil
}

// Int64s extracts every unsigned decimal run in s as an int64.
func Int64s(s string) ([]int64, error) {
	matches := numberRE.FindAllString(s, -1)
	if matches == nil {
		return nil, nil
	}

	values := make([]int64, len(matches))

	for i, m := range matches {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing number %q: %w", m, err)
		}

		values[i] = v
	}

	return values, nil
}

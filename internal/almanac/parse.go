package almanac

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"puzzle-solvers/internal/common"
	"puzzle-solvers/internal/scan"
)

// Parse failures. Any malformed document aborts the run; there are no
// recoverable errors in this batch computation.
var (
	// ErrMissingSeeds reports a first line that is absent or does not
	// match the "seeds: <n> <n> ..." grammar.
	ErrMissingSeeds = errors.New("seeds line missing or malformed")

	// ErrMalformedHeader reports a stage header from which two category
	// names cannot be extracted.
	ErrMalformedHeader = errors.New("malformed stage header")

	// ErrMalformedRow reports a mapping row that does not hold exactly
	// three integers.
	ErrMalformedRow = errors.New("malformed mapping row")
)

var headerRE = regexp.MustCompile(`(\w+)-to-(\w+)`)

// SeedMode selects how the seeds line is interpreted.
type SeedMode int

const (
	// SeedScalars treats every value on the seeds line as an
	// independent singleton seed.
	SeedScalars SeedMode = iota

	// SeedRanges reads the seeds line in consecutive (start, length)
	// pairs, each defining the half-open range [start, start+length).
	SeedRanges
)

// String returns a human-readable mode name.
func (m SeedMode) String() string {
	switch m {
	case SeedScalars:
		return "scalars"
	case SeedRanges:
		return "ranges"
	default:
		return common.UnknownStr
	}
}

// ParseSeeds turns the first line of an almanac document into the
// initial seed ranges. Scalar seeds become [v, v+1) singletons so both
// modes feed the same propagation engine.
func ParseSeeds(line string, mode SeedMode) ([]Range, error) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), "seeds:")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMissingSeeds, fragment(line))
	}

	values, err := scan.Int64s(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSeeds, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no seed values in %q", ErrMissingSeeds, fragment(line))
	}

	if mode == SeedScalars {
		seeds := make([]Range, len(values))
		for i, v := range values {
			seeds[i] = Singleton(v)
		}

		return seeds, nil
	}

	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: range mode needs (start, length) pairs, got %d values",
			ErrMissingSeeds, len(values))
	}

	seeds := make([]Range, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		seeds = append(seeds, NewRange(values[i], values[i]+values[i+1]))
	}

	return seeds, nil
}

// ParseStages turns the almanac body (everything after the seeds line)
// into the ordered stage sequence. Stage boundaries are located by
// header occurrences; each stage body runs to the next header, the last
// to the end of the document. Pure function of its input.
func ParseStages(text string) ([]Stage, error) {
	// A line announcing a map must carry two extractable category names.
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "map:") && !headerRE.MatchString(line) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, fragment(line))
		}
	}

	matches := headerRE.FindAllStringSubmatchIndex(text, -1)

	stages := make([]Stage, 0, len(matches))

	for i, m := range matches {
		from := text[m[2]:m[3]]
		to := text[m[4]:m[5]]

		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		rules, err := parseRules(text[m[1]:bodyEnd])
		if err != nil {
			return nil, err
		}

		stages = append(stages, Stage{Name: from + "->" + to, Rules: rules})
	}

	return stages, nil
}

// parseRules reads every numeric row in a stage body. Lines without any
// digits (the header remainder, blank separators) are skipped.
func parseRules(body string) ([]Rule, error) {
	var rules []Rule

	for _, line := range strings.Split(body, "\n") {
		nums, err := scan.Int64s(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}

		if len(nums) == 0 {
			continue
		}

		if len(nums) != 3 {
			return nil, fmt.Errorf("%w: expected 3 integers in %q, got %d",
				ErrMalformedRow, fragment(line), len(nums))
		}

		rules = append(rules, Rule{DestStart: nums[0], SrcStart: nums[1], Length: nums[2]})
	}

	return rules, nil
}

const fragmentLen = 48

// fragment trims a text excerpt for error messages.
func fragment(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > fragmentLen {
		return s[:fragmentLen] + "..."
	}

	return s
}

package almanac

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"puzzle-solvers/internal/common"
)

// ErrOverflow reports a range translation that would leave int64.
// Bounds are 64-bit throughout; overflow is fatal, never wrapped around.
var ErrOverflow = errors.New("range translation overflows int64")

// splitRange clips r against every rule domain it intersects and returns
// sub-ranges that each lie entirely inside exactly one domain or entirely
// outside all of them. The pieces, in ascending order, tile r exactly:
// no gaps, no overlaps. An empty r yields no pieces.
//
// Rule domains within a stage are assumed disjoint; if they are not,
// behavior is unspecified.
func splitRange(r Range, rules []Rule) []Range {
	if r.IsEmpty() {
		return nil
	}

	covered := make([]Range, 0, len(rules))

	for _, ru := range rules {
		piece := r.Intersect(ru.Domain())
		if !piece.IsEmpty() {
			covered = append(covered, piece)
		}
	}

	if len(covered) == 0 {
		return []Range{r}
	}

	sort.Slice(covered, func(i, j int) bool { return covered[i].Lo < covered[j].Lo })

	pieces := make([]Range, 0, 2*len(covered)+1)
	pos := r.Lo

	for _, c := range covered {
		if pos < c.Lo {
			pieces = append(pieces, Range{Lo: pos, Hi: c.Lo})
		}

		pieces = append(pieces, c)
		pos = c.Hi
	}

	if pos < r.Hi {
		pieces = append(pieces, Range{Lo: pos, Hi: r.Hi})
	}

	return pieces
}

// mapPiece translates one split piece through the first rule whose
// domain covers it, or returns it unchanged when no rule applies. The
// piece must lie entirely inside one domain or entirely outside all of
// them (guaranteed by splitRange); mapPiece never splits further and
// always preserves width.
func mapPiece(p Range, rules []Rule) (Range, error) {
	for _, ru := range rules {
		if !ru.Domain().Contains(p.Lo) {
			continue
		}

		off := ru.Offset()
		if off > 0 && p.Hi > math.MaxInt64-off {
			return Range{}, fmt.Errorf("%w: %v + %d", ErrOverflow, p, off)
		}

		if off < 0 && p.Lo < math.MinInt64-off {
			return Range{}, fmt.Errorf("%w: %v + %d", ErrOverflow, p, off)
		}

		return p.Translate(off), nil
	}

	return p, nil
}

// Propagate feeds one seed range through every stage in document order
// and returns the frontier of ranges reachable after the last stage.
// With no stages the seed passes through unchanged. Frontier ranges may
// overlap after mapping; the only downstream consumption is a minimum
// reduction, so they are not merged.
func Propagate(seed Range, stages []Stage) ([]Range, error) {
	frontier := []Range{seed}

	for _, st := range stages {
		next := make([]Range, 0, len(frontier))

		for _, r := range frontier {
			for _, piece := range splitRange(r, st.Rules) {
				mapped, err := mapPiece(piece, st.Rules)
				if err != nil {
					return nil, fmt.Errorf("stage %s: %w", st.Name, err)
				}

				next = append(next, mapped)
			}
		}

		slog.Debug("propagated frontier", "stage", st.Name, "ranges", len(next))

		frontier = next
	}

	return frontier, nil
}

// Solve parses a full almanac document and returns the minimum value
// reachable after the final stage, starting from every seed range.
//
// Seed ranges are independent, so they are evaluated on a bounded worker
// pool; each worker records its seed's minimum and the results are
// reduced once the pool drains.
func Solve(document string, mode SeedMode) (int64, error) {
	first, body, _ := strings.Cut(document, "\n")

	seeds, err := ParseSeeds(first, mode)
	if err != nil {
		return 0, err
	}

	stages, err := ParseStages(body)
	if err != nil {
		return 0, err
	}

	slog.Debug("almanac parsed", "seeds", len(seeds), "stages", len(stages), "mode", mode)

	var grp errgroup.Group

	grp.SetLimit(runtime.NumCPU())

	minima := make([]int64, len(seeds))

	for i, seed := range seeds {
		i, seed := i, seed

		grp.Go(func() error {
			frontier, err := Propagate(seed, stages)
			if err != nil {
				return err
			}

			m := int64(math.MaxInt64)
			for _, r := range frontier {
				if !r.IsEmpty() && r.Lo < m {
					m = r.Lo
				}
			}

			minima[i] = m

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return 0, err
	}

	best, ok := common.Min(minima)
	if !ok || best == math.MaxInt64 {
		return 0, fmt.Errorf("%w: all seed ranges are empty", ErrMissingSeeds)
	}

	return best, nil
}

// SolveFile reads an almanac document from path and solves it.
func SolveFile(path string, mode SeedMode) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading almanac: %w", err)
	}

	return Solve(string(data), mode)
}

package manifest

import (
	"fmt"

	"puzzle-solvers/internal/almanac"
	"puzzle-solvers/internal/calibrate"
	"puzzle-solvers/internal/cubegame"
	"puzzle-solvers/internal/schematic"
	"puzzle-solvers/internal/scratchcard"
)

// Execute runs the solver described by r and returns its answer.
func (r Run) Execute() (int64, error) {
	switch r.Solver {
	case "calibrate":
		v, err := calibrate.TotalFile(r.Input, r.Options.Words)
		return int64(v), err

	case "cubegame":
		bag := cubegame.Bag{Red: r.Options.Red, Green: r.Options.Green, Blue: r.Options.Blue}

		if r.Options.Powers {
			v, err := cubegame.SumPowersFile(r.Input)
			return int64(v), err
		}

		v, err := cubegame.SumPermittedIDsFile(r.Input, bag)

		return int64(v), err

	case "schematic":
		if r.Options.Gears {
			v, err := schematic.SumGearRatiosFile(r.Input)
			return int64(v), err
		}

		v, err := schematic.SumPartNumbersFile(r.Input)

		return int64(v), err

	case "scratchcard":
		if r.Options.Cascade {
			v, err := scratchcard.TotalCardsFile(r.Input)
			return int64(v), err
		}

		v, err := scratchcard.TotalScoreFile(r.Input)

		return int64(v), err

	case "almanac":
		mode := almanac.SeedScalars
		if r.Options.Ranges {
			mode = almanac.SeedRanges
		}

		return almanac.SolveFile(r.Input, mode)

	default:
		return 0, fmt.Errorf("unknown solver %q", r.Solver)
	}
}

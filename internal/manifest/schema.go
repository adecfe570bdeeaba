// Package manifest loads the YAML run manifest: a list of solver runs,
// each naming a solver, an input document, and solver options. The
// manifest is the only configuration surface of the CLI; solvers
// themselves read nothing but their input document.
package manifest

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest is the root of a YAML run manifest.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Runs lists the solver executions in order.
	Runs []Run `yaml:"runs" validate:"required,min=1,dive"`
}

// Run describes one solver execution.
type Run struct {
	// Solver selects which puzzle solver to execute.
	Solver string `yaml:"solver" validate:"required,oneof=calibrate cubegame schematic scratchcard almanac"`

	// Input is the path of the puzzle document to read.
	Input string `yaml:"input" validate:"required"`

	// Options carries per-solver flags; irrelevant fields are ignored.
	Options Options `yaml:"options"`
}

// Options holds every per-solver option. Only the fields relevant to
// the selected solver are consulted.
type Options struct {
	// Ranges switches the almanac seeds line to (start, length) pairs.
	Ranges bool `yaml:"ranges,omitempty"`

	// Words lets calibration lines count spelled-out digits.
	Words bool `yaml:"words,omitempty"`

	// Red, Green and Blue size the cube-game bag.
	Red   int `yaml:"red,omitempty" validate:"min=0"`
	Green int `yaml:"green,omitempty" validate:"min=0"`
	Blue  int `yaml:"blue,omitempty" validate:"min=0"`

	// Powers reports the cube-game power total instead of permitted IDs.
	Powers bool `yaml:"powers,omitempty"`

	// Gears reports the schematic gear-ratio total instead of part numbers.
	Gears bool `yaml:"gears,omitempty"`

	// Cascade plays the scratchcard copy cascade instead of doubling scores.
	Cascade bool `yaml:"cascade,omitempty"`
}

var validate = validator.New()

// Parse parses YAML data into a Manifest, applies defaults and
// validates the result.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}

	applyDefaults(&m)

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &m, nil
}

// LoadFile loads, parses and validates the manifest at path, and checks
// that every run input exists.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}

	for _, run := range m.Runs {
		if _, err := os.Stat(run.Input); err != nil {
			return nil, fmt.Errorf("run %s: input: %w", run.Solver, err)
		}
	}

	return m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	for i := range m.Runs {
		o := &m.Runs[i].Options
		if o.Red == 0 && o.Green == 0 && o.Blue == 0 {
			o.Red, o.Green, o.Blue = 12, 13, 14
		}
	}
}

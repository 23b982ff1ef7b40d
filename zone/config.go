package zone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kc099/ASRS/grid"
)

// Config is the engine's process-wide static configuration: grid extents,
// the picking agent's origin cell, and the zone table. It is loaded (or
// declared) once at startup, validated, and passed explicitly into the
// constructors that need it.
type Config struct {
	Rows   int       `yaml:"rows"`
	Cols   int       `yaml:"cols"`
	Origin grid.Cell `yaml:"origin"`
	Zones  []Zone    `yaml:"zones"`
}

// DefaultConfig returns the reference warehouse configuration: a 30×25
// grid, the agent parked at the bottom-left corner, and five capacity
// zones covering rows 0–29 for size classes 1–5.
func DefaultConfig() Config {
	return Config{
		Rows:   30,
		Cols:   25,
		Origin: grid.Cell{Row: 29, Col: 0},
		Zones: []Zone{
			{ID: 1, Name: "Zone-A: Small Items", RowStart: 0, RowEnd: 3, Sizes: []int{1}},
			{ID: 2, Name: "Zone-B: Medium Items", RowStart: 4, RowEnd: 9, Sizes: []int{2}},
			{ID: 3, Name: "Zone-C: Standard Items", RowStart: 10, RowEnd: 15, Sizes: []int{3}},
			{ID: 4, Name: "Zone-D: Large Items", RowStart: 16, RowEnd: 21, Sizes: []int{4}},
			{ID: 5, Name: "Zone-E: Bulk Items", RowStart: 22, RowEnd: 29, Sizes: []int{5}},
		},
	}
}

// Validate checks the configuration as a whole: positive extents, origin
// within bounds, a well-formed zone table, and every zone row range inside
// the grid. Returns ErrBadConfig wrapping the specific violation.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrBadConfig, c.Rows, c.Cols)
	}
	if c.Origin.Row < 0 || c.Origin.Row >= c.Rows || c.Origin.Col < 0 || c.Origin.Col >= c.Cols {
		return fmt.Errorf("%w: origin (%d,%d) outside %dx%d grid",
			ErrBadConfig, c.Origin.Row, c.Origin.Col, c.Rows, c.Cols)
	}
	if _, err := NewMap(c.Zones); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	for _, z := range c.Zones {
		if z.RowEnd >= c.Rows {
			return fmt.Errorf("%w: zone %d ends at row %d on a %d-row grid",
				ErrBadConfig, z.ID, z.RowEnd, c.Rows)
		}
	}
	return nil
}

// Map builds the validated zone Map described by the configuration.
func (c Config) Map() (*Map, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewMap(c.Zones)
}

// ParseConfig decodes and validates a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return ParseConfig(data)
}

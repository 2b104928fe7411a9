// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/acocharge/aco"
)

// DefaultGenerations is used when a scenario leaves generations unset.
const DefaultGenerations = 100

// Point is the on-disk form of aco.Point.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Options mirrors aco.Options with optional fields; nil means "default".
type Options struct {
	NumAnts            *int     `yaml:"num_ants"`
	DstPower           *float64 `yaml:"dst_power"`
	PheromonePower     *float64 `yaml:"pheromone_power"`
	EvaporationRate    *float64 `yaml:"evaporation_rate"`
	PheromoneIntensity *float64 `yaml:"pheromone_intensity"`
	ChargerCapacity    *int     `yaml:"charger_capacity"`
}

// Scenario is one decoded file.
type Scenario struct {
	Seed        int64   `yaml:"seed"`
	Generations int     `yaml:"generations"`
	Options     Options `yaml:"options"`
	Cars        []Point `yaml:"cars"`
	Chargers    []Point `yaml:"chargers"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a scenario held in memory.
func Parse(data []byte) (*Scenario, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r, fills defaults and validates it.
// An empty document decodes to an empty scenario with default settings.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if s.Generations == 0 {
		s.Generations = DefaultGenerations
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks generation count and the resolved colony options.
func (s *Scenario) Validate() error {
	if s.Generations < 0 {
		return fmt.Errorf("%w: generations=%d, want >= 0", ErrInvalid, s.Generations)
	}
	if err := s.ColonyOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ColonyOptions overlays the scenario's settings on aco.DefaultOptions.
func (s *Scenario) ColonyOptions() aco.Options {
	o := aco.DefaultOptions()
	if v := s.Options.NumAnts; v != nil {
		o.NumAnts = *v
	}
	if v := s.Options.DstPower; v != nil {
		o.DstPower = *v
	}
	if v := s.Options.PheromonePower; v != nil {
		o.PheromonePower = *v
	}
	if v := s.Options.EvaporationRate; v != nil {
		o.EvaporationRate = *v
	}
	if v := s.Options.PheromoneIntensity; v != nil {
		o.PheromoneIntensity = *v
	}
	if v := s.Options.ChargerCapacity; v != nil {
		o.ChargerCapacity = *v
	}

	return o
}

// Build returns a colony seeded from s.Seed with every car and charger
// added. extra options are applied after the scenario's own.
func (s *Scenario) Build(extra ...aco.Option) (*aco.Colony, error) {
	opts := append([]aco.Option{aco.WithOptions(s.ColonyOptions())}, extra...)
	col, err := aco.NewColony(aco.NewRandomSource(s.Seed), opts...)
	if err != nil {
		return nil, err
	}
	if err = col.AddCars(toPoints(s.Cars)); err != nil {
		return nil, err
	}
	if err = col.AddChargers(toPoints(s.Chargers)); err != nil {
		return nil, err
	}

	return col, nil
}

func toPoints(in []Point) []aco.Point {
	out := make([]aco.Point, len(in))
	for i, p := range in {
		out[i] = aco.Point{X: p.X, Y: p.Y}
	}

	return out
}

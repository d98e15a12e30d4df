// Package config loads and saves run configurations and maps them onto the
// engine builder.
package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/engine"
	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

const (
	DefaultParticles     = 1000
	DefaultSigma         = 1.0
	DefaultBoundLen      = 10.0
	DefaultUnitSize      = 1.0
	DefaultReach         = 1
	DefaultDt            = 0.001
	DefaultStepsPerFrame = 50
)

type Config struct {
	Law           string         `yaml:"law"`
	Dt            float64        `yaml:"dt"`
	StepsPerFrame int            `yaml:"steps_per_frame"`
	Seed          int64          `yaml:"seed"`
	Bound         BoundConfig    `yaml:"bound"`
	Grid          GridConfig     `yaml:"grid"`
	Cloud         CloudConfig    `yaml:"cloud"`
	Thermo        ThermoConfig   `yaml:"thermo"`
	ExtAccel      [3]float64     `yaml:"ext_accel"`
	Pressure      PressureConfig `yaml:"pressure"`
}

type BoundConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type GridConfig struct {
	UnitSize float64 `yaml:"unit_size"`
	Reach    int     `yaml:"reach"`
}

type CloudConfig struct {
	Particles int     `yaml:"particles"`
	Sigma     float64 `yaml:"sigma"`
	Temp      float64 `yaml:"temp"`
}

type ThermoConfig struct {
	TargetTemp float64 `yaml:"target_temp"`
	InjectRate float64 `yaml:"inject_rate"`
}

type PressureConfig struct {
	Pinned  bool    `yaml:"pinned"`
	AtValue float64 `yaml:"at_value"`
}

func DefaultConfig() *Config {
	return &Config{
		Law:           "lennard-jones",
		Dt:            DefaultDt,
		StepsPerFrame: DefaultStepsPerFrame,
		Bound:         BoundConfig{X: DefaultBoundLen, Y: DefaultBoundLen, Z: DefaultBoundLen},
		Grid:          GridConfig{UnitSize: DefaultUnitSize, Reach: DefaultReach},
		Cloud:         CloudConfig{Particles: DefaultParticles, Sigma: DefaultSigma},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewLaw resolves the configured interaction law name.
func (c *Config) NewLaw() (engine.Interaction, error) {
	switch c.Law {
	case "", "lennard-jones":
		return engine.NewLennardJones(), nil
	case "cuboid":
		return engine.NewCuboidRepulsion(), nil
	default:
		return nil, fmt.Errorf("unknown interaction law %q", c.Law)
	}
}

// BuildState generates the initial cloud and compiles an engine State from
// the configuration.
func (c *Config) BuildState() (*engine.State, error) {
	law, err := c.NewLaw()
	if err != nil {
		return nil, err
	}

	bound := engine.Boundary{X: c.Bound.X, Y: c.Bound.Y, Z: c.Bound.Z}
	rng := rand.New(rand.NewSource(c.Seed))
	particles := engine.GenerateSphericalCloud(bound, c.Cloud.Particles, c.Cloud.Sigma, c.Cloud.Temp, rng)

	state, err := engine.NewBuilder().
		SetBound(bound).
		SetGridUnitSize(c.Grid.UnitSize).
		SetGridReach(c.Grid.Reach).
		SetDt(c.Dt).
		SetStepsPerFrame(c.StepsPerFrame).
		SetTargetTemp(c.Thermo.TargetTemp).
		SetInjectRate(c.Thermo.InjectRate).
		SetExtAccel(vec.New3(c.ExtAccel[0], c.ExtAccel[1], c.ExtAccel[2])).
		SetLaw(law).
		SetParticles(particles).
		Build()
	if err != nil {
		return nil, err
	}

	if c.Pressure.Pinned {
		state.SetPressurePin(engine.PressurePin{IsPinned: true, AtValue: c.Pressure.AtValue})
	}
	return state, nil
}

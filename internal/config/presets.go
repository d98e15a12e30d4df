package config

// Presets are named starting points for common regimes. They differ mainly
// in density, initial temperature, and heat coupling.
var Presets = map[string]*Config{
	"gas": {
		Law: "lennard-jones", Dt: 0.001, StepsPerFrame: 50,
		Bound: BoundConfig{X: 10, Y: 10, Z: 10},
		Grid:  GridConfig{UnitSize: 1.0, Reach: 1},
		Cloud: CloudConfig{Particles: 1000, Sigma: 2.0, Temp: 1.0},
	},
	"cold-cluster": {
		Law: "lennard-jones", Dt: 0.001, StepsPerFrame: 50,
		Bound: BoundConfig{X: 10, Y: 10, Z: 10},
		Grid:  GridConfig{UnitSize: 1.0, Reach: 1},
		Cloud: CloudConfig{Particles: 1000, Sigma: 1.0, Temp: 0.0},
	},
	"heated": {
		Law: "lennard-jones", Dt: 0.001, StepsPerFrame: 50,
		Bound:  BoundConfig{X: 10, Y: 10, Z: 10},
		Grid:   GridConfig{UnitSize: 1.0, Reach: 1},
		Cloud:  CloudConfig{Particles: 1000, Sigma: 1.5, Temp: 0.2},
		Thermo: ThermoConfig{TargetTemp: 1.5, InjectRate: 0.1},
	},
	"pinned": {
		Law: "lennard-jones", Dt: 0.001, StepsPerFrame: 50,
		Bound:    BoundConfig{X: 8, Y: 8, Z: 8},
		Grid:     GridConfig{UnitSize: 1.0, Reach: 1},
		Cloud:    CloudConfig{Particles: 800, Sigma: 1.5, Temp: 0.5},
		Thermo:   ThermoConfig{TargetTemp: 0.5, InjectRate: 0.05},
		Pressure: PressureConfig{Pinned: true, AtValue: 0.02},
	},
	"cuboid": {
		Law: "cuboid", Dt: 0.0005, StepsPerFrame: 50,
		Bound: BoundConfig{X: 8, Y: 8, Z: 8},
		Grid:  GridConfig{UnitSize: 1.0, Reach: 1},
		Cloud: CloudConfig{Particles: 500, Sigma: 1.0, Temp: 0.1},
	},
}

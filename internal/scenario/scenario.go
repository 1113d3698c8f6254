// Package scenario loads assessment inputs from YAML files.
package scenario

import (
	"fmt"
	"os"

	"Geostore/internal/calc/constants"
	"Geostore/internal/calc/geometry"
	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/reservoir"
	"Geostore/internal/calc/sensitivity"

	"gopkg.in/yaml.v3"
)

type Sweep struct {
	Parameter sensitivity.Parameter `json:"parameter" yaml:"parameter"`
	Fractions []float64             `json:"fractions" yaml:"fractions"`
}

type Scenario struct {
	Reservoir   reservoir.Input     `json:"reservoir" yaml:"reservoir"`
	Constants   constants.Constants `json:"constants" yaml:"constants"`
	Layers      []layers.Layer      `json:"layers" yaml:"layers"`
	Sensitivity Sweep               `json:"sensitivity" yaml:"sensitivity"`
}

// Default is the reference case: a 1 km², 50 m thick reservoir at 15%
// porosity, 150 °C down to a 50 °C cutoff, three layers and a ±10% porosity sweep.
func Default() Scenario {
	return Scenario{
		Reservoir: reservoir.Input{
			AreaM2:         1e6,
			ThicknessM:     50,
			Porosity:       0.15,
			ReservoirTempC: 150,
			CutoffTempC:    50,
			SaturationCO2:  0.6,
		},
		Constants: constants.Default(),
		Layers: []layers.Layer{
			{Name: "Layer 1", PoreVolumeM3: 2.0e6, SaturationCO2: 0.6},
			{Name: "Layer 2", PoreVolumeM3: 1.5e6, SaturationCO2: 0.5},
			{Name: "Layer 3", PoreVolumeM3: 1.8e6, SaturationCO2: 0.55},
		},
		Sensitivity: Sweep{
			Parameter: sensitivity.ParamPorosity,
			Fractions: append([]float64(nil), sensitivity.DefaultFractions...),
		},
	}
}

// Base is Default without its list sections. encoding/json decodes into
// existing slice elements, so JSON overlays start from Base and finish
// with Complete.
func Base() Scenario {
	s := Default()
	s.Layers = nil
	s.Sensitivity.Fractions = nil
	return s
}

// Complete puts back the reference lists a document left out.
func (s Scenario) Complete() Scenario {
	d := Default()
	if s.Layers == nil {
		s.Layers = d.Layers
	}
	if s.Sensitivity.Fractions == nil {
		s.Sensitivity.Fractions = d.Sensitivity.Fractions
	}
	s.Constants = s.Constants.WithDefaults()
	return s
}

// Parse overlays data on Default, so omitted keys keep reference values.
func Parse(data []byte) (Scenario, error) {
	s := Base()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return s.Complete(), nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

func (s Scenario) ReservoirInput() reservoir.Input {
	in := s.Reservoir
	in.Constants = s.Constants
	return in
}

// LayersInput shares the reservoir's temperature differential.
func (s Scenario) LayersInput() layers.Input {
	return layers.Input{
		Layers:    s.Layers,
		DeltaTC:   geometry.DeltaT(s.Reservoir.ReservoirTempC, s.Reservoir.CutoffTempC),
		Constants: s.Constants,
	}
}

func (s Scenario) SensitivityInput() sensitivity.Input {
	return sensitivity.Input{
		Reservoir: s.ReservoirInput(),
		Parameter: s.Sensitivity.Parameter,
		Fractions: s.Sensitivity.Fractions,
	}
}

// Assessment holds the three result sets of one run.
type Assessment struct {
	Reservoir   reservoir.Result   `json:"reservoir"`
	Layers      layers.Result      `json:"layers"`
	Sensitivity sensitivity.Result `json:"sensitivity"`
}

func (s Scenario) Assess() (Assessment, error) {
	res, err := reservoir.Calculate(s.ReservoirInput())
	if err != nil {
		return Assessment{}, fmt.Errorf("reservoir: %w", err)
	}
	lay, err := layers.Calculate(s.LayersInput())
	if err != nil {
		return Assessment{}, fmt.Errorf("layers: %w", err)
	}
	sweep, err := sensitivity.Calculate(s.SensitivityInput())
	if err != nil {
		return Assessment{}, fmt.Errorf("sensitivity: %w", err)
	}
	return Assessment{Reservoir: res, Layers: lay, Sensitivity: sweep}, nil
}

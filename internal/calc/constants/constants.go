package constants

import (
	calc "Geostore/internal/calc"
)

// Reference physical constants, SI units.
const (
	WaterDensity       = 1000.0 // kg/m³
	WaterSpecificHeat  = 4186.0 // J/kg/K
	CO2Density         = 700.0  // kg/m³, supercritical
	JoulesPerMegajoule = 1e6
	KilogramsPerTonne  = 1000.0
)

// Constants carries the fluid properties into the storage formulas.
// Zero fields fall back to the reference values.
type Constants struct {
	WaterDensityKgM3      float64 `json:"water_density_kg_m3,omitempty" yaml:"water_density_kg_m3,omitempty"`
	WaterSpecificHeatJKgK float64 `json:"water_specific_heat_j_kg_k,omitempty" yaml:"water_specific_heat_j_kg_k,omitempty"`
	CO2DensityKgM3        float64 `json:"co2_density_kg_m3,omitempty" yaml:"co2_density_kg_m3,omitempty"`
}

func Default() Constants {
	return Constants{
		WaterDensityKgM3:      WaterDensity,
		WaterSpecificHeatJKgK: WaterSpecificHeat,
		CO2DensityKgM3:        CO2Density,
	}
}

// WithDefaults fills unset (zero) fields only. Anything else is kept for
// Validate to judge.
func (c Constants) WithDefaults() Constants {
	if c.WaterDensityKgM3 == 0 {
		c.WaterDensityKgM3 = WaterDensity
	}
	if c.WaterSpecificHeatJKgK == 0 {
		c.WaterSpecificHeatJKgK = WaterSpecificHeat
	}
	if c.CO2DensityKgM3 == 0 {
		c.CO2DensityKgM3 = CO2Density
	}
	return c
}

func (c Constants) Validate() error {
	if err := calc.Positive("water_density_kg_m3", c.WaterDensityKgM3); err != nil {
		return err
	}
	if err := calc.Positive("water_specific_heat_j_kg_k", c.WaterSpecificHeatJKgK); err != nil {
		return err
	}
	return calc.Positive("co2_density_kg_m3", c.CO2DensityKgM3)
}

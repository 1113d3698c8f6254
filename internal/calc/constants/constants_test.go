package constants

import (
	"math"
	"testing"

	calc "Geostore/internal/calc"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaultsFillsZeroOnly(t *testing.T) {
	assert.Equal(t, Default(), Constants{}.WithDefaults())

	c := Constants{WaterDensityKgM3: -1000, CO2DensityKgM3: 650}.WithDefaults()
	assert.Equal(t, -1000.0, c.WaterDensityKgM3)
	assert.Equal(t, WaterSpecificHeat, c.WaterSpecificHeatJKgK)
	assert.Equal(t, 650.0, c.CO2DensityKgM3)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	tests := map[string]Constants{
		"negative water density": {WaterDensityKgM3: -1000, WaterSpecificHeatJKgK: WaterSpecificHeat, CO2DensityKgM3: CO2Density},
		"negative specific heat": {WaterDensityKgM3: WaterDensity, WaterSpecificHeatJKgK: -1, CO2DensityKgM3: CO2Density},
		"NaN CO2 density":        {WaterDensityKgM3: WaterDensity, WaterSpecificHeatJKgK: WaterSpecificHeat, CO2DensityKgM3: math.NaN()},
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Validate(), calc.ErrInvalidInput)
		})
	}
}

package storage

import (
	"math"
	"testing"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatStorageReferenceCase(t *testing.T) {
	got := HeatStorage(7.5e6, constants.WaterDensity, constants.WaterSpecificHeat, 100)
	assert.InDelta(t, 3_139_500_000.0, got, 1e-3)
}

func TestCO2StorageReferenceCase(t *testing.T) {
	got := CO2Storage(7.5e6, 0.6, constants.CO2Density)
	assert.InDelta(t, 3_150_000.0, got, 1e-6)
}

func TestHeatStorageIsLinearInEachArgument(t *testing.T) {
	args := [4]float64{7.5e6, 1000, 4186, 100}
	base := HeatStorage(args[0], args[1], args[2], args[3])
	for _, k := range []float64{0, 0.5, 2, 3.7} {
		for i := range args {
			scaled := args
			scaled[i] *= k
			got := HeatStorage(scaled[0], scaled[1], scaled[2], scaled[3])
			assert.InEpsilonf(t, base*k+1, got+1, 1e-12, "arg %d scaled by %g", i, k)
		}
	}
}

func TestCO2StorageIsLinearInEachArgument(t *testing.T) {
	args := [3]float64{7.5e6, 0.6, 700}
	base := CO2Storage(args[0], args[1], args[2])
	for _, k := range []float64{0, 0.5, 1.5} {
		for i := range args {
			scaled := args
			scaled[i] *= k
			got := CO2Storage(scaled[0], scaled[1], scaled[2])
			assert.InEpsilonf(t, base*k+1, got+1, 1e-12, "arg %d scaled by %g", i, k)
		}
	}
}

func TestNegativeDeltaTGivesNegativeEnergy(t *testing.T) {
	assert.Less(t, HeatStorage(1e6, 1000, 4186, -10), 0.0)
}

func TestBatchMatchesScalar(t *testing.T) {
	volumes := []float64{2.0e6, 1.5e6, 1.8e6}
	saturations := []float64{0.6, 0.5, 0.55}

	heat := HeatStorageBatch(volumes, 1000, 4186, 100)
	co2, err := CO2StorageBatch(volumes, saturations, 700)
	require.NoError(t, err)
	require.Len(t, heat, 3)
	require.Len(t, co2, 3)

	for i, v := range volumes {
		assert.Equal(t, HeatStorage(v, 1000, 4186, 100), heat[i])
		assert.Equal(t, CO2Storage(v, saturations[i], 700), co2[i])
	}
}

func TestBatchEmpty(t *testing.T) {
	assert.Empty(t, HeatStorageBatch(nil, 1000, 4186, 100))
	co2, err := CO2StorageBatch(nil, nil, 700)
	require.NoError(t, err)
	assert.Empty(t, co2)
}

func TestCO2StorageBatchLengthMismatch(t *testing.T) {
	_, err := CO2StorageBatch([]float64{1, 2}, []float64{0.5}, 700)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCalculateDefaultsConstants(t *testing.T) {
	res, err := Calculate(Input{PoreVolumeM3: 7.5e6, SaturationCO2: 0.6, DeltaTC: 100})
	require.NoError(t, err)
	assert.InDelta(t, 3_139_500_000.0, res.HeatMJ, 1e-3)
	assert.InDelta(t, 3_150_000.0, res.CO2Tonnes, 1e-6)
}

func TestCalculateUsesInjectedConstants(t *testing.T) {
	res, err := Calculate(Input{
		PoreVolumeM3:  1e6,
		SaturationCO2: 0.5,
		DeltaTC:       10,
		Constants:     constants.Constants{WaterDensityKgM3: 980, CO2DensityKgM3: 600},
	})
	require.NoError(t, err)
	assert.InDelta(t, HeatStorage(1e6, 980, constants.WaterSpecificHeat, 10), res.HeatMJ, 1e-6)
	assert.InDelta(t, 300_000.0, res.CO2Tonnes, 1e-6)
}

func TestCalculateRejectsOutOfRange(t *testing.T) {
	cases := map[string]Input{
		"negative volume":  {PoreVolumeM3: -1, SaturationCO2: 0.5, DeltaTC: 10},
		"saturation above": {PoreVolumeM3: 1, SaturationCO2: 1.2, DeltaTC: 10},
		"saturation below": {PoreVolumeM3: 1, SaturationCO2: -0.1, DeltaTC: 10},
		"negative delta T": {PoreVolumeM3: 1, SaturationCO2: 0.5, DeltaTC: -5},
		"NaN volume":       {PoreVolumeM3: math.NaN(), SaturationCO2: 0.5, DeltaTC: 10},
		"NaN saturation":   {PoreVolumeM3: 1, SaturationCO2: math.NaN(), DeltaTC: 10},
		"infinite delta T": {PoreVolumeM3: 1, SaturationCO2: 0.5, DeltaTC: math.Inf(1)},
		"overflow":         {PoreVolumeM3: 1e300, SaturationCO2: 0.5, DeltaTC: 100},
		"negative density": {PoreVolumeM3: 1, SaturationCO2: 0.5, DeltaTC: 10, Constants: constants.Constants{WaterDensityKgM3: -1000}},
		"negative CO2 rho": {PoreVolumeM3: 1, SaturationCO2: 0.5, DeltaTC: 10, Constants: constants.Constants{CO2DensityKgM3: -700}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Calculate(in)
			assert.ErrorIs(t, err, calc.ErrInvalidInput)
		})
	}
}

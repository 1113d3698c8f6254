package format

import (
	"bytes"
	"strings"
	"testing"

	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/reservoir"
	"Geostore/internal/calc/sensitivity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference() reservoir.Input {
	return reservoir.Input{
		AreaM2: 1e6, ThicknessM: 50, Porosity: 0.15,
		ReservoirTempC: 150, CutoffTempC: 50, SaturationCO2: 0.6,
	}
}

func TestSummary(t *testing.T) {
	res, err := reservoir.Calculate(reference())
	require.NoError(t, err)

	var buf bytes.Buffer
	Summary(&buf, res)

	want := strings.Join([]string{
		"========== Single Reservoir ==========",
		"Reservoir volume : 50,000,000 m³",
		"Pore volume      : 7,500,000 m³",
		"Heat storage     : 3,139,500,000.00 MJ",
		"CO2 capacity     : 3,150,000.00 tonnes",
		"======================================",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestVolumeAndAmount(t *testing.T) {
	assert.Equal(t, "6,750,000", Volume(6_750_000.4))
	assert.Equal(t, "0", Volume(0))
	assert.Equal(t, "1,234.57", Amount(1234.567))
}

func TestTables(t *testing.T) {
	lr, err := layers.Calculate(layers.Input{
		Layers:  []layers.Layer{{Name: "Layer 1", PoreVolumeM3: 2e6, SaturationCO2: 0.6}},
		DeltaTC: 100,
	})
	require.NoError(t, err)
	sr, err := sensitivity.Calculate(sensitivity.Input{Reservoir: reference()})
	require.NoError(t, err)

	var buf bytes.Buffer
	Layers(&buf, lr)
	Sensitivity(&buf, sr)
	out := buf.String()

	assert.Contains(t, out, "837,200,000.00")
	assert.Contains(t, out, "840,000.00")
	assert.Contains(t, out, "Low φ (-10%)")
	assert.Contains(t, out, "6,750,000")
	assert.Contains(t, out, "Sensitivity (porosity)")
}

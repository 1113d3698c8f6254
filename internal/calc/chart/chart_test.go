package chart

import (
	"bytes"
	"testing"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/reservoir"
	"Geostore/internal/calc/sensitivity"

	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func layerResult(t *testing.T) layers.Result {
	t.Helper()
	res, err := layers.Calculate(layers.Input{
		Layers: []layers.Layer{
			{Name: "Layer 1", PoreVolumeM3: 2.0e6, SaturationCO2: 0.6},
			{Name: "Layer 2", PoreVolumeM3: 1.5e6, SaturationCO2: 0.5},
			{Name: "Layer 3", PoreVolumeM3: 1.8e6, SaturationCO2: 0.55},
		},
		DeltaTC: 100,
	})
	require.NoError(t, err)
	return res
}

func sweepResult(t *testing.T) sensitivity.Result {
	t.Helper()
	res, err := sensitivity.Calculate(sensitivity.Input{Reservoir: reservoir.Input{
		AreaM2: 1e6, ThicknessM: 50, Porosity: 0.15,
		ReservoirTempC: 150, CutoffTempC: 50, SaturationCO2: 0.6,
	}})
	require.NoError(t, err)
	return res
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3,139.5", FormatValue(3_139_500_000, 1e6))
	assert.Equal(t, "3,150,000.0", FormatValue(3_150_000, 1))
	assert.Equal(t, "42.0", FormatValue(42, 0))
}

func TestBuilders(t *testing.T) {
	lr := layerResult(t)

	heat := LayerHeat(lr)
	require.NoError(t, heat.Validate())
	assert.Nil(t, heat.Secondary)
	assert.Equal(t, []string{"Layer 1", "Layer 2", "Layer 3"}, heat.Categories)

	dual := LayerHeatVsCO2(lr)
	require.NoError(t, dual.Validate())
	require.NotNil(t, dual.Secondary)
	assert.Equal(t, lr.CO2(), dual.Secondary.Values)

	sweep := Sensitivity(sweepResult(t))
	require.NoError(t, sweep.Validate())
	assert.Equal(t, 1e6, sweep.Primary.Scale)
	assert.True(t, sweep.Primary.Labels)
	assert.True(t, sweep.Secondary.Labels)
	assert.Contains(t, sweep.Title, "Porosity")
}

func TestValidateRejectsMisaligned(t *testing.T) {
	c := Chart{Name: "x", Categories: []string{"a", "b"}, Primary: Series{Values: []float64{1}}}
	assert.ErrorIs(t, c.Validate(), calc.ErrInvalidInput)

	c.Primary.Values = []float64{1, 2}
	c.Secondary = &Series{Values: []float64{1, 2, 3}}
	assert.ErrorIs(t, c.Validate(), calc.ErrInvalidInput)

	assert.ErrorIs(t, Chart{}.Validate(), calc.ErrInvalidInput)
}

func TestWriteWorkbook(t *testing.T) {
	lr := layerResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, LayerHeat(lr), LayerHeatVsCO2(lr), Sensitivity(sweepResult(t))))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"LayerHeat", "HeatVsCO2", "Sensitivity"}, f.GetSheetList())

	rows, err := f.GetRows("HeatVsCO2")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Category", "Heat (MJ)", "CO₂ (tonnes)"}, rows[0])
	assert.Equal(t, "Layer 2", rows[2][0])
	assert.Equal(t, "525000", rows[2][2])

	rows, err = f.GetRows("Sensitivity")
	require.NoError(t, err)
	assert.Equal(t, "Heat Storage (million MJ)", rows[0][1])
	assert.Equal(t, "Low φ (-10%)", rows[1][0])
}

func TestWriteWorkbookErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteWorkbook(&buf))
	bad := Chart{Name: "bad", Categories: []string{"a"}}
	assert.ErrorIs(t, WriteWorkbook(&buf, bad), calc.ErrInvalidInput)
}

func TestDrawPDF(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	require.NoError(t, DrawPDF(pdf, Sensitivity(sweepResult(t)), 15, 20, 180, 110))
	pdf.AddPage()
	require.NoError(t, DrawPDF(pdf, LayerHeat(layerResult(t)), 15, 20, 180, 110))

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRGB(t *testing.T) {
	r, g, b := rgb(ColorHeat)
	assert.Equal(t, []int{231, 76, 60}, []int{r, g, b})
	r, g, b = rgb("nope")
	assert.Equal(t, []int{128, 128, 128}, []int{r, g, b})
}

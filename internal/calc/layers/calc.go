package layers

import (
	"fmt"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/constants"
	"Geostore/internal/calc/storage"
)

type Layer struct {
	Name          string  `json:"name" yaml:"name"`
	PoreVolumeM3  float64 `json:"pore_volume_m3" yaml:"pore_volume_m3"`
	SaturationCO2 float64 `json:"saturation_co2" yaml:"saturation_co2"`
}

type Input struct {
	Layers    []Layer             `json:"layers"`
	DeltaTC   float64             `json:"delta_t_c"`
	Constants constants.Constants `json:"constants"`
}

type LayerResult struct {
	Name          string  `json:"name"`
	PoreVolumeM3  float64 `json:"pore_volume_m3"`
	SaturationCO2 float64 `json:"saturation_co2"`
	HeatMJ        float64 `json:"heat_mj"`
	CO2Tonnes     float64 `json:"co2_tonnes"`
}

type Result struct {
	Layers []LayerResult `json:"layers"`
}

// Names returns the layer names in input order.
func (r Result) Names() []string {
	out := make([]string, len(r.Layers))
	for i, l := range r.Layers {
		out[i] = l.Name
	}
	return out
}

func (r Result) Heat() []float64 {
	out := make([]float64, len(r.Layers))
	for i, l := range r.Layers {
		out[i] = l.HeatMJ
	}
	return out
}

func (r Result) CO2() []float64 {
	out := make([]float64, len(r.Layers))
	for i, l := range r.Layers {
		out[i] = l.CO2Tonnes
	}
	return out
}

// Calculate evaluates every layer on its own pore volume and saturation.
// The output is index-aligned with in.Layers; nothing is summed or sorted.
func Calculate(in Input) (Result, error) {
	if len(in.Layers) == 0 {
		return Result{}, fmt.Errorf("%w: no layers", calc.ErrInvalidInput)
	}
	if err := calc.NonNegative("delta_t_c", in.DeltaTC); err != nil {
		return Result{}, err
	}

	names := make([]string, len(in.Layers))
	volumes := make([]float64, len(in.Layers))
	saturations := make([]float64, len(in.Layers))
	for i, l := range in.Layers {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Layer %d", i+1)
		}
		if err := calc.NonNegative("pore_volume_m3", l.PoreVolumeM3); err != nil {
			return Result{}, fmt.Errorf("layer %d (%s): %w", i+1, name, err)
		}
		if err := calc.Fraction("saturation_co2", l.SaturationCO2); err != nil {
			return Result{}, fmt.Errorf("layer %d (%s): %w", i+1, name, err)
		}
		names[i] = name
		volumes[i] = l.PoreVolumeM3
		saturations[i] = l.SaturationCO2
	}

	c := in.Constants.WithDefaults()
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	heat := storage.HeatStorageBatch(volumes, c.WaterDensityKgM3, c.WaterSpecificHeatJKgK, in.DeltaTC)
	co2, err := storage.CO2StorageBatch(volumes, saturations, c.CO2DensityKgM3)
	if err != nil {
		return Result{}, err
	}

	out := Result{Layers: make([]LayerResult, 0, len(in.Layers))}
	for i := range in.Layers {
		if err := (storage.Result{HeatMJ: heat[i], CO2Tonnes: co2[i]}).Validate(); err != nil {
			return Result{}, fmt.Errorf("layer %d (%s): %w", i+1, names[i], err)
		}
		out.Layers = append(out.Layers, LayerResult{
			Name:          names[i],
			PoreVolumeM3:  volumes[i],
			SaturationCO2: saturations[i],
			HeatMJ:        heat[i],
			CO2Tonnes:     co2[i],
		})
	}
	return out, nil
}

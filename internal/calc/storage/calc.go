package storage

import (
	"errors"
	"fmt"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/constants"
)

var ErrLengthMismatch = errors.New("length mismatch")

type Input struct {
	PoreVolumeM3  float64             `json:"pore_volume_m3"`
	SaturationCO2 float64             `json:"saturation_co2"`
	DeltaTC       float64             `json:"delta_t_c"`
	Constants     constants.Constants `json:"constants"`
}

type Result struct {
	HeatMJ    float64 `json:"heat_mj"`
	CO2Tonnes float64 `json:"co2_tonnes"`
}

// HeatStorage returns the sensible heat held by the pore fluid, in MJ.
// Inputs are not range checked.
func HeatStorage(poreVolumeM3, densityKgM3, specificHeatJKgK, deltaTC float64) float64 {
	joules := poreVolumeM3 * densityKgM3 * specificHeatJKgK * deltaTC
	return joules / constants.JoulesPerMegajoule
}

// CO2Storage returns the CO2 mass the pore space can hold, in tonnes.
// Inputs are not range checked.
func CO2Storage(poreVolumeM3, saturation, densityKgM3 float64) float64 {
	kg := poreVolumeM3 * saturation * densityKgM3
	return kg / constants.KilogramsPerTonne
}

// HeatStorageBatch applies HeatStorage to every pore volume with one shared deltaT.
func HeatStorageBatch(poreVolumesM3 []float64, densityKgM3, specificHeatJKgK, deltaTC float64) []float64 {
	out := make([]float64, len(poreVolumesM3))
	for i, v := range poreVolumesM3 {
		out[i] = HeatStorage(v, densityKgM3, specificHeatJKgK, deltaTC)
	}
	return out
}

// CO2StorageBatch pairs pore volumes and saturations by index.
func CO2StorageBatch(poreVolumesM3, saturations []float64, densityKgM3 float64) ([]float64, error) {
	if len(poreVolumesM3) != len(saturations) {
		return nil, fmt.Errorf("%w: %d pore volumes, %d saturations", ErrLengthMismatch, len(poreVolumesM3), len(saturations))
	}
	out := make([]float64, len(poreVolumesM3))
	for i, v := range poreVolumesM3 {
		out[i] = CO2Storage(v, saturations[i], densityKgM3)
	}
	return out, nil
}

func (in Input) Validate() error {
	if err := calc.NonNegative("pore_volume_m3", in.PoreVolumeM3); err != nil {
		return err
	}
	if err := calc.Fraction("saturation_co2", in.SaturationCO2); err != nil {
		return err
	}
	return calc.NonNegative("delta_t_c", in.DeltaTC)
}

func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	c := in.Constants.WithDefaults()
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{
		HeatMJ:    HeatStorage(in.PoreVolumeM3, c.WaterDensityKgM3, c.WaterSpecificHeatJKgK, in.DeltaTC),
		CO2Tonnes: CO2Storage(in.PoreVolumeM3, in.SaturationCO2, c.CO2DensityKgM3),
	}
	if err := res.Validate(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Validate catches products that overflowed float64.
func (r Result) Validate() error {
	if err := calc.Finite("heat_mj", r.HeatMJ); err != nil {
		return err
	}
	return calc.Finite("co2_tonnes", r.CO2Tonnes)
}

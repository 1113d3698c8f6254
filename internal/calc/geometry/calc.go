package geometry

import (
	calc "Geostore/internal/calc"
)

type Input struct {
	AreaM2         float64 `json:"area_m2"`
	ThicknessM     float64 `json:"thickness_m"`
	Porosity       float64 `json:"porosity"`
	ReservoirTempC float64 `json:"reservoir_temp_c"`
	CutoffTempC    float64 `json:"cutoff_temp_c"`
}

type Result struct {
	BulkVolumeM3 float64 `json:"bulk_volume_m3"`
	PoreVolumeM3 float64 `json:"pore_volume_m3"`
	DeltaTC      float64 `json:"delta_t_c"`
}

func BulkVolume(areaM2, thicknessM float64) float64 {
	return areaM2 * thicknessM
}

func PoreVolume(bulkM3, porosity float64) float64 {
	return bulkM3 * porosity
}

func (in Input) Validate() error {
	if err := calc.Positive("area_m2", in.AreaM2); err != nil {
		return err
	}
	if err := calc.Positive("thickness_m", in.ThicknessM); err != nil {
		return err
	}
	if err := calc.Fraction("porosity", in.Porosity); err != nil {
		return err
	}
	return calc.NonNegative("delta_t_c", DeltaT(in.ReservoirTempC, in.CutoffTempC))
}

func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	bulk := BulkVolume(in.AreaM2, in.ThicknessM)
	if err := calc.Finite("bulk_volume_m3", bulk); err != nil {
		return Result{}, err
	}
	return Result{
		BulkVolumeM3: bulk,
		PoreVolumeM3: PoreVolume(bulk, in.Porosity),
		DeltaTC:      DeltaT(in.ReservoirTempC, in.CutoffTempC),
	}, nil
}

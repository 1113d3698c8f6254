package reservoir

import (
	"Geostore/internal/calc/constants"
	"Geostore/internal/calc/geometry"
	"Geostore/internal/calc/storage"
)

type Input struct {
	AreaM2         float64             `json:"area_m2" yaml:"area_m2"`
	ThicknessM     float64             `json:"thickness_m" yaml:"thickness_m"`
	Porosity       float64             `json:"porosity" yaml:"porosity"`
	ReservoirTempC float64             `json:"reservoir_temp_c" yaml:"reservoir_temp_c"`
	CutoffTempC    float64             `json:"cutoff_temp_c" yaml:"cutoff_temp_c"`
	SaturationCO2  float64             `json:"saturation_co2" yaml:"saturation_co2"`
	Constants      constants.Constants `json:"constants" yaml:"-"`
}

type Result struct {
	BulkVolumeM3 float64 `json:"bulk_volume_m3"`
	PoreVolumeM3 float64 `json:"pore_volume_m3"`
	DeltaTC      float64 `json:"delta_t_c"`
	HeatMJ       float64 `json:"heat_mj"`
	CO2Tonnes    float64 `json:"co2_tonnes"`
	Notes        string  `json:"notes"`
}

// Calculate runs geometry, thermal and storage for one homogeneous reservoir.
func Calculate(in Input) (Result, error) {
	geo, err := geometry.Calculate(geometry.Input{
		AreaM2:         in.AreaM2,
		ThicknessM:     in.ThicknessM,
		Porosity:       in.Porosity,
		ReservoirTempC: in.ReservoirTempC,
		CutoffTempC:    in.CutoffTempC,
	})
	if err != nil {
		return Result{}, err
	}
	st, err := storage.Calculate(storage.Input{
		PoreVolumeM3:  geo.PoreVolumeM3,
		SaturationCO2: in.SaturationCO2,
		DeltaTC:       geo.DeltaTC,
		Constants:     in.Constants,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		BulkVolumeM3: geo.BulkVolumeM3,
		PoreVolumeM3: geo.PoreVolumeM3,
		DeltaTC:      geo.DeltaTC,
		HeatMJ:       st.HeatMJ,
		CO2Tonnes:    st.CO2Tonnes,
		Notes:        "Volumetric estimate, single homogeneous reservoir.",
	}, nil
}

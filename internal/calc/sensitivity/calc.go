package sensitivity

import (
	"fmt"
	"math"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/reservoir"
)

type Parameter string

const (
	ParamPorosity   Parameter = "porosity"
	ParamArea       Parameter = "area"
	ParamThickness  Parameter = "thickness"
	ParamSaturation Parameter = "saturation"
)

// DefaultFractions is the ±10% sweep.
var DefaultFractions = []float64{-0.1, 0, 0.1}

type Input struct {
	Reservoir reservoir.Input `json:"reservoir"`
	Parameter Parameter       `json:"parameter"`
	Fractions []float64       `json:"fractions"`
}

type Case struct {
	Label        string  `json:"label"`
	Fraction     float64 `json:"fraction"`
	Value        float64 `json:"value"`
	PoreVolumeM3 float64 `json:"pore_volume_m3"`
	HeatMJ       float64 `json:"heat_mj"`
	CO2Tonnes    float64 `json:"co2_tonnes"`
}

type Result struct {
	Parameter Parameter `json:"parameter"`
	BaseValue float64   `json:"base_value"`
	Cases     []Case    `json:"cases"`
}

func (r Result) Labels() []string {
	out := make([]string, len(r.Cases))
	for i, c := range r.Cases {
		out[i] = c.Label
	}
	return out
}

func (r Result) Heat() []float64 {
	out := make([]float64, len(r.Cases))
	for i, c := range r.Cases {
		out[i] = c.HeatMJ
	}
	return out
}

func (r Result) CO2() []float64 {
	out := make([]float64, len(r.Cases))
	for i, c := range r.Cases {
		out[i] = c.CO2Tonnes
	}
	return out
}

func (p Parameter) symbol() string {
	switch p {
	case ParamArea:
		return "A"
	case ParamThickness:
		return "h"
	case ParamSaturation:
		return "S_CO2"
	default:
		return "φ"
	}
}

func (p Parameter) valid() bool {
	switch p {
	case ParamPorosity, ParamArea, ParamThickness, ParamSaturation:
		return true
	}
	return false
}

func (p Parameter) get(in reservoir.Input) float64 {
	switch p {
	case ParamArea:
		return in.AreaM2
	case ParamThickness:
		return in.ThicknessM
	case ParamSaturation:
		return in.SaturationCO2
	default:
		return in.Porosity
	}
}

func (p Parameter) set(in reservoir.Input, v float64) reservoir.Input {
	switch p {
	case ParamArea:
		in.AreaM2 = v
	case ParamThickness:
		in.ThicknessM = v
	case ParamSaturation:
		in.SaturationCO2 = v
	default:
		in.Porosity = v
	}
	return in
}

// Label names a case the way the charts show it, e.g. "Low φ (-10%)".
func Label(p Parameter, fraction float64) string {
	if fraction == 0 {
		return "Base case"
	}
	pct := fmt.Sprintf("%+g%%", math.Round(fraction*1000)/10)
	if fraction < 0 {
		return fmt.Sprintf("Low %s (%s)", p.symbol(), pct)
	}
	return fmt.Sprintf("High %s (%s)", p.symbol(), pct)
}

// Calculate re-runs the full reservoir calculation once per fraction, with
// the chosen parameter scaled by (1 + fraction). Cases share no state.
func Calculate(in Input) (Result, error) {
	if in.Parameter == "" {
		in.Parameter = ParamPorosity
	}
	if !in.Parameter.valid() {
		return Result{}, fmt.Errorf("%w: unknown parameter %q", calc.ErrInvalidInput, in.Parameter)
	}
	if len(in.Fractions) == 0 {
		in.Fractions = DefaultFractions
	}

	base := in.Parameter.get(in.Reservoir)
	out := Result{
		Parameter: in.Parameter,
		BaseValue: base,
		Cases:     make([]Case, 0, len(in.Fractions)),
	}
	for _, f := range in.Fractions {
		if err := calc.Finite("fraction", f); err != nil {
			return Result{}, err
		}
		if f <= -1 {
			return Result{}, calc.Invalid("fraction", f, "> -1")
		}
		value := base * (1 + f)
		res, err := reservoir.Calculate(in.Parameter.set(in.Reservoir, value))
		if err != nil {
			return Result{}, fmt.Errorf("case %s: %w", Label(in.Parameter, f), err)
		}
		out.Cases = append(out.Cases, Case{
			Label:        Label(in.Parameter, f),
			Fraction:     f,
			Value:        value,
			PoreVolumeM3: res.PoreVolumeM3,
			HeatMJ:       res.HeatMJ,
			CO2Tonnes:    res.CO2Tonnes,
		})
	}
	return out, nil
}

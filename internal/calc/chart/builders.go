package chart

import (
	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/sensitivity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func LayerHeat(r layers.Result) Chart {
	return Chart{
		Name:       "LayerHeat",
		Title:      "Geothermal Heat Storage per Layer",
		Categories: r.Names(),
		Primary:    Series{Name: "Heat Energy", Unit: "MJ", Values: r.Heat(), Color: ColorHeat},
	}
}

func LayerHeatVsCO2(r layers.Result) Chart {
	return Chart{
		Name:       "HeatVsCO2",
		Title:      "Geothermal Heat vs CO₂ Storage (Layer-based)",
		Categories: r.Names(),
		Primary:    Series{Name: "Heat", Unit: "MJ", Values: r.Heat(), Color: ColorHeat},
		Secondary:  &Series{Name: "CO₂", Unit: "tonnes", Values: r.CO2(), Color: ColorCO2},
	}
}

// Sensitivity labels heat in millions of MJ and CO2 as-is.
func Sensitivity(r sensitivity.Result) Chart {
	return Chart{
		Name:       "Sensitivity",
		Title:      "Sensitivity Analysis: Effect of " + cases.Title(language.English).String(string(r.Parameter)) + " on Heat & CO₂ Storage",
		Categories: r.Labels(),
		Primary: Series{
			Name: "Heat Storage", Unit: "MJ", Values: r.Heat(),
			Scale: 1e6, Labels: true, Color: ColorHeat,
		},
		Secondary: &Series{
			Name: "CO₂ Storage", Unit: "tonnes", Values: r.CO2(),
			Labels: true, Color: ColorCO2,
		},
	}
}

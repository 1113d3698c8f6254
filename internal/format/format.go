// Package format prints assessment results as console text.
package format

import (
	"fmt"
	"io"
	"strings"

	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/reservoir"
	"Geostore/internal/calc/sensitivity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var p = message.NewPrinter(language.English)

func Volume(v float64) string { return p.Sprintf("%.0f", v) }

func Amount(v float64) string { return p.Sprintf("%.2f", v) }

// SummaryLines are the single-reservoir report lines, without banners.
func SummaryLines(r reservoir.Result) []string {
	return []string{
		fmt.Sprintf("Reservoir volume : %s m³", Volume(r.BulkVolumeM3)),
		fmt.Sprintf("Pore volume      : %s m³", Volume(r.PoreVolumeM3)),
		fmt.Sprintf("Heat storage     : %s MJ", Amount(r.HeatMJ)),
		fmt.Sprintf("CO2 capacity     : %s tonnes", Amount(r.CO2Tonnes)),
	}
}

func Summary(w io.Writer, r reservoir.Result) {
	fmt.Fprintln(w, "========== Single Reservoir ==========")
	for _, line := range SummaryLines(r) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "======================================")
	fmt.Fprintln(w)
}

func Layers(w io.Writer, r layers.Result) {
	fmt.Fprintln(w, "============== Layers ================")
	fmt.Fprintf(w, "%-12s %16s %6s %22s %18s\n", "Layer", "Pore vol (m³)", "S_CO2", "Heat (MJ)", "CO2 (tonnes)")
	for _, l := range r.Layers {
		fmt.Fprintf(w, "%-12s %16s %6.2f %22s %18s\n",
			l.Name, Volume(l.PoreVolumeM3), l.SaturationCO2, Amount(l.HeatMJ), Amount(l.CO2Tonnes))
	}
	fmt.Fprintln(w, strings.Repeat("=", 38))
	fmt.Fprintln(w)
}

func Sensitivity(w io.Writer, r sensitivity.Result) {
	fmt.Fprintf(w, "======= Sensitivity (%s) =======\n", r.Parameter)
	fmt.Fprintf(w, "%-16s %12s %16s %22s %18s\n", "Case", "Value", "Pore vol (m³)", "Heat (MJ)", "CO2 (tonnes)")
	for _, c := range r.Cases {
		fmt.Fprintf(w, "%-16s %12s %16s %22s %18s\n",
			c.Label, fmt.Sprintf("%.4g", c.Value), Volume(c.PoreVolumeM3), Amount(c.HeatMJ), Amount(c.CO2Tonnes))
	}
	fmt.Fprintln(w, strings.Repeat("=", 38))
	fmt.Fprintln(w)
}

package report

import (
	"fmt"
	"io"
	"time"

	"Geostore/internal/calc/chart"
	"Geostore/internal/format"
	"Geostore/internal/scenario"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project  string            `json:"project"`
	Author   string            `json:"author"`
	Title    string            `json:"title"`
	Notes    string            `json:"notes"`
	Scenario scenario.Scenario `json:"scenario"`
}

// Charts returns the per-layer heat, heat vs CO2 and sensitivity charts.
func Charts(a scenario.Assessment) []chart.Chart {
	return []chart.Chart{
		chart.LayerHeat(a.Layers),
		chart.LayerHeatVsCO2(a.Layers),
		chart.Sensitivity(a.Sensitivity),
	}
}

// PDF writes the summary page followed by one page per chart. It returns
// the report ID printed in the header.
func PDF(w io.Writer, in Input, a scenario.Assessment) (string, error) {
	if in.Title == "" {
		in.Title = "Reservoir Heat & CO2 Storage Assessment"
	}
	id := uuid.NewString()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Report ID: %s", id))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Single Reservoir")
	pdf.Ln(8)
	pdf.SetFont("Courier", "", 10)
	for _, line := range format.SummaryLines(a.Reservoir) {
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Layers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{35, 40, 20, 45, 40}
	for i, h := range []string{"Layer", "Pore volume (m³)", "S_CO2", "Heat (MJ)", "CO2 (tonnes)"} {
		pdf.CellFormat(widths[i], 6, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range a.Layers.Layers {
		pdf.CellFormat(widths[0], 6, tr(l.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, format.Volume(l.PoreVolumeM3), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", l.SaturationCO2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, format.Amount(l.HeatMJ), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, format.Amount(l.CO2Tonnes), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if in.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}

	for _, c := range Charts(a) {
		pdf.AddPage()
		if err := chart.DrawPDF(pdf, c, 15, 20, 180, 110); err != nil {
			return "", fmt.Errorf("chart %s: %w", c.Name, err)
		}
	}
	if err := pdf.Output(w); err != nil {
		return "", err
	}
	return id, nil
}

func Workbook(w io.Writer, a scenario.Assessment) error {
	return chart.WriteWorkbook(w, Charts(a)...)
}

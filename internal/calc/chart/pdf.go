package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Core PDF fonts are cp1252; glyphs outside it are spelled out.
var pdfText = strings.NewReplacer("φ", "phi", "₂", "2")

const (
	groupFill = 0.7
	tickCount = 5
)

func rgb(hex string) (int, int, int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, v)
	}
	if m == 0 {
		return 1
	}
	return m * 1.1
}

// DrawPDF draws c into the box (x, y, w, h) of the current page. The
// secondary series gets its own right-hand axis.
func DrawPDF(pdf *gofpdf.Fpdf, c Chart, x, y, w, h float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 6, text(c.Title), "", 1, "C", false, 0, "")

	series := []Series{c.Primary}
	if c.Secondary != nil {
		series = append(series, *c.Secondary)
	}

	// legend
	pdf.SetFont("Helvetica", "", 8)
	lx := x + 20
	for _, s := range series {
		r, g, b := rgb(s.Color)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(lx, y+8, 3, 3, "F")
		label := text(header(s))
		pdf.Text(lx+4, y+10.6, label)
		lx += pdf.GetStringWidth(label) + 12
	}

	px, py := x+20, y+14
	pw, ph := w-40, h-26
	maxima := make([]float64, len(series))
	for i, s := range series {
		maxima[i] = maxOf(s.Values)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.SetFont("Helvetica", "", 7)
	for t := 0; t <= tickCount; t++ {
		frac := float64(t) / tickCount
		ty := py + ph - frac*ph
		if t > 0 {
			pdf.Line(px, ty, px+pw, ty)
		}
		left := FormatValue(maxima[0]*frac, c.Primary.Scale)
		pdf.Text(px-1-pdf.GetStringWidth(left), ty+1, left)
		if c.Secondary != nil {
			pdf.Text(px+pw+1, ty+1, FormatValue(maxima[1]*frac, c.Secondary.Scale))
		}
	}
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(px, py, px, py+ph)
	pdf.Line(px, py+ph, px+pw, py+ph)
	if c.Secondary != nil {
		pdf.Line(px+pw, py, px+pw, py+ph)
	}

	n := len(c.Categories)
	gw := pw / float64(n)
	bw := gw * groupFill / float64(len(series))
	for i, cat := range c.Categories {
		gx := px + float64(i)*gw + gw*(1-groupFill)/2
		for k, s := range series {
			v := math.Max(s.Values[i], 0)
			bh := v / maxima[k] * ph
			bx := gx + float64(k)*bw
			r, g, b := rgb(s.Color)
			pdf.SetFillColor(r, g, b)
			pdf.Rect(bx, py+ph-bh, bw, bh, "FD")
			if s.Labels {
				label := FormatValue(s.Values[i], s.Scale)
				pdf.Text(bx+(bw-pdf.GetStringWidth(label))/2, py+ph-bh-1, label)
			}
		}
		pdf.SetXY(px+float64(i)*gw, py+ph+1)
		pdf.CellFormat(gw, 5, text(cat), "", 0, "C", false, 0, "")
	}
	return pdf.Error()
}

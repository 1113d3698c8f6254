// Package chart turns computed series into bar charts. It never feeds
// values back into the calculators.
package chart

import (
	"fmt"

	calc "Geostore/internal/calc"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

type Series struct {
	Name   string    `json:"name"`
	Unit   string    `json:"unit"`
	Values []float64 `json:"values"`
	// Scale divides values before they are labelled; 0 and 1 mean as-is.
	Scale  float64 `json:"scale,omitempty"`
	Labels bool    `json:"labels,omitempty"`
	Color  string  `json:"color"`
}

type Chart struct {
	// Name is a short identifier, used as the workbook sheet name.
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Primary    Series   `json:"primary"`
	Secondary  *Series  `json:"secondary,omitempty"`
}

const (
	ColorHeat = "E74C3C"
	ColorCO2  = "27AE60"
)

func (s Series) Axis() string {
	if s.Unit == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Unit)
}

func (s Series) scaled(i int) float64 {
	if s.Scale == 0 {
		return s.Values[i]
	}
	return s.Values[i] / s.Scale
}

func (c Chart) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: chart %q has no categories", calc.ErrInvalidInput, c.Name)
	}
	if len(c.Primary.Values) != len(c.Categories) {
		return fmt.Errorf("%w: chart %q: %d categories, %d %s values",
			calc.ErrInvalidInput, c.Name, len(c.Categories), len(c.Primary.Values), c.Primary.Name)
	}
	if c.Secondary != nil && len(c.Secondary.Values) != len(c.Categories) {
		return fmt.Errorf("%w: chart %q: %d categories, %d %s values",
			calc.ErrInvalidInput, c.Name, len(c.Categories), len(c.Secondary.Values), c.Secondary.Name)
	}
	return nil
}

// FormatValue renders v/scale with thousands separators and one decimal.
func FormatValue(v, scale float64) string {
	if scale != 0 {
		v /= scale
	}
	return printer.Sprintf("%.1f", v)
}

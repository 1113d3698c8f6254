package chart

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook puts each chart on its own sheet: a data table in columns
// A..C and a native clustered-column chart to the right of it.
func WriteWorkbook(w io.Writer, charts ...Chart) error {
	if len(charts) == 0 {
		return fmt.Errorf("no charts")
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, c := range charts {
		if err := c.Validate(); err != nil {
			return err
		}
		sheet := c.Name
		if sheet == "" {
			sheet = fmt.Sprintf("Chart%d", i+1)
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeTable(f, sheet, c); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if err := f.AddChart(sheet, "E2", barChart(sheet, c, 2, c.Primary, false), combo(sheet, c)...); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

var scaleNames = map[float64]string{1e3: "thousand", 1e6: "million", 1e9: "billion"}

// header names the column after the unit the scaled values are in.
func header(s Series) string {
	if s.Scale == 0 || s.Scale == 1 {
		return s.Axis()
	}
	if name, ok := scaleNames[s.Scale]; ok {
		return fmt.Sprintf("%s (%s %s)", s.Name, name, s.Unit)
	}
	return fmt.Sprintf("%s (%s / %s)", s.Name, s.Unit, FormatValue(s.Scale, 1))
}

func writeTable(f *excelize.File, sheet string, c Chart) error {
	head := []interface{}{"Category", header(c.Primary)}
	if c.Secondary != nil {
		head = append(head, header(*c.Secondary))
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	for i, cat := range c.Categories {
		row := []interface{}{cat, c.Primary.scaled(i)}
		if c.Secondary != nil {
			row = append(row, c.Secondary.scaled(i))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func barChart(sheet string, c Chart, col int, s Series, secondary bool) *excelize.Chart {
	last := len(c.Categories) + 1
	colName, _ := excelize.ColumnNumberToName(col)
	bar := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", sheet, colName),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, colName, colName, last),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{s.Color}, Pattern: 1},
		}},
		PlotArea: excelize.ChartPlotArea{ShowVal: s.Labels},
		YAxis: excelize.ChartAxis{
			Secondary:      secondary,
			MajorGridLines: !secondary,
			Title:          []excelize.RichTextRun{{Text: header(s)}},
		},
	}
	if !secondary {
		bar.Title = []excelize.RichTextRun{{Text: c.Title}}
		bar.Legend = excelize.ChartLegend{Position: "top"}
		bar.Dimension = excelize.ChartDimension{Width: 640, Height: 360}
	}
	return bar
}

func combo(sheet string, c Chart) []*excelize.Chart {
	if c.Secondary == nil {
		return nil
	}
	return []*excelize.Chart{barChart(sheet, c, 3, *c.Secondary, true)}
}

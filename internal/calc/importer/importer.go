package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Geostore/internal/calc/layers"

	"github.com/xuri/excelize/v2"
)

var ErrNoRows = errors.New("no usable layer rows")

// ReadLayers reads the first sheet of a workbook laid out as
// name, pore_volume_m3, saturation_co2 under one header row.
// Short or non-numeric rows are skipped.
func ReadLayers(r io.Reader) ([]layers.Layer, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	var out []layers.Layer
	for i := 1; i < len(rows); i++ {
		layer, err := parseLayerRow(rows[i])
		if err != nil {
			continue
		}
		out = append(out, layer)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

func parseLayerRow(row []string) (layers.Layer, error) {
	if len(row) < 3 {
		return layers.Layer{}, fmt.Errorf("bad row")
	}
	volume, err := toFloat(row[1])
	if err != nil {
		return layers.Layer{}, err
	}
	saturation, err := toFloat(row[2])
	if err != nil {
		return layers.Layer{}, err
	}
	return layers.Layer{
		Name:          strings.TrimSpace(row[0]),
		PoreVolumeM3:  volume,
		SaturationCO2: saturation,
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// WriteTemplate writes a workbook in the layout ReadLayers expects.
func WriteTemplate(w io.Writer, rows []layers.Layer) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "pore_volume_m3", "saturation_co2"}); err != nil {
		return err
	}
	for i, l := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{l.Name, l.PoreVolumeM3, l.SaturationCO2}); err != nil {
			return err
		}
	}
	return f.Write(w)
}

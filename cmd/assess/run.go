package main

import (
	"fmt"
	"io"
	"os"

	"Geostore/internal/calc/importer"
	"Geostore/internal/calc/report"
	"Geostore/internal/calc/sensitivity"
	"Geostore/internal/format"
	"Geostore/internal/scenario"

	"go.uber.org/zap"
)

func loadScenario(path string) (scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	logger.Debug("loading scenario", zap.String("path", path))
	return scenario.Load(path)
}

func runAssess(w io.Writer, opts runOptions) error {
	s, err := loadScenario(opts.scenario)
	if err != nil {
		return err
	}
	if opts.layers != "" {
		f, err := os.Open(opts.layers)
		if err != nil {
			return err
		}
		rows, err := importer.ReadLayers(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.layers, err)
		}
		logger.Debug("imported layers", zap.String("path", opts.layers), zap.Int("count", len(rows)))
		s.Layers = rows
	}

	a, err := s.Assess()
	if err != nil {
		return err
	}
	format.Summary(w, a.Reservoir)
	format.Layers(w, a.Layers)
	format.Sensitivity(w, a.Sensitivity)

	if opts.xlsx != "" {
		if err := writeFile(opts.xlsx, func(out io.Writer) error {
			return report.Workbook(out, a)
		}); err != nil {
			return err
		}
		logger.Info("wrote charts workbook", zap.String("path", opts.xlsx))
	}
	if opts.pdf != "" {
		var id string
		if err := writeFile(opts.pdf, func(out io.Writer) error {
			var err error
			id, err = report.PDF(out, report.Input{Project: opts.project, Author: opts.author}, a)
			return err
		}); err != nil {
			return err
		}
		logger.Info("wrote report", zap.String("path", opts.pdf), zap.String("report_id", id))
	}
	return nil
}

func runSweep(w io.Writer, path string, param sensitivity.Parameter, fractions []float64) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	in := s.SensitivityInput()
	if param != "" {
		in.Parameter = param
	}
	if len(fractions) > 0 {
		in.Fractions = fractions
	}
	res, err := sensitivity.Calculate(in)
	if err != nil {
		return err
	}
	format.Sensitivity(w, res)
	return nil
}

func writeTemplate(path string) error {
	return writeFile(path, func(out io.Writer) error {
		return importer.WriteTemplate(out, scenario.Default().Layers)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

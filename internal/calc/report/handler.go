package report

import (
	"bytes"
	"net/http"

	calc "Geostore/internal/calc"
	"Geostore/internal/scenario"

	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (Input, scenario.Assessment, bool) {
	input := Input{Scenario: scenario.Base()}
	if !calc.DecodeJSON(w, r, &input) {
		return Input{}, scenario.Assessment{}, false
	}
	input.Scenario = input.Scenario.Complete()
	a, err := input.Scenario.Assess()
	if err != nil {
		calc.WriteError(w, h.Log, "report", err)
		return Input{}, scenario.Assessment{}, false
	}
	return input, a, true
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	input, a, ok := h.decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	id, err := PDF(&buf, input, a)
	if err != nil {
		calc.WriteError(w, h.Log, "report", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Header().Set("X-Report-ID", id)
	w.Write(buf.Bytes())
}

func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	_, a, ok := h.decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := Workbook(&buf, a); err != nil {
		calc.WriteError(w, h.Log, "report", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"charts.xlsx\"")
	w.Write(buf.Bytes())
}

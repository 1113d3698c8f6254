package importer

import (
	"fmt"
	"net/http"
	"strconv"

	calc "Geostore/internal/calc"
	"Geostore/internal/calc/constants"
	"Geostore/internal/calc/layers"

	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Log *zap.Logger
}

type LayersImportResult struct {
	Count  int           `json:"count"`
	Result layers.Result `json:"result"`
}

// Layers takes a multipart "file" workbook and a "delta_t_c" form value.
func (h *Handler) Layers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	deltaT, err := strconv.ParseFloat(r.FormValue("delta_t_c"), 64)
	if err != nil {
		http.Error(w, "delta_t_c required", http.StatusBadRequest)
		return
	}

	rows, err := ReadLayers(file)
	if err != nil {
		calc.WriteError(w, h.Log, "importer", fmt.Errorf("%w: file: %v", calc.ErrInvalidInput, err))
		return
	}
	res, err := layers.Calculate(layers.Input{Layers: rows, DeltaTC: deltaT, Constants: constants.Default()})
	if err != nil {
		calc.WriteError(w, h.Log, "importer", err)
		return
	}
	calc.WriteJSON(w, h.Log, "importer", LayersImportResult{Count: len(res.Layers), Result: res})
}

package storage

import (
	"net/http"

	calc "Geostore/internal/calc"

	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		calc.WriteError(w, h.Log, "storage", err)
		return
	}
	calc.WriteJSON(w, h.Log, "storage", res)
}

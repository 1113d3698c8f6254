package calc

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}

// WriteJSON encodes v before touching w, so an encoding failure still
// reaches the client as a 500.
func WriteJSON(w http.ResponseWriter, log *zap.Logger, tool string, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		WriteError(w, log, tool, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// WriteError answers 400 for input problems and 500 for anything else.
func WriteError(w http.ResponseWriter, log *zap.Logger, tool string, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	if errors.Is(err, ErrInvalidInput) {
		log.Debug("rejected input", zap.String("tool", tool), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Error("calculation failed", zap.String("tool", tool), zap.Error(err))
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}

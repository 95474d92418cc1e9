package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/logismart/logismart/internal/ledger"
	"github.com/logismart/logismart/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// ledgerError maps ledger errors onto HTTP statuses.
func ledgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, ledger.ErrValidation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrFormat):
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, store.ErrStorageFull):
		jsonError(w, http.StatusInsufficientStorage, "storage quota exceeded")
	default:
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

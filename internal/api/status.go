package api

import (
	"net/http"

	"github.com/logismart/logismart/internal/ledger"
)

// StatusHandler exposes persistence health for the client's warning banner.
type StatusHandler struct {
	Ledger *ledger.Ledger
}

// Get handles GET /api/status.
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Ledger.Status())
}

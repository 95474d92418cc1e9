package api

import (
	"net/http"

	"github.com/logismart/logismart/internal/ledger"
	"github.com/logismart/logismart/internal/model"
)

// TransactionsHandler handles stock movement endpoints.
type TransactionsHandler struct {
	Ledger *ledger.Ledger
}

type recordRequest struct {
	ItemID   string `json:"item_id"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// List handles GET /api/transactions. The log is most-recent-first.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	txs := h.Ledger.Transactions()
	if txs == nil {
		txs = []model.Transaction{}
	}
	jsonResponse(w, http.StatusOK, txs)
}

// Record handles POST /api/transactions.
func (h *TransactionsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := GetClaims(r.Context())
	tx, err := h.Ledger.Record(r.Context(), req.ItemID, req.Type, req.Quantity, claims.Name, req.Notes)
	if err != nil {
		ledgerError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, tx)
}

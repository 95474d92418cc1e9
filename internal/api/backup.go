package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/logismart/logismart/internal/ledger"
)

// maxBackupSize bounds import uploads; inline images dominate the payload.
const maxBackupSize = 32 << 20

// BackupHandler handles bulk export and restore of the full dataset.
type BackupHandler struct {
	Ledger *ledger.Ledger
}

// Export handles GET /api/backup: a snapshot download named with the current
// date.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	backup := h.Ledger.Export()

	filename := fmt.Sprintf("logismart_backup_%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to encode backup")
	}
}

// Import handles POST /api/backup. Restoring overwrites the entire dataset, so
// the caller must acknowledge with ?confirm=true; without it nothing changes.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusConflict, "restore overwrites all current data; repeat with confirm=true")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBackupSize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read backup document")
		return
	}

	if err := h.Ledger.Import(r.Context(), raw); err != nil {
		ledgerError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "database restored"})
}

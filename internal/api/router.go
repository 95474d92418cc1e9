package api

import (
	"net/http"

	"github.com/logismart/logismart/internal/auth"
	"github.com/logismart/logismart/internal/ledger"
	"github.com/logismart/logismart/internal/model"
	"github.com/logismart/logismart/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(l *ledger.Ledger, docs *store.Documents, gate *auth.Gate, jwtSecret string, assistant Assistant) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Gate: gate, Docs: docs, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Ledger: l}
	txHandler := &TransactionsHandler{Ledger: l}
	backupHandler := &BackupHandler{Ledger: l}
	assistHandler := &AssistHandler{Assistant: assistant}
	statusHandler := &StatusHandler{Ledger: l}

	authMW := AuthMiddleware(jwtSecret)
	manageItems := RequireOp(model.OpManageItems)
	recordTx := RequireOp(model.OpRecordTx)
	approve := RequireOp(model.OpApprove)
	remove := RequireOp(model.OpDelete)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/status", authMW(http.HandlerFunc(statusHandler.Get)))

	// Items: read (all roles), create/edit (inputter), approve (maker/checker),
	// delete (checker).
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(manageItems(http.HandlerFunc(itemsHandler.Create))))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(manageItems(http.HandlerFunc(itemsHandler.Update))))
	mux.Handle("DELETE /api/items/{id}", authMW(remove(http.HandlerFunc(itemsHandler.Delete))))
	mux.Handle("POST /api/items/{id}/approve", authMW(approve(http.HandlerFunc(itemsHandler.Approve))))

	// Transactions: read (all roles), record (inputter).
	mux.Handle("GET /api/transactions", authMW(http.HandlerFunc(txHandler.List)))
	mux.Handle("POST /api/transactions", authMW(recordTx(http.HandlerFunc(txHandler.Record))))

	// Backup: export and restore (all roles, restore requires confirmation).
	mux.Handle("GET /api/backup", authMW(http.HandlerFunc(backupHandler.Export)))
	mux.Handle("POST /api/backup", authMW(http.HandlerFunc(backupHandler.Import)))

	// AI-assisted tools (all roles).
	mux.Handle("POST /api/assist/image", authMW(http.HandlerFunc(assistHandler.EditImage)))
	mux.Handle("POST /api/assist/insights", authMW(http.HandlerFunc(assistHandler.Insights)))

	return mux
}

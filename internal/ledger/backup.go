package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/logismart/logismart/internal/model"
)

// ErrFormat reports a backup document that cannot be accepted. The current
// state is left untouched.
var ErrFormat = errors.New("invalid backup format")

// BackupVersion identifies the export document layout.
const BackupVersion = "1.3"

// Backup is the export document: a full snapshot of the item collection and
// the transaction log.
type Backup struct {
	Items        []model.Item        `json:"items"`
	Transactions []model.Transaction `json:"transactions"`
	ExportedAt   time.Time           `json:"exportedAt"`
	Version      string              `json:"version"`
}

// Export returns a snapshot of the full ledger state. It has no side effects
// beyond stamping the export time.
func (l *Ledger) Export() Backup {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := Backup{
		Items:        make([]model.Item, len(l.items)),
		Transactions: make([]model.Transaction, len(l.txs)),
		ExportedAt:   time.Now(),
		Version:      BackupVersion,
	}
	copy(b.Items, l.items)
	copy(b.Transactions, l.txs)
	return b
}

// Import replaces the entire ledger state with the given backup document.
// The document must carry an `items` array; anything else is rejected with
// ErrFormat and no state change. Transactions are replaced when present and
// cleared otherwise, since a stale log would reference the old item set.
func (l *Ledger) Import(ctx context.Context, raw []byte) error {
	var probe struct {
		Items        json.RawMessage `json:"items"`
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(probe.Items) == 0 || string(probe.Items) == "null" {
		return fmt.Errorf("%w: missing items", ErrFormat)
	}

	var items []model.Item
	if err := json.Unmarshal(probe.Items, &items); err != nil {
		return fmt.Errorf("%w: items is not an array of items", ErrFormat)
	}

	var txs []model.Transaction
	if len(probe.Transactions) > 0 {
		if err := json.Unmarshal(probe.Transactions, &txs); err != nil {
			return fmt.Errorf("%w: transactions is not an array of transactions", ErrFormat)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = items
	l.txs = txs

	// A restore exists to persist; unlike ordinary mutations, a quota failure
	// here is reported to the caller. The in-memory state is replaced either way.
	if err := l.persistItems(ctx); err != nil {
		return err
	}
	return l.persistTransactions(ctx)
}

// Package ledger owns the in-memory inventory state: the item collection with
// its approval workflow and the transaction log. Every mutation is mirrored to
// the document store; a failed mirror keeps the in-memory state and raises the
// storage-full flag instead of failing the operation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/logismart/logismart/internal/model"
	"github.com/logismart/logismart/internal/store"
)

var (
	// ErrNotFound reports that no item matches the given id.
	ErrNotFound = errors.New("item not found")
	// ErrValidation reports rejected user input. No state is changed.
	ErrValidation = errors.New("validation failed")
)

// Ledger is the single owner of inventory state. All methods are safe for
// concurrent use; mutations are serialized by one mutex so the quantity and
// approval invariants hold without finer-grained coordination.
type Ledger struct {
	mu   sync.Mutex
	docs *store.Documents

	items []model.Item
	txs   []model.Transaction // most-recent-first

	lastSaved   time.Time
	storageFull bool
}

// Status describes the persistence health surfaced to the client as a banner.
type Status struct {
	LastSaved   time.Time `json:"last_saved"`
	StorageFull bool      `json:"storage_full"`
}

// Open loads persisted state into a new ledger. Missing or corrupt documents
// fall back to defaults inside the store, so Open always yields a usable ledger.
func Open(ctx context.Context, docs *store.Documents) *Ledger {
	return &Ledger{
		docs:  docs,
		items: docs.LoadItems(ctx),
		txs:   docs.LoadTransactions(ctx),
	}
}

// Items returns a snapshot of all items in insertion order.
func (l *Ledger) Items() []model.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the item with the given id.
func (l *Ledger) Item(id string) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexOf(id); i >= 0 {
		return l.items[i], nil
	}
	return model.Item{}, ErrNotFound
}

// Transactions returns a snapshot of the log, most recent first.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Status reports the persistence health.
func (l *Ledger) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{LastSaved: l.lastSaved, StorageFull: l.storageFull}
}

// Submit creates or edits an item. New items get an id and an initial status
// derived from the acting role: approver roles are pre-authorized and start
// APPROVED, everything else starts PENDING. Edits preserve the existing status
// and creator; only the explicit approve operation moves status afterwards.
func (l *Ledger) Submit(ctx context.Context, item model.Item, actingRole string, isEdit bool) (model.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return model.Item{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.Quantity < 0 {
		return model.Item{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if item.Price < 0 {
		return model.Item{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item.LastUpdated = time.Now()

	if isEdit {
		i := l.indexOf(item.ID)
		if i < 0 {
			return model.Item{}, ErrNotFound
		}
		item.Status = l.items[i].Status
		item.CreatedBy = l.items[i].CreatedBy
		l.items[i] = item
	} else {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if model.AutoApproves(actingRole) {
			item.Status = model.StatusApproved
		} else {
			item.Status = model.StatusPending
		}
		l.items = append(l.items, item)
	}

	l.persistItems(ctx)
	return item, nil
}

// Approve transitions a PENDING item to APPROVED. Approving an already
// approved item is a no-op; the transition never reverses.
func (l *Ledger) Approve(ctx context.Context, id string) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return model.Item{}, ErrNotFound
	}
	if l.items[i].Status == model.StatusApproved {
		return l.items[i], nil
	}

	l.items[i].Status = model.StatusApproved
	l.items[i].LastUpdated = time.Now()
	l.persistItems(ctx)
	return l.items[i], nil
}

// Remove deletes an item and cascades to every transaction referencing it.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)

	kept := l.txs[:0]
	for _, tx := range l.txs {
		if tx.ItemID != id {
			kept = append(kept, tx)
		}
	}
	l.txs = kept

	l.persistItems(ctx)
	l.persistTransactions(ctx)
	return nil
}

// Record validates and records a stock movement, applying the quantity delta to
// the referenced item in the same critical section so the log and the ledger
// never disagree. The item must be APPROVED; PENDING items cannot move stock.
func (l *Ledger) Record(ctx context.Context, itemID, txType string, quantity int, actingUser, notes string) (model.Transaction, error) {
	if quantity <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !model.ValidTxType(txType) {
		return model.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, txType)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(itemID)
	if i < 0 {
		return model.Transaction{}, ErrNotFound
	}
	if l.items[i].Status != model.StatusApproved {
		return model.Transaction{}, fmt.Errorf("%w: item is pending approval", ErrValidation)
	}

	tx := model.Transaction{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		ItemName: l.items[i].Name,
		Type:     txType,
		Quantity: quantity,
		Date:     time.Now(),
		User:     actingUser,
		Notes:    notes,
	}

	l.txs = append([]model.Transaction{tx}, l.txs...)
	l.applyTransaction(i, tx)

	l.persistTransactions(ctx)
	l.persistItems(ctx)
	return tx, nil
}

// applyTransaction adjusts the item's quantity by the movement delta, floored
// at zero, and refreshes its last-updated timestamp. Callers hold the mutex.
func (l *Ledger) applyTransaction(i int, tx model.Transaction) {
	delta := tx.Quantity
	if tx.Type == model.TxOut {
		delta = -delta
	}
	qty := l.items[i].Quantity + delta
	if qty < 0 {
		qty = 0
	}
	l.items[i].Quantity = qty
	l.items[i].LastUpdated = tx.Date
}

// indexOf returns the position of the item with the given id, or -1. Callers
// hold the mutex.
func (l *Ledger) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistItems mirrors the item collection to storage. A quota failure keeps
// the in-memory state and flips the storage-full flag; the write is not
// retried. Callers hold the mutex.
func (l *Ledger) persistItems(ctx context.Context) error {
	if err := l.docs.SaveItems(ctx, l.items); err != nil {
		l.noteSaveError("items", err)
		return err
	}
	l.noteSaved()
	return nil
}

// persistTransactions mirrors the transaction log to storage. Callers hold the
// mutex.
func (l *Ledger) persistTransactions(ctx context.Context) error {
	if err := l.docs.SaveTransactions(ctx, l.txs); err != nil {
		l.noteSaveError("transactions", err)
		return err
	}
	l.noteSaved()
	return nil
}

func (l *Ledger) noteSaved() {
	l.lastSaved = time.Now()
	l.storageFull = false
}

func (l *Ledger) noteSaveError(doc string, err error) {
	if errors.Is(err, store.ErrStorageFull) {
		l.storageFull = true
		slog.Warn("storage quota exceeded, state kept in memory only", "document", doc)
		return
	}
	slog.Error("failed to persist document", "document", doc, "error", err)
}

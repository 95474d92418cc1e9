package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/logismart/logismart/internal/model"
)

// Document keys.
const (
	KeyItems        = "items"
	KeyTransactions = "transactions"
	KeySession      = "session"
)

// SeedItems returns the initial dataset used when the items document is absent
// or unreadable, so the application never starts empty.
func SeedItems() []model.Item {
	return []model.Item{{
		ID:           "1",
		Name:         "AC",
		Brand:        "Samsung",
		SerialNumber: "SN-AC-00192",
		Category:     model.CategoryAsset,
		Quantity:     15,
		Unit:         "pcs",
		MinThreshold: 5,
		RecordDate:   time.Now().Format("2006-01-02"),
		Price:        4500000,
		LastUpdated:  time.Now(),
		Status:       model.StatusApproved,
		CreatedBy:    "SYSTEM",
	}}
}

// LoadItems reads the items document. A missing or corrupt document falls back
// to the seed dataset with a logged warning; load never fails the caller.
func (d *Documents) LoadItems(ctx context.Context) []model.Item {
	raw, err := d.Get(ctx, KeyItems)
	if err != nil {
		slog.Warn("failed to read items document, using seed data", "error", err)
		return SeedItems()
	}
	if raw == nil {
		return SeedItems()
	}

	var items []model.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("items document is corrupt, using seed data", "error", err)
		return SeedItems()
	}
	return items
}

// SaveItems writes the items document.
func (d *Documents) SaveItems(ctx context.Context, items []model.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return d.Put(ctx, KeyItems, raw)
}

// LoadTransactions reads the transaction log. A missing or corrupt document
// falls back to an empty log with a logged warning.
func (d *Documents) LoadTransactions(ctx context.Context) []model.Transaction {
	raw, err := d.Get(ctx, KeyTransactions)
	if err != nil || raw == nil {
		if err != nil {
			slog.Warn("failed to read transactions document, starting empty", "error", err)
		}
		return nil
	}

	var txs []model.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		slog.Warn("transactions document is corrupt, starting empty", "error", err)
		return nil
	}
	return txs
}

// SaveTransactions writes the transaction log document.
func (d *Documents) SaveTransactions(ctx context.Context, txs []model.Transaction) error {
	raw, err := json.Marshal(txs)
	if err != nil {
		return err
	}
	return d.Put(ctx, KeyTransactions, raw)
}

// LoadSession returns the persisted session profile, or nil when no session is
// active or the document is unreadable.
func (d *Documents) LoadSession(ctx context.Context) *model.UserProfile {
	raw, err := d.Get(ctx, KeySession)
	if err != nil || raw == nil {
		return nil
	}

	var profile model.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		slog.Warn("session document is corrupt, clearing", "error", err)
		return nil
	}
	return &profile
}

// SaveSession persists the active session profile.
func (d *Documents) SaveSession(ctx context.Context, profile *model.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return d.Put(ctx, KeySession, raw)
}

// ClearSession removes the persisted session.
func (d *Documents) ClearSession(ctx context.Context) error {
	return d.Delete(ctx, KeySession)
}

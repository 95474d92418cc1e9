package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrStorageFull is returned by Put when a write would push the store past its
// byte quota. The previously persisted value for the key is left intact.
var ErrStorageFull = errors.New("storage quota exceeded")

// DefaultQuota is the default storage capacity in bytes. It mirrors the sort of
// limit browser-local storage imposes and is mostly consumed by inline images.
const DefaultQuota = 5 << 20

// Documents is a quota-bounded store of named JSON documents backed by SQLite.
// The whole application state is three documents: items, transactions, session.
type Documents struct {
	db    *sql.DB
	quota int64
}

// NewDocuments creates a document store. A quota of 0 means unlimited.
func NewDocuments(db *sql.DB, quota int64) *Documents {
	return &Documents{db: db, quota: quota}
}

// Get returns the document stored under key, or nil if absent.
func (d *Documents) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := d.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting document %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous document. It fails with
// ErrStorageFull when the write would exceed the quota, without touching the
// last successfully persisted value.
func (d *Documents) Put(ctx context.Context, key string, value []byte) error {
	if d.quota > 0 {
		var others int64
		err := d.db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(value)), 0) FROM documents WHERE key != ?`, key,
		).Scan(&others)
		if err != nil {
			return fmt.Errorf("checking stored size: %w", err)
		}
		if others+int64(len(value)) > d.quota {
			return fmt.Errorf("putting document %q: %w", key, ErrStorageFull)
		}
	}

	_, err := d.db.ExecContext(ctx,
		`INSERT INTO documents (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("putting document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Deleting an absent key is not
// an error.
func (d *Documents) Delete(ctx context.Context, key string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", key, err)
	}
	return nil
}

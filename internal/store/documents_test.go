package store

import (
	"context"
	"errors"
	"testing"

	"github.com/logismart/logismart/internal/db"
	"github.com/logismart/logismart/internal/model"
)

func TestPutGetDelete(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 0)
	ctx := context.Background()

	if err := docs.Put(ctx, "greeting", []byte(`"hello"`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := docs.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `"hello"` {
		t.Errorf("expected %q, got %q", `"hello"`, string(got))
	}

	if err := docs.Delete(ctx, "greeting"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err = docs.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %q", string(got))
	}
}

func TestGetAbsentKey(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 0)

	got, err := docs.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent key, got %q", string(got))
	}
}

func TestPutQuotaExceeded(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 16)
	ctx := context.Background()

	if err := docs.Put(ctx, "small", []byte("12345678")); err != nil {
		t.Fatalf("Put within quota: %v", err)
	}

	err := docs.Put(ctx, "big", make([]byte, 32))
	if !errors.Is(err, ErrStorageFull) {
		t.Fatalf("expected ErrStorageFull, got %v", err)
	}

	// The failed write must not corrupt existing documents.
	got, _ := docs.Get(ctx, "small")
	if string(got) != "12345678" {
		t.Errorf("existing document changed after failed write: %q", string(got))
	}
	got, _ = docs.Get(ctx, "big")
	if got != nil {
		t.Errorf("rejected document should not be stored, got %q", string(got))
	}
}

func TestPutQuotaExcludesReplacedValue(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 16)
	ctx := context.Background()

	if err := docs.Put(ctx, "doc", make([]byte, 12)); err != nil {
		t.Fatalf("initial Put: %v", err)
	}

	// Replacing a document only counts the new size against the quota.
	if err := docs.Put(ctx, "doc", make([]byte, 14)); err != nil {
		t.Fatalf("replacement Put should fit: %v", err)
	}
}

func TestLoadItemsFallsBackToSeed(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 0)
	ctx := context.Background()

	// Absent document: seed.
	items := docs.LoadItems(ctx)
	if len(items) == 0 {
		t.Fatal("expected seed items for absent document")
	}

	// Corrupt document: seed, no error escapes.
	docs.Put(ctx, KeyItems, []byte("{not json"))
	items = docs.LoadItems(ctx)
	if len(items) == 0 {
		t.Fatal("expected seed items for corrupt document")
	}
}

func TestItemsRoundTrip(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 0)
	ctx := context.Background()

	seed := SeedItems()
	seed[0].Quantity = 7
	if err := docs.SaveItems(ctx, seed); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	items := docs.LoadItems(ctx)
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Errorf("round trip mismatch: %+v", items)
	}
}

func TestSessionLifecycle(t *testing.T) {
	docs := NewDocuments(db.NewTestDB(t), 0)
	ctx := context.Background()

	if docs.LoadSession(ctx) != nil {
		t.Fatal("expected no session initially")
	}

	profile := &model.UserProfile{ID: "P88390", Name: "Input Clerk", Role: model.RoleInputter}
	if err := docs.SaveSession(ctx, profile); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got := docs.LoadSession(ctx)
	if got == nil || got.ID != "P88390" || got.Role != model.RoleInputter {
		t.Errorf("unexpected session profile: %+v", got)
	}

	if err := docs.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if docs.LoadSession(ctx) != nil {
		t.Error("expected no session after clear")
	}
}

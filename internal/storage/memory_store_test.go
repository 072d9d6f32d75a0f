package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	b, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load before any save: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("len = %d, want empty book", b.Len())
	}

	if err := store.Save(ctx, buildBook(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if store.Saves() != 1 {
		t.Fatalf("saves = %d, want 1", store.Saves())
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("len = %d, want 3", loaded.Len())
	}
}

func TestMemoryStoreSaveFailure(t *testing.T) {
	store := NewMemoryStore()
	boom := errors.New("disk full")
	store.FailSavesWith(boom)

	if err := store.Save(context.Background(), buildBook(t)); !errors.Is(err, boom) {
		t.Fatalf("Save error = %v, want the injected failure", err)
	}
	if store.Saves() != 0 {
		t.Fatalf("saves = %d, want 0 after failure", store.Saves())
	}
}

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/okravchuk/assistant/internal/book"
	"github.com/okravchuk/assistant/internal/domain"
	"github.com/okravchuk/assistant/internal/graph"
)

func TestGraphStoreSaveReplacesWholesale(t *testing.T) {
	mem := graph.NewMemoryClient()
	store := NewGraphStore(mem, testLogger())

	if err := store.Save(context.Background(), buildBook(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	writes := mem.Writes()
	if len(writes) != 2 {
		t.Fatalf("writes = %d, want delete-all then create-all", len(writes))
	}
	if writes[0].Cypher != cypherDeleteContacts {
		t.Fatalf("first statement = %q, want delete-all", writes[0].Cypher)
	}
	if writes[1].Cypher != cypherCreateContacts {
		t.Fatalf("second statement = %q, want create-all", writes[1].Cypher)
	}

	rows, ok := writes[1].Params["contacts"].([]map[string]any)
	if !ok || len(rows) != 3 {
		t.Fatalf("contacts param = %T (len %d), want 3 rows", writes[1].Params["contacts"], len(rows))
	}
	// Rows follow the book's name-sorted order.
	if rows[0]["name"] != "Alice" || rows[0]["birthday"] != "15.06.1990" {
		t.Fatalf("first row = %v", rows[0])
	}
	phones, ok := rows[0]["phones"].([]string)
	if !ok || len(phones) != 2 || phones[0] != "1111111111" {
		t.Fatalf("Alice phones param = %v", rows[0]["phones"])
	}
	if rows[1]["name"] != "Bob" || rows[1]["birthday"] != "" {
		t.Fatalf("second row = %v", rows[1])
	}
}

func TestGraphStoreSaveEmptyBookOnlyClears(t *testing.T) {
	mem := graph.NewMemoryClient()
	store := NewGraphStore(mem, testLogger())

	if err := store.Save(context.Background(), book.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	writes := mem.Writes()
	if len(writes) != 1 || writes[0].Cypher != cypherDeleteContacts {
		t.Fatalf("writes = %v, want a single delete-all", writes)
	}
}

func TestGraphStoreLoad(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult([]graph.Record{
		{"name": "Alice", "phones": []any{"1111111111"}, "birthday": "15.06.1990"},
		{"name": "Bob", "phones": []any{}, "birthday": ""},
	})
	store := NewGraphStore(mem, testLogger())

	b, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}

	alice, ok := b.Find("Alice")
	if !ok {
		t.Fatal("Alice missing")
	}
	if bday, _ := alice.Birthday(); bday.String() != "15.06.1990" {
		t.Fatalf("Alice birthday = %q", bday)
	}

	reads := mem.Reads()
	if len(reads) != 1 || reads[0].Cypher != cypherLoadContacts {
		t.Fatalf("reads = %v, want a single load-all", reads)
	}
}

func TestGraphStoreLoadSkipsInvalidNodes(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult([]graph.Record{
		{"name": "Good", "phones": []any{"1111111111"}, "birthday": ""},
		{"name": "BadPhone", "phones": []any{"123"}, "birthday": ""},
		{"name": "", "phones": []any{}, "birthday": ""},
	})
	store := NewGraphStore(mem, testLogger())

	b, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("len = %d, want only the valid node", b.Len())
	}
	if _, ok := b.Find("Good"); !ok {
		t.Fatal("valid node missing")
	}
}

func TestGraphStoreTransportErrors(t *testing.T) {
	mem := graph.NewMemoryClient()
	boom := errors.New("connection reset")
	mem.FailWith(boom)
	store := NewGraphStore(mem, testLogger())
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, boom) {
		t.Fatalf("Load error = %v, want wrapped transport error", err)
	}
	if err := store.Save(ctx, buildBook(t)); !errors.Is(err, boom) {
		t.Fatalf("Save error = %v, want wrapped transport error", err)
	}
}

func TestRestoreContactValidation(t *testing.T) {
	if _, err := restoreContact("Jane", []string{"1111111111"}, "01.01.1990"); err != nil {
		t.Fatalf("valid fields: %v", err)
	}
	if _, err := restoreContact("", nil, ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty name: expected validation error, got %v", err)
	}
	if _, err := restoreContact("Jane", []string{"abc"}, ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad phone: expected validation error, got %v", err)
	}
	if _, err := restoreContact("Jane", nil, "06/15/1990"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad birthday: expected validation error, got %v", err)
	}
}

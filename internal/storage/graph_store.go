package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okravchuk/assistant/internal/book"
	"github.com/okravchuk/assistant/internal/graph"
)

// Cypher executed by the graph store. Save replaces the whole node set, which
// keeps the wholesale-snapshot semantics of the file store.
const (
	cypherDeleteContacts = `MATCH (c:Contact) DETACH DELETE c`
	cypherCreateContacts = `UNWIND $contacts AS row
CREATE (c:Contact {name: row.name, phones: row.phones, birthday: row.birthday})`
	cypherLoadContacts = `MATCH (c:Contact)
RETURN c.name AS name, c.phones AS phones, c.birthday AS birthday`
)

// GraphStore persists the book as Contact nodes in a graph database.
type GraphStore struct {
	client graph.Client
	logger *slog.Logger
}

// NewGraphStore creates a store backed by the given graph client.
func NewGraphStore(client graph.Client, logger *slog.Logger) *GraphStore {
	return &GraphStore{client: client, logger: logger}
}

// Load reads every Contact node. Nodes that no longer pass field validation
// are skipped with a warning instead of discarding the rest of the book;
// transport failures surface as errors.
func (s *GraphStore) Load(ctx context.Context) (*book.Book, error) {
	records, err := s.client.Read(ctx, cypherLoadContacts, nil)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	b := book.New()
	for _, rec := range records {
		name, _ := rec["name"].(string)
		birthday, _ := rec["birthday"].(string)
		var phones []string
		if raw, ok := rec["phones"].([]any); ok {
			for _, v := range raw {
				if p, ok := v.(string); ok {
					phones = append(phones, p)
				}
			}
		}

		c, err := restoreContact(name, phones, birthday)
		if err != nil {
			s.logger.Warn("skipping invalid contact node", "name", name, "error", err)
			continue
		}
		b.Add(c)
	}
	return b, nil
}

// Save replaces all Contact nodes with the book's current records.
func (s *GraphStore) Save(ctx context.Context, b *book.Book) error {
	if err := s.client.Write(ctx, cypherDeleteContacts, nil); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}

	rows := make([]map[string]any, 0, b.Len())
	for _, c := range b.Contacts() {
		name, phones, birthday := contactFields(c)
		if phones == nil {
			phones = []string{}
		}
		rows = append(rows, map[string]any{
			"name":     name,
			"phones":   phones,
			"birthday": birthday,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if err := s.client.Write(ctx, cypherCreateContacts, map[string]any{"contacts": rows}); err != nil {
		return fmt.Errorf("store contacts: %w", err)
	}
	return nil
}

// Close releases the underlying graph connection.
func (s *GraphStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

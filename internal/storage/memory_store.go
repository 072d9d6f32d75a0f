package storage

import (
	"context"

	"github.com/okravchuk/assistant/internal/book"
)

// MemoryStore keeps the book in process memory only. It backs the -no-persist
// mode and the command tests.
type MemoryStore struct {
	book    *book.Book
	saves   int
	saveErr error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailSavesWith makes every subsequent Save return err.
func (s *MemoryStore) FailSavesWith(err error) {
	s.saveErr = err
}

// Load returns the last saved book, or a fresh one if nothing was saved.
func (s *MemoryStore) Load(context.Context) (*book.Book, error) {
	if s.book == nil {
		return book.New(), nil
	}
	return s.book, nil
}

// Save retains the book reference.
func (s *MemoryStore) Save(_ context.Context, b *book.Book) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.book = b
	s.saves++
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close(context.Context) error { return nil }

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int { return s.saves }

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/okravchuk/assistant/internal/book"
)

// DefaultPath is the snapshot location used when none is configured.
const DefaultPath = "addressbook.json"

// snapshotVersion guards against loading files written in a different shape.
const snapshotVersion = 1

type snapshot struct {
	Version  int               `json:"version"`
	Contacts []snapshotContact `json:"contacts"`
}

type snapshotContact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// FileStore persists the book as a single JSON snapshot on disk.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file store writing to path, or DefaultPath when path
// is empty.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the snapshot. A missing file, unreadable content, unknown
// snapshot version or invalid record all yield a fresh empty book, never an
// error.
func (s *FileStore) Load(context.Context) (*book.Book, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		s.logger.Warn("snapshot unreadable, starting fresh", "path", s.path, "error", err)
		return book.New(), nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("snapshot corrupt, starting fresh", "path", s.path, "error", err)
		return book.New(), nil
	}
	if snap.Version != snapshotVersion {
		s.logger.Warn("snapshot version mismatch, starting fresh", "path", s.path, "version", snap.Version)
		return book.New(), nil
	}

	b := book.New()
	for _, sc := range snap.Contacts {
		c, err := restoreContact(sc.Name, sc.Phones, sc.Birthday)
		if err != nil {
			s.logger.Warn("snapshot record invalid, starting fresh", "path", s.path, "name", sc.Name, "error", err)
			return book.New(), nil
		}
		b.Add(c)
	}
	return b, nil
}

// Save writes the whole book to a temp file next to the target and renames it
// into place, so a crash mid-write never leaves a half-written snapshot.
func (s *FileStore) Save(_ context.Context, b *book.Book) error {
	snap := snapshot{Version: snapshotVersion}
	for _, c := range b.Contacts() {
		name, phones, birthday := contactFields(c)
		snap.Contacts = append(snap.Contacts, snapshotContact{
			Name:     name,
			Phones:   phones,
			Birthday: birthday,
		})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Close is a no-op: the file is opened and closed within each call.
func (s *FileStore) Close(context.Context) error { return nil }

// Package storage persists the address book as one wholesale snapshot.
package storage

import (
	"context"
	"fmt"

	"github.com/okravchuk/assistant/internal/book"
	"github.com/okravchuk/assistant/internal/domain"
)

// Store persists one whole address book. Implementations treat missing or
// corrupt state as an empty book rather than an error; only transport and
// save-side I/O failures surface, since silently losing data would be worse
// than a visible error.
type Store interface {
	Load(ctx context.Context) (*book.Book, error)
	Save(ctx context.Context, b *book.Book) error
	Close(ctx context.Context) error
}

// restoreContact rebuilds a validated contact from its persisted fields. The
// fields go back through the same validation as user input, so a snapshot
// that no longer fits the expected shape is detected here.
func restoreContact(name string, phones []string, birthday string) (*domain.Contact, error) {
	c, err := domain.NewContact(name)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		if err := c.AddPhone(p); err != nil {
			return nil, fmt.Errorf("phone %q: %w", p, err)
		}
	}
	if birthday != "" {
		if err := c.SetBirthday(birthday); err != nil {
			return nil, fmt.Errorf("birthday %q: %w", birthday, err)
		}
	}
	return c, nil
}

// contactFields flattens a contact into its persisted representation.
func contactFields(c *domain.Contact) (name string, phones []string, birthday string) {
	name = c.Name()
	for _, p := range c.Phones() {
		phones = append(phones, p.String())
	}
	if bday, ok := c.Birthday(); ok {
		birthday = bday.String()
	}
	return name, phones, birthday
}

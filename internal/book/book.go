// Package book holds the in-memory contact collection and the
// upcoming-birthday scan.
package book

import (
	"sort"
	"time"

	"github.com/okravchuk/assistant/internal/domain"
)

// Book is the contact collection, keyed by contact name. The book owns its
// records; it is not safe for concurrent use and the CLI drives it from a
// single goroutine.
type Book struct {
	contacts map[string]*domain.Contact
}

// New returns an empty book.
func New() *Book {
	return &Book{contacts: make(map[string]*domain.Contact)}
}

// Add inserts the contact. An existing record under the same name is replaced
// wholesale: its phones and birthday are discarded, not merged.
func (b *Book) Add(c *domain.Contact) {
	b.contacts[c.Name()] = c
}

// Find returns the named contact and whether it exists.
func (b *Book) Find(name string) (*domain.Contact, bool) {
	c, ok := b.contacts[name]
	return c, ok
}

// Delete removes the named contact. Deleting an unknown name is a no-op.
func (b *Book) Delete(name string) {
	delete(b.contacts, name)
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.contacts) }

// Contacts returns all records sorted by name, for deterministic rendering
// and persistence.
func (b *Book) Contacts() []*domain.Contact {
	out := make([]*domain.Contact, 0, len(b.contacts))
	for _, c := range b.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Greeting pairs a contact name with the date their birthday should be
// celebrated on.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// UpcomingBirthdays lists contacts whose next birthday falls within
// withinDays of today, both ends inclusive. The window is checked against the
// actual birthday occurrence; congratulation dates landing on a weekend are
// shifted afterwards to the following Monday, so a shifted date may fall past
// the window. Results are ordered by congratulation date, ties broken by
// name.
func (b *Book) UpcomingBirthdays(withinDays int, today time.Time) []Greeting {
	today = domain.Midnight(today)
	end := today.AddDate(0, 0, withinDays)

	var out []Greeting
	for _, c := range b.contacts {
		bday, ok := c.Birthday()
		if !ok {
			continue
		}
		next := bday.NextOccurrence(today)
		if next.Before(today) || next.After(end) {
			continue
		}
		out = append(out, Greeting{Name: c.Name(), CongratulationDate: shiftOffWeekend(next)})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CongratulationDate.Equal(out[j].CongratulationDate) {
			return out[i].CongratulationDate.Before(out[j].CongratulationDate)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// shiftOffWeekend moves Saturday dates forward two days and Sunday dates
// forward one, so greetings always land on a business day.
func shiftOffWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

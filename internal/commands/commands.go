// Package commands implements the handlers behind the interactive CLI. Each
// handler takes the raw argument list and the book, mutates the book where
// the command calls for it, and returns the message shown to the user. The
// REPL renders errors via Render and persists the book after every successful
// mutating command.
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okravchuk/assistant/internal/book"
	"github.com/okravchuk/assistant/internal/domain"
)

// ErrNotEnoughArgs marks a command invoked with fewer arguments than it
// needs.
var ErrNotEnoughArgs = errors.New("not enough arguments")

// Handler executes one command against the book.
type Handler func(args []string, b *book.Book) (string, error)

// Command couples a handler with whether it mutates the book.
type Command struct {
	Run      Handler
	Mutating bool
}

// Set holds the command table together with its scheduling defaults.
type Set struct {
	window int
	nowFn  func() time.Time
}

// NewSet builds the command set. window is the default day span used by the
// birthdays command.
func NewSet(window int) *Set {
	if window <= 0 {
		window = 7
	}
	return &Set{window: window, nowFn: time.Now}
}

// WithClock overrides the time source (used primarily in tests).
func (s *Set) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Commands returns the dispatch table keyed by command word.
func (s *Set) Commands() map[string]Command {
	return map[string]Command{
		"add":           {Run: s.AddContact, Mutating: true},
		"change":        {Run: s.ChangePhone, Mutating: true},
		"phone":         {Run: s.ShowPhones},
		"all":           {Run: s.ShowAll},
		"delete":        {Run: s.DeleteContact, Mutating: true},
		"add-birthday":  {Run: s.AddBirthday, Mutating: true},
		"show-birthday": {Run: s.ShowBirthday},
		"birthdays":     {Run: s.Birthdays},
	}
}

// Render converts a handler error into the line printed by the REPL. Domain
// errors already carry their user-facing text; anything else is unexpected
// and kept visible.
func Render(err error) string {
	switch {
	case errors.Is(err, ErrNotEnoughArgs):
		return "Not enough arguments."
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}

// AddContact creates the record if needed and appends the phone. Calling it
// twice with the same name accumulates phones on one record.
func (s *Set) AddContact(args []string, b *book.Book) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, phone := args[0], args[1]

	record, ok := b.Find(name)
	if !ok {
		created, err := domain.NewContact(name)
		if err != nil {
			return "", err
		}
		if err := created.AddPhone(phone); err != nil {
			return "", err
		}
		b.Add(created)
		return "Contact added.", nil
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// ChangePhone replaces an existing phone on an existing contact.
func (s *Set) ChangePhone(args []string, b *book.Book) (string, error) {
	if len(args) < 3 {
		return "", ErrNotEnoughArgs
	}
	record, ok := b.Find(args[0])
	if !ok {
		return "", domain.NotFoundf("Contact not found.")
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone updated.", nil
}

// ShowPhones lists a contact's phones.
func (s *Set) ShowPhones(args []string, b *book.Book) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	record, ok := b.Find(args[0])
	if !ok {
		return "", domain.NotFoundf("Contact not found.")
	}
	phones := record.Phones()
	if len(phones) == 0 {
		return "No phones.", nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; "), nil
}

// ShowAll renders every record, one per line, sorted by name.
func (s *Set) ShowAll(_ []string, b *book.Book) (string, error) {
	if b.Len() == 0 {
		return "Address book is empty.", nil
	}
	contacts := b.Contacts()
	lines := make([]string, len(contacts))
	for i, c := range contacts {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact removes a record. Deleting an unknown name is not an error.
func (s *Set) DeleteContact(args []string, b *book.Book) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	b.Delete(args[0])
	return "Contact deleted.", nil
}

// AddBirthday creates the record if needed and sets its birthday.
func (s *Set) AddBirthday(args []string, b *book.Book) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, date := args[0], args[1]

	record, ok := b.Find(name)
	if !ok {
		created, err := domain.NewContact(name)
		if err != nil {
			return "", err
		}
		if err := created.SetBirthday(date); err != nil {
			return "", err
		}
		b.Add(created)
		return "Birthday added.", nil
	}
	if err := record.SetBirthday(date); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// ShowBirthday renders a contact's birthday.
func (s *Set) ShowBirthday(args []string, b *book.Book) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	record, ok := b.Find(args[0])
	if !ok {
		return "", domain.NotFoundf("Contact not found.")
	}
	bday, ok := record.Birthday()
	if !ok {
		return "No birthday set.", nil
	}
	return bday.String(), nil
}

// Birthdays renders upcoming birthdays grouped by congratulation date, dates
// ascending, each line listing comma-joined names. An optional argument
// overrides the configured window.
func (s *Set) Birthdays(args []string, b *book.Book) (string, error) {
	window := s.window
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return "", domain.Validationf("Window must be a positive number of days")
		}
		window = n
	}

	upcoming := b.UpcomingBirthdays(window, s.nowFn())
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days.", window), nil
	}

	var lines []string
	for i := 0; i < len(upcoming); {
		date := upcoming[i].CongratulationDate
		var names []string
		j := i
		for ; j < len(upcoming) && upcoming[j].CongratulationDate.Equal(date); j++ {
			names = append(names, upcoming[j].Name)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", date.Format(domain.DateLayout), strings.Join(names, ", ")))
		i = j
	}
	return strings.Join(lines, "\n"), nil
}

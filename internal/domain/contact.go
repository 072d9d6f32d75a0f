package domain

import (
	"fmt"
	"strings"
)

// nonePlaceholder renders in place of an empty phone list or unset birthday.
const nonePlaceholder = "—"

// Contact aggregates one person's data: an immutable name, an ordered list of
// phone numbers (duplicates allowed, insertion order preserved) and at most
// one birthday.
type Contact struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewContact creates a contact with no phones and no birthday. Any non-empty
// name is accepted.
func NewContact(name string) (*Contact, error) {
	if name == "" {
		return nil, Validationf("Name must not be empty")
	}
	return &Contact{name: name}, nil
}

// Name returns the contact's name. Names never change after creation; a
// contact is replaced in the book instead.
func (c *Contact) Name() string { return c.name }

// Phones returns a copy of the phone list in insertion order.
func (c *Contact) Phones() []PhoneNumber {
	return append([]PhoneNumber(nil), c.phones...)
}

// Birthday returns the contact's birthday and whether one is set.
func (c *Contact) Birthday() (Birthday, bool) {
	if c.birthday == nil {
		return Birthday{}, false
	}
	return *c.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (c *Contact) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	c.phones = append(c.phones, phone)
	return nil
}

// RemovePhone drops every phone equal to raw. Removing an unknown phone is
// not an error.
func (c *Contact) RemovePhone(raw string) {
	kept := c.phones[:0]
	for _, p := range c.phones {
		if string(p) != raw {
			kept = append(kept, p)
		}
	}
	c.phones = kept
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping its
// position. Later duplicates of oldRaw stay untouched.
func (c *Contact) EditPhone(oldRaw, newRaw string) error {
	phone, err := NewPhoneNumber(newRaw)
	if err != nil {
		return err
	}
	for i, p := range c.phones {
		if string(p) == oldRaw {
			c.phones[i] = phone
			return nil
		}
	}
	return NotFoundf("Old phone not found")
}

// FindPhone returns the first phone equal to raw.
func (c *Contact) FindPhone(raw string) (PhoneNumber, bool) {
	for _, p := range c.phones {
		if string(p) == raw {
			return p, true
		}
	}
	return "", false
}

// SetBirthday validates raw and overwrites any existing birthday.
func (c *Contact) SetBirthday(raw string) error {
	bday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	c.birthday = &bday
	return nil
}

// String renders the one-line summary shown by the "all" command.
func (c *Contact) String() string {
	phones := nonePlaceholder
	if len(c.phones) > 0 {
		parts := make([]string, len(c.phones))
		for i, p := range c.phones {
			parts[i] = string(p)
		}
		phones = strings.Join(parts, "; ")
	}
	bday := nonePlaceholder
	if c.birthday != nil {
		bday = c.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", c.name, phones, bday)
}

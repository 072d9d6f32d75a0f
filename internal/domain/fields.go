package domain

import (
	"regexp"
	"time"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "02.01.2006"

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// PhoneNumber is a validated ten-digit phone number. The digits are kept
// exactly as entered: no formatting, no stripping of leading zeros.
type PhoneNumber string

// NewPhoneNumber validates raw and returns it as a PhoneNumber. Anything
// other than exactly 10 ASCII digits fails.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !phonePattern.MatchString(raw) {
		return "", Validationf("Phone must contain exactly 10 digits")
	}
	return PhoneNumber(raw), nil
}

func (p PhoneNumber) String() string { return string(p) }

// Birthday is a calendar date with no time-of-day or timezone component.
// It is stored structured, never as free text, so date arithmetic is exact.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in strict DD.MM.YYYY form. Both a different shape
// and an invalid calendar date (day 32, Feb 30) fail.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, Validationf("Invalid date format. Use DD.MM.YYYY")
	}
	dt, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return Birthday{}, Validationf("Invalid date format. Use DD.MM.YYYY")
	}
	return Birthday{date: dt}, nil
}

// Date returns the underlying calendar date at UTC midnight.
func (b Birthday) Date() time.Time { return b.date }

// NextOccurrence returns the birthday's next occurrence on or after today.
// A Feb 29 birthday is observed on Mar 1 in non-leap years.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	today = Midnight(today)
	next := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// String re-derives the display form from the structured date, so equivalent
// inputs always print identically.
func (b Birthday) String() string { return b.date.Format(DateLayout) }

// Midnight truncates t to its calendar date at UTC midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

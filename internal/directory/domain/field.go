// Package domain contains the contact directory core: the validated field
// value objects, the Record aggregate, and the Directory collection with
// its upcoming-birthday query.
package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNameEmpty      = errors.New("contact name cannot be empty")
	ErrPhoneNotDigits = errors.New("phone must contain only digits")
	ErrPhoneBadLength = errors.New("phone must be exactly 10 digits")
	ErrBirthdayFormat = errors.New("invalid date format, use DD.MM.YYYY")
)

// PhoneLength is the required number of digits in a phone number.
const PhoneLength = 10

// BirthdayLayout is the textual date format for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Name identifies a contact and serves as the Directory key.
type Name struct {
	value string
}

// NewName creates a Name, rejecting empty or whitespace-only input.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, ErrNameEmpty
	}
	return Name{value: value}, nil
}

// String returns the name as entered.
func (n Name) String() string { return n.value }

// Equals checks if two Names are equal.
func (n Name) Equals(other Name) bool { return n.value == other.value }

// Phone is a validated phone number: exactly PhoneLength ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates raw and creates a Phone. The digit check runs before
// the length check, so an empty or mixed string reports the digit error.
func NewPhone(raw string) (Phone, error) {
	if !isDigits(raw) {
		return Phone{}, ErrPhoneNotDigits
	}
	if len(raw) != PhoneLength {
		return Phone{}, ErrPhoneBadLength
	}
	return Phone{value: raw}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the digit string.
func (p Phone) String() string { return p.value }

// Equals checks if two Phones hold the same number.
func (p Phone) Equals(other Phone) bool { return p.value == other.value }

// Birthday is a validated calendar date parsed from DD.MM.YYYY text.
type Birthday struct {
	value time.Time
}

// NewBirthday parses raw against BirthdayLayout. Both malformed text and
// semantically invalid dates (day 30 of February) fail construction.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, ErrBirthdayFormat
	}
	return Birthday{value: t}, nil
}

// Value returns the resolved calendar date at UTC midnight.
func (b Birthday) Value() time.Time { return b.value }

// Format renders the date back to DD.MM.YYYY, round-tripping NewBirthday.
func (b Birthday) Format() string { return b.value.Format(BirthdayLayout) }

// Equals checks if two Birthdays fall on the same date.
func (b Birthday) Equals(other Birthday) bool { return b.value.Equal(other.value) }

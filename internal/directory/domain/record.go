package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrDuplicatePhone = errors.New("phone already added to this contact")

// Record holds one contact: its name, an ordered list of unique phones,
// and an optional birthday. A Record is owned by the Directory entry that
// stores it and is mutated only through its own methods.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with the given name, no phones, and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{
		name:   n,
		phones: make([]Phone, 0),
	}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns the contact's phones in insertion order.
func (r *Record) Phones() []Phone { return r.phones }

// Birthday returns the contact's birthday, or nil when none is set.
func (r *Record) Birthday() *Birthday { return r.birthday }

// AddPhone validates raw and appends it to the phone list. Adding a number
// the record already holds fails with ErrDuplicatePhone.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if _, found := r.FindPhone(phone.String()); found {
		return ErrDuplicatePhone
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone scans for a phone equal to raw. Absence is not an error.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// RemovePhone removes the first phone equal to raw and reports whether a
// removal occurred.
func (r *Record) RemovePhone(raw string) bool {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the phone equal to old with a freshly validated new
// number, keeping its position. It reports whether old was found; when new
// fails validation the record is left unchanged and the error is returned.
func (r *Record) EditPhone(old, newRaw string) (bool, error) {
	for i, p := range r.phones {
		if p.String() == old {
			phone, err := NewPhone(newRaw)
			if err != nil {
				return true, err
			}
			r.phones[i] = phone
			return true, nil
		}
	}
	return false, nil
}

// AddBirthday parses raw and stores it, overwriting any previous birthday.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// String renders a deterministic one-line summary of the contact.
func (r *Record) String() string {
	phones := lo.Map(r.phones, func(p Phone, _ int) string {
		return p.String()
	})
	birthday := "—"
	if r.birthday != nil {
		birthday = r.birthday.Format()
	}
	return fmt.Sprintf("%s: phones=[%s], birthday=%s", r.name, strings.Join(phones, "; "), birthday)
}

package domain

import (
	"sync"
	"time"
)

const (
	daysInWeek = 7
	// Monday-start weekday indexing: Saturday = 5, Sunday = 6.
	weekendStart = 5
)

// BirthdayReminder is one row of the upcoming-birthday report: the contact
// and the weekend-adjusted date the greeting should go out.
type BirthdayReminder struct {
	Name               string
	CongratulationDate string
}

// Directory is the keyed collection of Records. Names are unique; iteration
// follows insertion order, with a replaced record keeping its original slot.
// A single mutex guards every logical operation.
type Directory struct {
	mu      sync.Mutex
	index   map[string]int
	records []*Record
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		index: make(map[string]int),
	}
}

// AddRecord inserts rec under its name. An existing entry with the same
// name is fully replaced, not merged; it keeps its position in iteration
// order.
func (d *Directory) AddRecord(rec *Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	name := rec.Name().String()
	if i, ok := d.index[name]; ok {
		d.records[i] = rec
		return
	}
	d.index[name] = len(d.records)
	d.records = append(d.records, rec)
}

// Find returns the record stored under exactly name.
func (d *Directory) Find(name string) (*Record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.records[i], true
}

// Delete removes the entry under name and reports whether it existed.
func (d *Directory) Delete(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.index[name]
	if !ok {
		return false
	}
	d.records = append(d.records[:i], d.records[i+1:]...)
	delete(d.index, name)
	for j := i; j < len(d.records); j++ {
		d.index[d.records[j].Name().String()] = j
	}
	return true
}

// Records returns all records in insertion order.
func (d *Directory) Records() []*Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Record, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of stored records.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// UpcomingBirthdays reports every contact whose next birthday falls within
// windowDays of today, both bounds inclusive. A birthday landing on a
// weekend is shifted forward to the following Monday. Results keep the
// directory's insertion order. The caller injects today so the query stays
// deterministic.
func (d *Directory) UpcomingBirthdays(today time.Time, windowDays int) []BirthdayReminder {
	d.mu.Lock()
	defer d.mu.Unlock()

	today = atMidnightUTC(today)
	reminders := make([]BirthdayReminder, 0)

	for _, rec := range d.records {
		if rec.birthday == nil {
			continue
		}
		birthday := rec.birthday.Value()

		thisYear := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		if thisYear.Before(today) {
			thisYear = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		}

		delta := int(thisYear.Sub(today).Hours() / 24)
		if delta < 0 || delta > windowDays {
			continue
		}

		congratulation := thisYear
		if weekday := mondayIndex(congratulation.Weekday()); weekday >= weekendStart {
			congratulation = congratulation.AddDate(0, 0, daysInWeek-weekday)
		}

		reminders = append(reminders, BirthdayReminder{
			Name:               rec.Name().String(),
			CongratulationDate: congratulation.Format(BirthdayLayout),
		})
	}
	return reminders
}

// mondayIndex converts time.Weekday (Sunday = 0) to a Monday-start index
// (Monday = 0 .. Sunday = 6).
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % daysInWeek
}

func atMidnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

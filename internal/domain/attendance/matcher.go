package attendance

import (
	"fmt"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// Date encodings the capture subsystem has used over time. Order matters:
// the plain date layout is by far the most common.
var rawDateLayouts = []string{
	dateKeyLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateKey returns the canonical YYYY-MM-DD key for an instant.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDate reads a raw date string as a calendar date: time-of-day and zone
// offset are dropped, never converted.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrMalformedDate
	}
	for _, layout := range rawDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
}

// ParseDateKey normalizes a raw date string to the canonical key.
func ParseDateKey(raw string) (string, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	return DateKey(t), nil
}

// Key returns the canonical date key of a record, preferring the parsed Date
// column and falling back to RawDate for legacy rows.
func (r Record) Key() (string, error) {
	if !r.Date.IsZero() {
		return DateKey(r.Date), nil
	}
	return ParseDateKey(r.RawDate)
}

// Index holds records keyed by canonical date for O(1) lookup. Build it once
// per reporting period; a one-off lookup can use Find instead.
//
// Records whose date cannot be normalized are skipped with a warning rather
// than failing the whole period. When two records normalize to the same date
// the first one wins; the capture layer is supposed to guarantee at most one
// record per employee per date, so later rows are data errors, not
// corrections.
type Index struct {
	byDate   map[string]*Record
	Warnings []string
}

// BuildIndex normalizes every record's date once and indexes by the result.
func BuildIndex(records []Record) *Index {
	idx := &Index{byDate: make(map[string]*Record, len(records))}
	for i := range records {
		key, err := records[i].Key()
		if err != nil {
			idx.Warnings = append(idx.Warnings,
				fmt.Sprintf("attendance record %s skipped: unparseable date %q", records[i].ID, records[i].RawDate))
			continue
		}
		if _, dup := idx.byDate[key]; dup {
			idx.Warnings = append(idx.Warnings,
				fmt.Sprintf("duplicate attendance record for %s, keeping first match", key))
			continue
		}
		idx.byDate[key] = &records[i]
	}
	return idx
}

// Find returns the record for a date, or nil.
func (idx *Index) Find(date time.Time) *Record {
	return idx.byDate[DateKey(date)]
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.byDate)
}

// Find scans records for the given date without building an index, applying
// the same normalization. Unparseable records are ignored.
func Find(records []Record, date time.Time) *Record {
	want := DateKey(date)
	for i := range records {
		key, err := records[i].Key()
		if err != nil {
			continue
		}
		if key == want {
			return &records[i]
		}
	}
	return nil
}

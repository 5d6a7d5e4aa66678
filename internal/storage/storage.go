package storage

import (
	"fmt"
	"strings"
	"time"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// DateKey identifies one calendar day. Keys compare by value.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{Year: year, Month: month, Day: day}
}

// String renders day/month/year with a one-based month.
func (k DateKey) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Day, int(k.Month), k.Year)
}

// Store keeps the event lists of each day for the lifetime of the process.
// Implementations are not safe for concurrent use.
type Store interface {
	// List returns the events of key in insertion order; absent keys yield an empty slice.
	List(key DateKey) ([]string, error)
	// Add appends text to the list of key. Blank text is ignored.
	Add(key DateKey, text string) error
	// Remove drops the first event equal to text. Missing events are ignored.
	Remove(key DateKey, text string) error
	Count(key DateKey) (int, error)
	Close() error
}

func Open(backend string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite()
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// normalize trims text and reports whether anything is left to store.
func normalize(text string) (string, bool) {
	text = strings.TrimSpace(text)
	return text, text != ""
}

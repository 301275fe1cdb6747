package puzzle

import (
	"fmt"
	"strings"
)

// Event categories and keys recorded by a round and the state machine.
const (
	CatCursor = "cursor"
	CatPiece  = "piece"
	CatRound  = "round"
	CatState  = "state"

	KeyMove       = "move"
	KeyBump       = "bump"
	KeySelect     = "select"
	KeyDrop       = "drop"
	KeyBlocked    = "blocked"
	KeyComplete   = "complete"
	KeyTransition = "transition"
)

// Event is one recorded occurrence.
type Event struct {
	Tick     int
	Subject  string // "cursor", a piece label like "R@1,2", or "--"
	Category string
	Key      string
	Value    string
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] G@3,4   piece  move     (3,4) → (3,5)
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-6s %-8s %s",
		e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// EventLog collects events in order. It is unbounded and machine-readable.
type EventLog struct {
	entries []Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Add records a new entry.
func (l *EventLog) Add(tick int, subject, category, key, value string) {
	l.entries = append(l.entries, Event{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []Event { return l.entries }

// Len returns the entry count.
func (l *EventLog) Len() int { return len(l.entries) }

// Filter returns entries matching category and key. Empty strings match any.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// Last returns the most recent entry matching category and key.
func (l *EventLog) Last(category, key string) (Event, bool) {
	m := l.Filter(category, key)
	if len(m) == 0 {
		return Event{}, false
	}
	return m[len(m)-1], true
}

// Has reports whether an entry matches category and key with a value
// containing substr.
func (l *EventLog) Has(category, key, substr string) bool {
	for _, e := range l.Filter(category, key) {
		if strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}

// Format renders every entry, one per line.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

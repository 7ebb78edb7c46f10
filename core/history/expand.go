package history

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHistory is returned when "!!" is used before anything was recorded.
	ErrNoHistory = errors.New("no history")
	// ErrEventNotFound is returned when a designator matches no entry.
	ErrEventNotFound = errors.New("event not found")
)

// EventError records a failed expansion and the designator that caused it.
type EventError struct {
	Designator string
	Err        error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s: %v", e.Designator, e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// Source is the read side of a Store that expansion needs.
type Source interface {
	Len() int
	Get(index int) (Entry, bool)
	Last(n int) (Entry, bool)
	FindPrefix(prefix string) (Entry, bool)
}

var _ Source = (*Store)(nil)

// Resolve turns an event into the command line it refers to.
func Resolve(ev Event, src Source) (string, error) {
	var (
		entry Entry
		found bool
		rest  string
	)

	switch ev := ev.(type) {
	case Literal:
		return ev.Text, nil
	case Repeat:
		if src.Len() == 0 {
			return "", &EventError{Designator: ev.Designator(), Err: ErrNoHistory}
		}
		entry, found = src.Last(1)
		rest = ev.Rest
	case ByIndex:
		entry, found = src.Get(ev.N)
		rest = ev.Rest
	case ByOffset:
		entry, found = src.Last(ev.N)
		rest = ev.Rest
	case ByPrefix:
		entry, found = src.FindPrefix(ev.Prefix)
		rest = ev.Rest
	default:
		return "", fmt.Errorf("unsupported history event %T", ev)
	}

	if !found {
		return "", &EventError{Designator: ev.Designator(), Err: ErrEventNotFound}
	}
	if rest != "" {
		return entry.Text + " " + rest, nil
	}
	return entry.Text, nil
}

// Expander rewrites typed lines against a history source.
type Expander struct {
	Source Source
}

// NewExpander creates an expander reading from src.
func NewExpander(src Source) *Expander {
	return &Expander{Source: src}
}

// Expand resolves line. The returned bool reports whether a history reference
// was substituted. Expand must be called before the line itself is recorded.
func (x *Expander) Expand(line string) (string, bool, error) {
	ev := ParseEvent(line)
	if _, ok := ev.(Literal); ok {
		return line, false, nil
	}

	resolved, err := Resolve(ev, x.Source)
	if err != nil {
		return "", false, err
	}
	return resolved, true, nil
}

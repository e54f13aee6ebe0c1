package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilter = errors.New("model: invalid visibility filter")
	ErrDuplicateID   = errors.New("model: duplicate item id")
	ErrStaleCounter  = errors.New("model: next id not above existing ids")
)

// Item is one todo entry. IDs are assigned once, from the state's
// monotonic counter, and never reused.
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Editing     bool   `json:"editing"`
}

// State is the whole application state. It is replaced wholesale by the
// transition function; nothing mutates it in place.
type State struct {
	Items     []Item `json:"items"`
	DraftText string `json:"draft_text"`
	NextID    int    `json:"next_id"`
	Filter    Filter `json:"filter"`
}

func DefaultState() State {
	return State{
		Items:  []Item{},
		NextID: 0,
		Filter: FilterAll,
	}
}

func (s State) Validate() error {
	if !s.Filter.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, s.Filter)
	}
	seen := make(map[int]bool, len(s.Items))
	for _, it := range s.Items {
		if seen[it.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
		if it.ID >= s.NextID {
			return fmt.Errorf("%w: id %d, next id %d", ErrStaleCounter, it.ID, s.NextID)
		}
	}
	return nil
}

// Find returns the index of the item with the given id, or -1.
func (s State) Find(id int) int {
	for i, it := range s.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// VisibleItems returns the items the current filter admits, in display order.
func (s State) VisibleItems() []Item {
	out := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if s.Filter.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s State) ActiveCount() int {
	n := 0
	for _, it := range s.Items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (s State) CompletedCount() int {
	return len(s.Items) - s.ActiveCount()
}

func (s State) AllCompleted() bool {
	if len(s.Items) == 0 {
		return false
	}
	return s.ActiveCount() == 0
}

// Clone deep-copies the state so a transition can build its result without
// aliasing the previous items slice.
func (s State) Clone() State {
	out := s
	out.Items = make([]Item, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

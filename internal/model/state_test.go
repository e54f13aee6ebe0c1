package model

import (
	"errors"
	"testing"
)

func TestDefaultStateIsValid(t *testing.T) {
	s := DefaultState()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid default state, got error: %v", err)
	}
	if len(s.Items) != 0 || s.DraftText != "" || s.NextID != 0 || s.Filter != FilterAll {
		t.Fatalf("unexpected default state: %+v", s)
	}
}

func TestStateValidateDuplicateID(t *testing.T) {
	s := State{
		Items:  []Item{{ID: 0, Description: "a"}, {ID: 0, Description: "b"}},
		NextID: 1,
		Filter: FilterAll,
	}
	err := s.Validate()
	if err == nil || !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got: %v", err)
	}
}

func TestStateValidateStaleCounter(t *testing.T) {
	s := State{
		Items:  []Item{{ID: 3, Description: "a"}},
		NextID: 3,
		Filter: FilterAll,
	}
	err := s.Validate()
	if err == nil || !errors.Is(err, ErrStaleCounter) {
		t.Fatalf("expected ErrStaleCounter, got: %v", err)
	}
}

func TestStateValidateInvalidFilter(t *testing.T) {
	s := DefaultState()
	s.Filter = Filter("Bogus")
	err := s.Validate()
	if err == nil || !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got: %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"all", FilterAll, true},
		{"Active", FilterActive, true},
		{" completed ", FilterCompleted, true},
		{"done", FilterCompleted, true},
		{"bogus", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseFilter(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseFilter(%q) expected error", tc.in)
		}
	}
}

func TestVisibleItemsRespectsFilter(t *testing.T) {
	s := State{
		Items: []Item{
			{ID: 0, Description: "a", Completed: true},
			{ID: 1, Description: "b"},
			{ID: 2, Description: "c", Completed: true},
		},
		NextID: 3,
		Filter: FilterActive,
	}
	visible := s.VisibleItems()
	if len(visible) != 1 || visible[0].ID != 1 {
		t.Fatalf("unexpected active items: %#v", visible)
	}

	s.Filter = FilterCompleted
	visible = s.VisibleItems()
	if len(visible) != 2 || visible[0].ID != 0 || visible[1].ID != 2 {
		t.Fatalf("unexpected completed items: %#v", visible)
	}

	s.Filter = FilterAll
	if got := len(s.VisibleItems()); got != 3 {
		t.Fatalf("expected 3 visible items, got %d", got)
	}
}

func TestCountsAndAllCompleted(t *testing.T) {
	s := State{
		Items: []Item{
			{ID: 0, Completed: true},
			{ID: 1},
		},
		NextID: 2,
		Filter: FilterAll,
	}
	if s.ActiveCount() != 1 || s.CompletedCount() != 1 {
		t.Fatalf("unexpected counts: active=%d completed=%d", s.ActiveCount(), s.CompletedCount())
	}
	if s.AllCompleted() {
		t.Fatal("expected AllCompleted false with one active item")
	}

	s.Items[1].Completed = true
	if !s.AllCompleted() {
		t.Fatal("expected AllCompleted true")
	}

	empty := DefaultState()
	if empty.AllCompleted() {
		t.Fatal("expected AllCompleted false for empty state")
	}
}

func TestCloneDoesNotAliasItems(t *testing.T) {
	s := State{
		Items:  []Item{{ID: 0, Description: "a"}},
		NextID: 1,
		Filter: FilterAll,
	}
	c := s.Clone()
	c.Items[0].Description = "changed"
	if s.Items[0].Description != "a" {
		t.Fatalf("clone aliased items slice: %q", s.Items[0].Description)
	}
}

package update

import "todotui/internal/model"

// Event is the closed set of inputs the transition function understands.
// The rendering layer translates key presses and palette commands into
// these; nothing else mutates the state.
type Event interface {
	isEvent()
}

type NoOp struct{}

type SetDraftText struct {
	Text string
}

type SubmitDraft struct{}

type SetEditing struct {
	ID      int
	Editing bool
}

type SetDescription struct {
	ID          int
	Description string
}

type DeleteItem struct {
	ID int
}

type DeleteCompleted struct{}

type SetCompleted struct {
	ID        int
	Completed bool
}

type SetAllCompleted struct {
	Completed bool
}

type SetVisibilityFilter struct {
	Filter model.Filter
}

func (NoOp) isEvent()                {}
func (SetDraftText) isEvent()        {}
func (SubmitDraft) isEvent()         {}
func (SetEditing) isEvent()          {}
func (SetDescription) isEvent()      {}
func (DeleteItem) isEvent()          {}
func (DeleteCompleted) isEvent()     {}
func (SetCompleted) isEvent()        {}
func (SetAllCompleted) isEvent()     {}
func (SetVisibilityFilter) isEvent() {}

// Action is a declarative side-effect request emitted by a transition.
// The program executes actions after committing the new state; their
// outcome is discarded.
type Action interface {
	isAction()
}

// FocusItemInput asks the runtime to move input focus to the inline
// editor for the given item.
type FocusItemInput struct {
	ID int
}

func (FocusItemInput) isAction() {}

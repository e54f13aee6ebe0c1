package update

import "todotui/internal/model"

// Transition computes the next state for one event. Pure and total: every
// event is defined for every state, identifier lookups that find nothing
// degrade to a no-op, and no branch can fail. Persisting the result is the
// caller's job, not an action the transition emits.
func Transition(ev Event, s model.State) (model.State, []Action) {
	switch e := ev.(type) {
	case NoOp:
		return s, nil

	case SetDraftText:
		next := s
		next.DraftText = e.Text
		return next, nil

	case SubmitDraft:
		next := s.Clone()
		// Only the exactly-empty draft is rejected; whitespace-only
		// drafts still create an item, matching the blank check the
		// submit path has always used.
		if next.DraftText != "" {
			next.Items = append(next.Items, model.Item{
				ID:          next.NextID,
				Description: next.DraftText,
			})
			next.NextID++
		}
		next.DraftText = ""
		return next, nil

	case SetEditing:
		idx := s.Find(e.ID)
		if idx < 0 {
			return s, nil
		}
		next := s.Clone()
		next.Items[idx].Editing = e.Editing
		if e.Editing {
			return next, []Action{FocusItemInput{ID: e.ID}}
		}
		return next, nil

	case SetDescription:
		idx := s.Find(e.ID)
		if idx < 0 {
			return s, nil
		}
		next := s.Clone()
		next.Items[idx].Description = e.Description
		return next, nil

	case DeleteItem:
		idx := s.Find(e.ID)
		if idx < 0 {
			return s, nil
		}
		next := s.Clone()
		next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
		return next, nil

	case DeleteCompleted:
		next := s.Clone()
		kept := next.Items[:0]
		for _, it := range next.Items {
			if !it.Completed {
				kept = append(kept, it)
			}
		}
		next.Items = kept
		return next, nil

	case SetCompleted:
		idx := s.Find(e.ID)
		if idx < 0 {
			return s, nil
		}
		next := s.Clone()
		next.Items[idx].Completed = e.Completed
		return next, nil

	case SetAllCompleted:
		next := s.Clone()
		for i := range next.Items {
			next.Items[i].Completed = e.Completed
		}
		return next, nil

	case SetVisibilityFilter:
		if !e.Filter.IsValid() {
			return s, nil
		}
		next := s
		next.Filter = e.Filter
		return next, nil
	}

	return s, nil
}

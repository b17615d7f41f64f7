package quote

import "webquote/internal/domain/entities"

// Mutator is one user intent applied to a selection.
type Mutator func(entities.SelectionState) entities.SelectionState

func SetCategory(s entities.SelectionState, c entities.Category) entities.SelectionState {
	out := s.Clone()
	out.Category = c
	return out
}

func SetStack(s entities.SelectionState, st entities.Stack) entities.SelectionState {
	out := s.Clone()
	out.Stack = st
	return out
}

func SetIncludeHosting(s entities.SelectionState, include bool) entities.SelectionState {
	out := s.Clone()
	out.IncludeHosting = include
	return out
}

// ToggleExtra flips one extra. Storage has no special case here; the engine
// folds it into hosting.
func ToggleExtra(s entities.SelectionState, k entities.ExtraKey) entities.SelectionState {
	out := s.Clone()
	out.Extras = out.Extras.With(k, !s.Extras.Get(k))
	return out
}

// TogglePlugin flips membership of id. Mandatory plugins are locked.
func TogglePlugin(s entities.SelectionState, id string, mandatory bool) entities.SelectionState {
	if mandatory {
		return s
	}
	out := s.Clone()
	out.PluginIDs = toggleID(out.PluginIDs, id)
	return out
}

func ToggleAutomation(s entities.SelectionState, id string) entities.SelectionState {
	out := s.Clone()
	out.AutomationIDs = toggleID(out.AutomationIDs, id)
	return out
}

func ToggleContentService(s entities.SelectionState, id string) entities.SelectionState {
	out := s.Clone()
	out.ContentServiceIDs = toggleID(out.ContentServiceIDs, id)
	return out
}

// SetSupportPackage selects id, or clears the selection when id is already
// selected.
func SetSupportPackage(s entities.SelectionState, id string) entities.SelectionState {
	out := s.Clone()
	if s.SupportPackageID == id {
		out.SupportPackageID = ""
	} else {
		out.SupportPackageID = id
	}
	return out
}

// Apply runs m, reconciles the result against prev and derives the quote of
// the new state in one step.
func Apply(prev entities.SelectionState, m Mutator, cat entities.Catalog) (entities.SelectionState, entities.Derivation) {
	next := Reconcile(prev, m(prev), cat)
	return next, Derive(next, cat)
}

// toggleID works on an already cloned slice.
func toggleID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

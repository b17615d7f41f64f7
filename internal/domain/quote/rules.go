// Package quote turns a selection into a priced, timed quote.
//
// The flow is always: mutator -> Reconcile -> Derive. Mutators and Reconcile
// return new states, Derive recomputes everything from scratch.
package quote

import "webquote/internal/domain/entities"

// Reconcile repairs the plugin selection of next after a transition from
// prev. It must run after every mutator and before Derive.
//
//   - stack switched to template CMS, or category changed while on template
//     CMS: plugins reset to exactly the category's mandatory set.
//   - stack switched to custom code: plugins cleared.
//   - no rule fires while the stack is unset or nothing relevant changed.
func Reconcile(prev, next entities.SelectionState, cat entities.Catalog) entities.SelectionState {
	stackChanged := prev.Stack != next.Stack
	categoryChanged := prev.Category != next.Category
	if !stackChanged && !categoryChanged {
		return next
	}

	switch next.Stack {
	case entities.StackTemplateCMS:
		if next.Category == "" {
			return next
		}
		out := next.Clone()
		out.PluginIDs = cat.MandatoryPluginIDs(next.Category)
		return out
	case entities.StackCustomCode:
		out := next.Clone()
		out.PluginIDs = []string{}
		return out
	}
	return next
}

package quote

import "webquote/internal/domain/entities"

// Choices is a declarative description of a selection, used where a caller
// has all its choices up front (previews, the CLI).
type Choices struct {
	Category          entities.Category   `json:"category,omitempty" yaml:"category,omitempty"`
	Stack             entities.Stack      `json:"stack,omitempty" yaml:"stack,omitempty"`
	ExcludeHosting    bool                `json:"exclude_hosting,omitempty" yaml:"exclude_hosting,omitempty"`
	Extras            []entities.ExtraKey `json:"extras,omitempty" yaml:"extras,omitempty"`
	PluginIDs         []string            `json:"plugin_ids,omitempty" yaml:"plugin_ids,omitempty"`
	AutomationIDs     []string            `json:"automation_ids,omitempty" yaml:"automation_ids,omitempty"`
	ContentServiceIDs []string            `json:"content_service_ids,omitempty" yaml:"content_service_ids,omitempty"`
	SupportPackageID  string              `json:"support_package_id,omitempty" yaml:"support_package_id,omitempty"`
}

// BuildSelection replays c through the mutators and Reconcile, starting from
// an empty selection, in a fixed order: stack, category, hosting, extras,
// plugins, automations, content services, support.
//
// Repeated extra, automation and content ids toggle like repeated clicks
// would. Plugin ids only ever add: ids that are already selected (the
// mandatory set included) or unknown to the category are skipped.
func BuildSelection(c Choices, cat entities.Catalog) entities.SelectionState {
	s := entities.NewSelectionState()
	step := func(m Mutator) {
		s = Reconcile(s, m(s), cat)
	}

	if c.Stack != "" {
		step(func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, c.Stack) })
	}
	if c.Category != "" {
		step(func(cur entities.SelectionState) entities.SelectionState { return SetCategory(cur, c.Category) })
	}
	if c.ExcludeHosting {
		step(func(cur entities.SelectionState) entities.SelectionState { return SetIncludeHosting(cur, false) })
	}
	for _, k := range c.Extras {
		step(func(cur entities.SelectionState) entities.SelectionState { return ToggleExtra(cur, k) })
	}
	for _, id := range c.PluginIDs {
		p, ok := cat.Plugin(s.Category, id)
		if s.Stack != entities.StackTemplateCMS || !ok || s.HasPlugin(id) {
			continue
		}
		step(func(cur entities.SelectionState) entities.SelectionState { return TogglePlugin(cur, id, p.Mandatory) })
	}
	for _, id := range c.AutomationIDs {
		step(func(cur entities.SelectionState) entities.SelectionState { return ToggleAutomation(cur, id) })
	}
	for _, id := range c.ContentServiceIDs {
		step(func(cur entities.SelectionState) entities.SelectionState { return ToggleContentService(cur, id) })
	}
	if c.SupportPackageID != "" {
		step(func(cur entities.SelectionState) entities.SelectionState { return SetSupportPackage(cur, c.SupportPackageID) })
	}
	return s
}

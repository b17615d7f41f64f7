package entities

// Extras holds the on/off state of every generic extra.
type Extras struct {
	Design       bool `json:"design"`
	Multilingual bool `json:"multilingual"`
	Content      bool `json:"content"`
	Storage      bool `json:"storage"`
}

func (e Extras) Get(k ExtraKey) bool {
	switch k {
	case ExtraDesign:
		return e.Design
	case ExtraMultilingual:
		return e.Multilingual
	case ExtraContent:
		return e.Content
	case ExtraStorage:
		return e.Storage
	}
	return false
}

// With returns a copy of e with k set to v. Unknown keys leave e unchanged.
func (e Extras) With(k ExtraKey, v bool) Extras {
	switch k {
	case ExtraDesign:
		e.Design = v
	case ExtraMultilingual:
		e.Multilingual = v
	case ExtraContent:
		e.Content = v
	case ExtraStorage:
		e.Storage = v
	}
	return e
}

// SelectionState is what the user has currently chosen.
//
// An empty Category or Stack means "not chosen yet". The id slices behave as
// sets: no duplicates, insertion order kept for stable output.
//
// A SelectionState is treated as a value: mutators return a new one and
// never modify the slices of the state they were given.
type SelectionState struct {
	Category          Category `json:"category,omitempty"`
	Stack             Stack    `json:"stack,omitempty"`
	Extras            Extras   `json:"extras"`
	PluginIDs         []string `json:"plugin_ids"`
	AutomationIDs     []string `json:"automation_ids"`
	ContentServiceIDs []string `json:"content_service_ids"`
	SupportPackageID  string   `json:"support_package_id,omitempty"`
	IncludeHosting    bool     `json:"include_hosting"`
}

// NewSelectionState returns the initial state of a quote session.
func NewSelectionState() SelectionState {
	return SelectionState{
		PluginIDs:         []string{},
		AutomationIDs:     []string{},
		ContentServiceIDs: []string{},
		IncludeHosting:    true,
	}
}

// Clone returns a deep copy of s.
func (s SelectionState) Clone() SelectionState {
	out := s
	out.PluginIDs = cloneIDs(s.PluginIDs)
	out.AutomationIDs = cloneIDs(s.AutomationIDs)
	out.ContentServiceIDs = cloneIDs(s.ContentServiceIDs)
	return out
}

func (s SelectionState) HasPlugin(id string) bool {
	return containsID(s.PluginIDs, id)
}

func (s SelectionState) HasAutomation(id string) bool {
	return containsID(s.AutomationIDs, id)
}

func (s SelectionState) HasContentService(id string) bool {
	return containsID(s.ContentServiceIDs, id)
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

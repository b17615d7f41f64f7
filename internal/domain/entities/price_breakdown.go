package entities

// Line item names, in the order the engine emits them.
const (
	ItemBaseTechnology     = "Base technology"
	ItemCategoryComplexity = "Category complexity"
	ItemHosting            = "Hosting & infrastructure"
	ItemPlugins            = "Plugins & design"
	ItemAutomation         = "Automation"
	ItemContentServices    = "Content & media services"
	ItemSupport            = "Support"
)

type LineItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PriceBreakdown is the itemized result of a derivation. Items are rounded
// to one decimal each and Total is rounded separately, so the items do not
// always add up to Total exactly.
type PriceBreakdown struct {
	Total float64    `json:"total"`
	Items []LineItem `json:"items"`
}

// Item returns the line item with the given name.
func (b PriceBreakdown) Item(name string) (LineItem, bool) {
	for _, it := range b.Items {
		if it.Name == name {
			return it, true
		}
	}
	return LineItem{}, false
}

// Timeline splits a duration into delivery phases. Weeks assume six working
// days per week.
type Timeline struct {
	Days        int `json:"days"`
	Weeks       int `json:"weeks"`
	Design      int `json:"design_days"`
	Development int `json:"development_days"`
	Testing     int `json:"testing_days"`
}

// Derivation is the complete output of one derive call.
type Derivation struct {
	Breakdown PriceBreakdown `json:"breakdown"`
	Duration  int            `json:"duration"`
	Timeline  Timeline       `json:"timeline"`
}

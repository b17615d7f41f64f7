package entities

// Prices are expressed in millions of the quoting currency, durations in
// working days.

type Category string

const (
	CategoryNews      Category = "news"
	CategoryECommerce Category = "ecommerce"
	CategoryBlog      Category = "blog"
	CategoryCorporate Category = "corporate"
	CategoryPortfolio Category = "portfolio"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryNews, CategoryECommerce, CategoryBlog, CategoryCorporate, CategoryPortfolio}

func (c Category) Valid() bool {
	switch c {
	case CategoryNews, CategoryECommerce, CategoryBlog, CategoryCorporate, CategoryPortfolio:
		return true
	}
	return false
}

type Stack string

const (
	StackTemplateCMS Stack = "template_cms"
	StackCustomCode  Stack = "custom_code"
)

var Stacks = []Stack{StackTemplateCMS, StackCustomCode}

func (s Stack) Valid() bool {
	switch s {
	case StackTemplateCMS, StackCustomCode:
		return true
	}
	return false
}

type ExtraKey string

const (
	ExtraDesign       ExtraKey = "design"
	ExtraMultilingual ExtraKey = "multilingual"
	ExtraContent      ExtraKey = "content"
	// ExtraStorage is priced as part of hosting.
	ExtraStorage ExtraKey = "storage"
)

// ExtraKeys is the fixed iteration order of generic extras.
var ExtraKeys = []ExtraKey{ExtraDesign, ExtraMultilingual, ExtraContent, ExtraStorage}

func (k ExtraKey) Valid() bool {
	switch k {
	case ExtraDesign, ExtraMultilingual, ExtraContent, ExtraStorage:
		return true
	}
	return false
}

type HostingProfile struct {
	Type    string  `json:"type" yaml:"type"`
	Storage string  `json:"storage" yaml:"storage"`
	RAM     string  `json:"ram" yaml:"ram"`
	Price   float64 `json:"price" yaml:"price"`
	Reason  string  `json:"reason" yaml:"reason"`
}

type CategoryProfile struct {
	Label         string         `json:"label" yaml:"label"`
	Multiplier    float64        `json:"multiplier" yaml:"multiplier"`
	AddedDuration int            `json:"added_duration" yaml:"added_duration"`
	Hosting       HostingProfile `json:"hosting" yaml:"hosting"`
}

type StackProfile struct {
	Label        string  `json:"label" yaml:"label"`
	Description  string  `json:"description" yaml:"description"`
	BasePrice    float64 `json:"base_price" yaml:"base_price"`
	BaseDuration int     `json:"base_duration" yaml:"base_duration"`
}

type ExtraProfile struct {
	Label string `json:"label" yaml:"label"`
	// ItemName is the short name used for the line item.
	ItemName    string  `json:"item_name" yaml:"item_name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Duration    int     `json:"duration" yaml:"duration"`
}

type Plugin struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Mandatory   bool    `json:"mandatory" yaml:"mandatory"`
}

type AutomationOption struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
}

type ContentServiceOption struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
}

type SupportPackage struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Price       float64  `json:"price" yaml:"price"`
	Features    []string `json:"features" yaml:"features"`
	Recommended bool     `json:"recommended,omitempty" yaml:"recommended,omitempty"`
}

// Catalog is the immutable reference data every quote is derived from.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Categories      map[Category]CategoryProfile `json:"categories" yaml:"categories"`
	Stacks          map[Stack]StackProfile       `json:"stacks" yaml:"stacks"`
	Extras          map[ExtraKey]ExtraProfile    `json:"extras" yaml:"extras"`
	Plugins         map[Category][]Plugin        `json:"plugins" yaml:"plugins"`
	Automations     []AutomationOption           `json:"automations" yaml:"automations"`
	ContentServices []ContentServiceOption       `json:"content_services" yaml:"content_services"`
	SupportPackages []SupportPackage             `json:"support_packages" yaml:"support_packages"`
}

func (c Catalog) Category(cat Category) (CategoryProfile, bool) {
	p, ok := c.Categories[cat]
	return p, ok
}

func (c Catalog) Stack(s Stack) (StackProfile, bool) {
	p, ok := c.Stacks[s]
	return p, ok
}

func (c Catalog) Extra(k ExtraKey) (ExtraProfile, bool) {
	p, ok := c.Extras[k]
	return p, ok
}

// PluginsFor returns the ordered plugin list of a category (nil if none).
func (c Catalog) PluginsFor(cat Category) []Plugin {
	return c.Plugins[cat]
}

func (c Catalog) Plugin(cat Category, id string) (Plugin, bool) {
	for _, p := range c.Plugins[cat] {
		if p.ID == id {
			return p, true
		}
	}
	return Plugin{}, false
}

// MandatoryPluginIDs returns the mandatory plugin ids of a category in
// catalog order.
func (c Catalog) MandatoryPluginIDs(cat Category) []string {
	ids := []string{}
	for _, p := range c.Plugins[cat] {
		if p.Mandatory {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (c Catalog) Automation(id string) (AutomationOption, bool) {
	for _, a := range c.Automations {
		if a.ID == id {
			return a, true
		}
	}
	return AutomationOption{}, false
}

func (c Catalog) ContentService(id string) (ContentServiceOption, bool) {
	for _, s := range c.ContentServices {
		if s.ID == id {
			return s, true
		}
	}
	return ContentServiceOption{}, false
}

func (c Catalog) SupportPackage(id string) (SupportPackage, bool) {
	for _, p := range c.SupportPackages {
		if p.ID == id {
			return p, true
		}
	}
	return SupportPackage{}, false
}

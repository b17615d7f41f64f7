package response

import "webquote/internal/domain/entities"

// CatalogResponse lists the catalog in display order for rendering a
// selection form.
type CatalogResponse struct {
	Categories      []CategoryResponse              `json:"categories"`
	Stacks          []StackResponse                 `json:"stacks"`
	Extras          []ExtraResponse                 `json:"extras"`
	Automations     []entities.AutomationOption     `json:"automations"`
	ContentServices []entities.ContentServiceOption `json:"content_services"`
	SupportPackages []entities.SupportPackage       `json:"support_packages"`
}

type CategoryResponse struct {
	ID string `json:"id"`
	entities.CategoryProfile
	Plugins []entities.Plugin `json:"plugins"`
}

type StackResponse struct {
	ID string `json:"id"`
	entities.StackProfile
}

type ExtraResponse struct {
	Key string `json:"key"`
	entities.ExtraProfile
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	out := CatalogResponse{
		Categories:      make([]CategoryResponse, 0, len(entities.Categories)),
		Stacks:          make([]StackResponse, 0, len(entities.Stacks)),
		Extras:          make([]ExtraResponse, 0, len(entities.ExtraKeys)),
		Automations:     c.Automations,
		ContentServices: c.ContentServices,
		SupportPackages: c.SupportPackages,
	}
	for _, cat := range entities.Categories {
		p, ok := c.Category(cat)
		if !ok {
			continue
		}
		plugins := c.PluginsFor(cat)
		if plugins == nil {
			plugins = []entities.Plugin{}
		}
		out.Categories = append(out.Categories, CategoryResponse{ID: string(cat), CategoryProfile: p, Plugins: plugins})
	}
	for _, st := range entities.Stacks {
		if p, ok := c.Stack(st); ok {
			out.Stacks = append(out.Stacks, StackResponse{ID: string(st), StackProfile: p})
		}
	}
	for _, k := range entities.ExtraKeys {
		if p, ok := c.Extra(k); ok {
			out.Extras = append(out.Extras, ExtraResponse{Key: string(k), ExtraProfile: p})
		}
	}
	return out
}

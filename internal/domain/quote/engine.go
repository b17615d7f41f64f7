package quote

import (
	"math"

	"webquote/internal/domain/entities"
)

const (
	automationDays     = 2
	contentServiceDays = 3
)

// Derive computes the price breakdown, duration and timeline of s.
//
// Derive is pure and total: ids that do not resolve in cat contribute
// nothing, and an empty selection yields an empty breakdown.
func Derive(s entities.SelectionState, cat entities.Catalog) entities.Derivation {
	var (
		base, multiplier                     = 0.0, 1.0
		hosting, plugins, extras             float64
		automation, contentServices, support float64
		duration                             int
	)
	items := []entities.LineItem{}

	stack, hasStack := cat.Stack(s.Stack)
	if hasStack {
		base = stack.BasePrice
		duration += stack.BaseDuration
		items = append(items, entities.LineItem{Name: entities.ItemBaseTechnology, Value: base})
	}

	category, hasCategory := cat.Category(s.Category)
	if hasCategory {
		multiplier = category.Multiplier
		duration += category.AddedDuration

		if surcharge := base*multiplier - base; hasStack && surcharge > 0 {
			items = append(items, entities.LineItem{Name: entities.ItemCategoryComplexity, Value: Round1(surcharge)})
		}

		if s.IncludeHosting {
			hosting = category.Hosting.Price
			if storage, ok := cat.Extra(entities.ExtraStorage); ok && s.Extras.Storage {
				hosting += storage.Price
				duration += storage.Duration
			}
			items = append(items, entities.LineItem{Name: entities.ItemHosting, Value: Round1(hosting)})
		}
	}

	if s.Stack == entities.StackTemplateCMS && hasCategory {
		for _, id := range s.PluginIDs {
			if p, ok := cat.Plugin(s.Category, id); ok {
				plugins += p.Price
			}
		}
		if plugins > 0 {
			items = append(items, entities.LineItem{Name: entities.ItemPlugins, Value: Round1(plugins)})
		}
	}

	for _, k := range entities.ExtraKeys {
		if k == entities.ExtraStorage || !s.Extras.Get(k) {
			continue
		}
		e, ok := cat.Extra(k)
		if !ok {
			continue
		}
		extras += e.Price
		duration += e.Duration
		items = append(items, entities.LineItem{Name: e.ItemName, Value: e.Price})
	}

	for _, id := range s.AutomationIDs {
		if a, ok := cat.Automation(id); ok {
			automation += a.Price
			duration += automationDays
		}
	}
	if automation > 0 {
		items = append(items, entities.LineItem{Name: entities.ItemAutomation, Value: Round1(automation)})
	}

	for _, id := range s.ContentServiceIDs {
		if c, ok := cat.ContentService(id); ok {
			contentServices += c.Price
			duration += contentServiceDays
		}
	}
	if contentServices > 0 {
		items = append(items, entities.LineItem{Name: entities.ItemContentServices, Value: Round1(contentServices)})
	}

	if s.SupportPackageID != "" {
		if p, ok := cat.SupportPackage(s.SupportPackageID); ok {
			support = p.Price
			items = append(items, entities.LineItem{Name: entities.ItemSupport, Value: support})
		}
	}

	total := base*multiplier + extras + plugins + support + hosting + automation + contentServices

	return entities.Derivation{
		Breakdown: entities.PriceBreakdown{Total: Round1(total), Items: items},
		Duration:  duration,
		Timeline:  PlanTimeline(duration),
	}
}

// Round1 rounds v to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

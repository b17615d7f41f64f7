package catalog

import (
	"errors"
	"fmt"

	"webquote/internal/domain/entities"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks that c covers every category, stack and extra key and that
// prices, durations and ids are sane. Selections are only ever checked
// against a validated catalog.
func Validate(c entities.Catalog) error {
	for _, cat := range entities.Categories {
		p, ok := c.Categories[cat]
		if !ok {
			return fmt.Errorf("%w: missing category %q", ErrInvalidCatalog, cat)
		}
		if p.Multiplier <= 0 {
			return fmt.Errorf("%w: category %q multiplier must be positive", ErrInvalidCatalog, cat)
		}
		if p.AddedDuration < 0 || p.Hosting.Price < 0 {
			return fmt.Errorf("%w: category %q has negative values", ErrInvalidCatalog, cat)
		}
		if err := validatePlugins(cat, c.Plugins[cat]); err != nil {
			return err
		}
	}
	for cat := range c.Categories {
		if !cat.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidCatalog, cat)
		}
	}

	for _, s := range entities.Stacks {
		p, ok := c.Stacks[s]
		if !ok {
			return fmt.Errorf("%w: missing stack %q", ErrInvalidCatalog, s)
		}
		if p.BasePrice < 0 || p.BaseDuration < 0 {
			return fmt.Errorf("%w: stack %q has negative values", ErrInvalidCatalog, s)
		}
	}

	for _, k := range entities.ExtraKeys {
		p, ok := c.Extras[k]
		if !ok {
			return fmt.Errorf("%w: missing extra %q", ErrInvalidCatalog, k)
		}
		if p.Price < 0 || p.Duration < 0 {
			return fmt.Errorf("%w: extra %q has negative values", ErrInvalidCatalog, k)
		}
	}

	seen := map[string]bool{}
	for _, a := range c.Automations {
		if err := checkOption("automation", a.ID, a.Price, seen); err != nil {
			return err
		}
	}
	seen = map[string]bool{}
	for _, s := range c.ContentServices {
		if err := checkOption("content service", s.ID, s.Price, seen); err != nil {
			return err
		}
	}
	seen = map[string]bool{}
	for _, p := range c.SupportPackages {
		if err := checkOption("support package", p.ID, p.Price, seen); err != nil {
			return err
		}
	}
	return nil
}

func validatePlugins(cat entities.Category, plugins []entities.Plugin) error {
	seen := map[string]bool{}
	for _, p := range plugins {
		if err := checkOption(fmt.Sprintf("plugin of %s", cat), p.ID, p.Price, seen); err != nil {
			return err
		}
	}
	return nil
}

func checkOption(kind, id string, price float64, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%w: %s with empty id", ErrInvalidCatalog, kind)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s %q", ErrInvalidCatalog, kind, id)
	}
	if price < 0 {
		return fmt.Errorf("%w: %s %q has a negative price", ErrInvalidCatalog, kind, id)
	}
	seen[id] = true
	return nil
}

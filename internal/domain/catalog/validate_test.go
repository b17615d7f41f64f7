package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webquote/internal/domain/entities"
)

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *entities.Catalog)
	}{
		{name: "missing category", mutate: func(c *entities.Catalog) { delete(c.Categories, entities.CategoryBlog) }},
		{name: "unknown category", mutate: func(c *entities.Catalog) {
			c.Categories["forum"] = c.Categories[entities.CategoryBlog]
		}},
		{name: "zero multiplier", mutate: func(c *entities.Catalog) {
			p := c.Categories[entities.CategoryNews]
			p.Multiplier = 0
			c.Categories[entities.CategoryNews] = p
		}},
		{name: "missing stack", mutate: func(c *entities.Catalog) { delete(c.Stacks, entities.StackCustomCode) }},
		{name: "missing extra", mutate: func(c *entities.Catalog) { delete(c.Extras, entities.ExtraStorage) }},
		{name: "duplicate plugin", mutate: func(c *entities.Catalog) {
			c.Plugins[entities.CategoryBlog] = append(c.Plugins[entities.CategoryBlog], c.Plugins[entities.CategoryBlog][0])
		}},
		{name: "negative automation price", mutate: func(c *entities.Catalog) { c.Automations[0].Price = -1 }},
		{name: "empty support id", mutate: func(c *entities.Catalog) { c.SupportPackages[0].ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, Validate(c), ErrInvalidCatalog)
		})
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Plugins[entities.CategoryBlog][0].Price = 999

	b := Default()
	assert.Equal(t, 4.5, b.Plugins[entities.CategoryBlog][0].Price)
}

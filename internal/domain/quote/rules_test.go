package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

func step(s entities.SelectionState, m Mutator, cat entities.Catalog) entities.SelectionState {
	next, _ := Apply(s, m, cat)
	return next
}

func TestReconcile_TemplateCMSSelectsMandatoryPlugins(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetCategory(cur, entities.CategoryECommerce) }, cat)
	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackTemplateCMS) }, cat)

	assert.Equal(t, cat.MandatoryPluginIDs(entities.CategoryECommerce), s.PluginIDs)
	assert.Equal(t, []string{"elementor-pro", "wp-rocket", "security-pro", "seo-pro", "woodmart-theme", "woo-core", "payment-gateway"}, s.PluginIDs)
}

func TestReconcile_CategoryBecomesSetWhileOnTemplateCMS(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackTemplateCMS) }, cat)
	assert.Empty(t, s.PluginIDs)

	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetCategory(cur, entities.CategoryBlog) }, cat)
	assert.Equal(t, cat.MandatoryPluginIDs(entities.CategoryBlog), s.PluginIDs)
}

func TestReconcile_StackSwitchResets(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{
		Stack:     entities.StackTemplateCMS,
		Category:  entities.CategoryECommerce,
		PluginIDs: []string{"shipping-pro", "sms-panel"},
	}, cat)
	assert.True(t, s.HasPlugin("shipping-pro"))

	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackCustomCode) }, cat)
	assert.Empty(t, s.PluginIDs)

	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackTemplateCMS) }, cat)
	assert.Equal(t, cat.MandatoryPluginIDs(entities.CategoryECommerce), s.PluginIDs)
	assert.False(t, s.HasPlugin("shipping-pro"))
}

func TestReconcile_CategorySwitchDropsOptionalPlugins(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{
		Stack:     entities.StackTemplateCMS,
		Category:  entities.CategoryNews,
		PluginIDs: []string{"amp-pro"},
	}, cat)

	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetCategory(cur, entities.CategoryPortfolio) }, cat)

	assert.Equal(t, cat.MandatoryPluginIDs(entities.CategoryPortfolio), s.PluginIDs)
}

func TestReconcile_NoRuleWithoutStack(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s.PluginIDs = []string{"leftover"}

	next := Reconcile(s, SetCategory(s, entities.CategoryBlog), cat)

	assert.Equal(t, []string{"leftover"}, next.PluginIDs)
}

func TestReconcile_NoRuleWhenNothingChanged(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{
		Stack:     entities.StackTemplateCMS,
		Category:  entities.CategoryBlog,
		PluginIDs: []string{"newsletter"},
	}, cat)

	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetCategory(cur, entities.CategoryBlog) }, cat)
	s = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackTemplateCMS) }, cat)

	assert.True(t, s.HasPlugin("newsletter"))
}

func TestReconcile_DoesNotAliasPrevious(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{Stack: entities.StackTemplateCMS, Category: entities.CategoryBlog}, cat)
	before := s.Clone()

	_ = step(s, func(cur entities.SelectionState) entities.SelectionState { return SetStack(cur, entities.StackCustomCode) }, cat)

	assert.Equal(t, before, s)
}

package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

func itemNames(b entities.PriceBreakdown) []string {
	names := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		names = append(names, it.Name)
	}
	return names
}

func TestDerive_EmptySelection(t *testing.T) {
	d := Derive(entities.NewSelectionState(), catalog.Default())

	assert.Empty(t, d.Breakdown.Items)
	assert.Equal(t, 0.0, d.Breakdown.Total)
	assert.Equal(t, 0, d.Duration)
	assert.Equal(t, entities.Timeline{}, d.Timeline)
}

func TestDerive_CustomCodeECommerce(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{Stack: entities.StackCustomCode, Category: entities.CategoryECommerce}, cat)

	d := Derive(s, cat)

	assert.Equal(t, []entities.LineItem{
		{Name: entities.ItemBaseTechnology, Value: 65},
		{Name: entities.ItemCategoryComplexity, Value: 65.0},
		{Name: entities.ItemHosting, Value: 8.5},
	}, d.Breakdown.Items)
	assert.Equal(t, 138.5, d.Breakdown.Total)
	assert.Equal(t, 40, d.Duration)
}

func TestDerive_TemplateCMSBlog(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{Stack: entities.StackTemplateCMS, Category: entities.CategoryBlog}, cat)

	d := Derive(s, cat)

	assert.Equal(t, []string{entities.ItemBaseTechnology, entities.ItemHosting, entities.ItemPlugins}, itemNames(d.Breakdown))
	plugins, ok := d.Breakdown.Item(entities.ItemPlugins)
	require.True(t, ok)
	assert.Equal(t, 20.0, plugins.Value)
	assert.Equal(t, 37.5, d.Breakdown.Total)
	assert.Equal(t, 12, d.Duration)
}

func TestDerive_StorageFoldsIntoHosting(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{Stack: entities.StackTemplateCMS, Category: entities.CategoryBlog}, cat)
	before := Derive(s, cat)

	s = Reconcile(s, ToggleExtra(s, entities.ExtraStorage), cat)
	after := Derive(s, cat)

	hosting, ok := after.Breakdown.Item(entities.ItemHosting)
	require.True(t, ok)
	assert.Equal(t, 7.0, hosting.Value)
	assert.Equal(t, before.Duration+1, after.Duration)
	assert.Len(t, after.Breakdown.Items, len(before.Breakdown.Items))
	_, hasStorageRow := after.Breakdown.Item("Storage")
	assert.False(t, hasStorageRow)
	assert.Equal(t, 42.0, after.Breakdown.Total)
}

func TestDerive_StorageIgnoredWithoutHosting(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{
		Stack:          entities.StackCustomCode,
		Category:       entities.CategoryBlog,
		ExcludeHosting: true,
		Extras:         []entities.ExtraKey{entities.ExtraStorage},
	}, cat)

	d := Derive(s, cat)

	assert.Equal(t, []string{entities.ItemBaseTechnology}, itemNames(d.Breakdown))
	assert.Equal(t, 65.0, d.Breakdown.Total)
	assert.Equal(t, 32, d.Duration)
}

func TestDerive_Automation(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = ToggleAutomation(s, "social-sync")
	s = ToggleAutomation(s, "crm-sync")

	d := Derive(s, cat)

	item, ok := d.Breakdown.Item(entities.ItemAutomation)
	require.True(t, ok)
	assert.Equal(t, 17.0, item.Value)
	assert.Equal(t, 4, d.Duration)
	assert.Equal(t, 17.0, d.Breakdown.Total)
}

func TestDerive_ContentServices(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = ToggleContentService(s, "voice-over")
	s = ToggleContentService(s, "ai-visuals")

	d := Derive(s, cat)

	item, ok := d.Breakdown.Item(entities.ItemContentServices)
	require.True(t, ok)
	assert.Equal(t, 12.0, item.Value)
	assert.Equal(t, 6, d.Duration)
}

func TestDerive_GenericExtrasInCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = ToggleExtra(s, entities.ExtraContent)
	s = ToggleExtra(s, entities.ExtraDesign)
	s = ToggleExtra(s, entities.ExtraMultilingual)

	d := Derive(s, cat)

	assert.Equal(t, []entities.LineItem{
		{Name: "Design", Value: 25},
		{Name: "Multilingual", Value: 12},
		{Name: "Content", Value: 8},
	}, d.Breakdown.Items)
	assert.Equal(t, 45.0, d.Breakdown.Total)
	assert.Equal(t, 14, d.Duration)
}

func TestDerive_SupportSingleSelect(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s = SetSupportPackage(s, "basic")
	s = SetSupportPackage(s, "pro")

	d := Derive(s, cat)

	count := 0
	for _, it := range d.Breakdown.Items {
		if it.Name == entities.ItemSupport {
			count++
			assert.Equal(t, 28.0, it.Value)
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "pro", s.SupportPackageID)
}

func TestDerive_FreeSupportPackageStillEmitted(t *testing.T) {
	cat := catalog.Default()
	cat.SupportPackages = append(cat.SupportPackages, entities.SupportPackage{ID: "free", Title: "Community"})
	s := SetSupportPackage(entities.NewSelectionState(), "free")

	d := Derive(s, cat)

	item, ok := d.Breakdown.Item(entities.ItemSupport)
	require.True(t, ok)
	assert.Equal(t, 0.0, item.Value)
}

func TestDerive_FreePluginsOnlyOmitsPluginRow(t *testing.T) {
	cat := catalog.Default()
	cat.Plugins[entities.CategoryBlog] = []entities.Plugin{{ID: "free", Name: "Free", Mandatory: true}}
	s := BuildSelection(Choices{Stack: entities.StackTemplateCMS, Category: entities.CategoryBlog}, cat)

	d := Derive(s, cat)

	assert.Equal(t, []string{"free"}, s.PluginIDs)
	_, ok := d.Breakdown.Item(entities.ItemPlugins)
	assert.False(t, ok)
}

func TestDerive_UnknownIDsContributeNothing(t *testing.T) {
	cat := catalog.Default()
	s := entities.NewSelectionState()
	s.Stack = entities.StackTemplateCMS
	s.Category = entities.CategoryBlog
	s.PluginIDs = []string{"ghost", "woo-core", "blog-theme"}
	s.AutomationIDs = []string{"ghost"}
	s.ContentServiceIDs = []string{"ghost"}
	s.SupportPackageID = "ghost"

	d := Derive(s, cat)

	plugins, ok := d.Breakdown.Item(entities.ItemPlugins)
	require.True(t, ok)
	assert.Equal(t, 2.0, plugins.Value)
	assert.Equal(t, []string{entities.ItemBaseTechnology, entities.ItemHosting, entities.ItemPlugins}, itemNames(d.Breakdown))
	assert.Equal(t, 12, d.Duration)
}

func TestDerive_UnknownStackAndCategory(t *testing.T) {
	s := entities.NewSelectionState()
	s.Stack = "cobol"
	s.Category = "forum"

	d := Derive(s, catalog.Default())

	assert.Empty(t, d.Breakdown.Items)
	assert.Equal(t, 0.0, d.Breakdown.Total)
}

func TestDerive_CategoryWithoutStack(t *testing.T) {
	cat := catalog.Default()
	s := SetCategory(entities.NewSelectionState(), entities.CategoryNews)

	d := Derive(s, cat)

	assert.Equal(t, []entities.LineItem{{Name: entities.ItemHosting, Value: 5.8}}, d.Breakdown.Items)
	assert.Equal(t, 5.8, d.Breakdown.Total)
	assert.Equal(t, 5, d.Duration)
}

func TestDerive_ComplexitySurchargeRounded(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{Stack: entities.StackTemplateCMS, Category: entities.CategoryPortfolio, ExcludeHosting: true}, cat)

	d := Derive(s, cat)

	item, ok := d.Breakdown.Item(entities.ItemCategoryComplexity)
	require.True(t, ok)
	assert.Equal(t, 1.5, item.Value)
}

func TestDerive_Totality(t *testing.T) {
	cat := catalog.Default()
	categories := append([]entities.Category{""}, entities.Categories...)
	stacks := append([]entities.Stack{""}, entities.Stacks...)

	for _, c := range categories {
		for _, st := range stacks {
			for _, hosting := range []bool{true, false} {
				s := BuildSelection(Choices{
					Category:         c,
					Stack:            st,
					ExcludeHosting:   !hosting,
					Extras:           entities.ExtraKeys,
					AutomationIDs:    []string{"ai-writer"},
					SupportPackageID: "vip",
				}, cat)

				d := Derive(s, cat)

				assert.GreaterOrEqual(t, d.Breakdown.Total, 0.0)
				assert.GreaterOrEqual(t, d.Duration, 0)
				seen := map[string]bool{}
				for _, it := range d.Breakdown.Items {
					assert.False(t, seen[it.Name], "duplicate item %q", it.Name)
					seen[it.Name] = true
				}
			}
		}
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	cat := catalog.Default()
	s := BuildSelection(Choices{
		Stack:         entities.StackTemplateCMS,
		Category:      entities.CategoryECommerce,
		PluginIDs:     []string{"sms-panel", "torob-api"},
		Extras:        []entities.ExtraKey{entities.ExtraDesign, entities.ExtraStorage},
		AutomationIDs: []string{"ai-chatbot"},
	}, cat)

	assert.Equal(t, Derive(s, cat), Derive(s, cat))
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{19.500000000000004, 19.5},
		{4.46, 4.5},
		{1.04, 1},
		{138.5, 138.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round1(tt.in), "Round1(%v)", tt.in)
	}
}

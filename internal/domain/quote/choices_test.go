package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

func TestBuildSelection(t *testing.T) {
	cat := catalog.Default()

	s := BuildSelection(Choices{
		Category:          entities.CategoryECommerce,
		Stack:             entities.StackTemplateCMS,
		ExcludeHosting:    true,
		Extras:            []entities.ExtraKey{entities.ExtraDesign},
		PluginIDs:         []string{"sms-panel", "woo-core", "amp-pro", "sms-panel"},
		AutomationIDs:     []string{"crm-sync"},
		ContentServiceIDs: []string{"promo-video"},
		SupportPackageID:  "basic",
	}, cat)

	expectedPlugins := append(cat.MandatoryPluginIDs(entities.CategoryECommerce), "sms-panel")
	assert.Equal(t, expectedPlugins, s.PluginIDs)
	assert.False(t, s.IncludeHosting)
	assert.True(t, s.Extras.Design)
	assert.Equal(t, []string{"crm-sync"}, s.AutomationIDs)
	assert.Equal(t, []string{"promo-video"}, s.ContentServiceIDs)
	assert.Equal(t, "basic", s.SupportPackageID)
}

func TestBuildSelection_PluginsIgnoredOnCustomCode(t *testing.T) {
	cat := catalog.Default()

	s := BuildSelection(Choices{
		Category:  entities.CategoryBlog,
		Stack:     entities.StackCustomCode,
		PluginIDs: []string{"newsletter"},
	}, cat)

	assert.Empty(t, s.PluginIDs)
}

func TestBuildSelection_Empty(t *testing.T) {
	assert.Equal(t, entities.NewSelectionState(), BuildSelection(Choices{}, catalog.Default()))
}

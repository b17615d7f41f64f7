package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/catalogfile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDerive_Table(t *testing.T) {
	out, err := run(t, "derive", "--category", "blog", "--stack", "template_cms")
	require.NoError(t, err)

	assert.Contains(t, out, entities.ItemBaseTechnology)
	assert.Contains(t, out, entities.ItemHosting)
	assert.Contains(t, out, "Total: 37.5M")
	assert.Contains(t, out, "category=blog")
}

func TestDerive_JSON(t *testing.T) {
	out, err := run(t, "derive", "--category", "Blog", "--stack", "template_cms", "--plugin", "newsletter", "-o", "json")
	require.NoError(t, err)

	var body struct {
		Selection struct {
			PluginIDs []string `json:"plugin_ids"`
		} `json:"selection"`
		Quote struct {
			Total float64 `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 40.0, body.Quote.Total)
	assert.Contains(t, body.Selection.PluginIDs, "newsletter")
}

func TestDerive_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category: blog\nstack: template_cms\n"), 0o600))

	out, err := run(t, "derive", "--from", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 37.5`)
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown stack", args: []string{"derive", "--stack", "wix"}},
		{name: "plugins on custom code", args: []string{"derive", "--category", "blog", "--stack", "custom_code", "--plugin", "newsletter"}},
		{name: "unknown output", args: []string{"derive", "-o", "xml"}},
		{name: "missing catalog", args: []string{"derive", "--catalog", "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_YAMLRoundTrip(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	parsed, err := catalogfile.Parse([]byte(out), nil)
	require.NoError(t, err)

	def := catalog.Default()
	assert.Equal(t, def.Categories, parsed.Categories)
	assert.Equal(t, def.Stacks, parsed.Stacks)
	assert.Equal(t, def.Extras, parsed.Extras)
	assert.Len(t, parsed.Automations, len(def.Automations))
	assert.Len(t, parsed.SupportPackages, len(def.SupportPackages))
}

func TestCatalog_JSON(t *testing.T) {
	out, err := run(t, "catalog", "-o", "json")
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body, "categories")
	assert.Contains(t, body, "support_packages")
}

// Package catalogfile loads a quote catalog from a YAML file.
package catalogfile

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

// Load reads the catalog at path. Top-level sections missing from the file
// keep their built-in values. Plugin lists keyed by an unknown category are
// dropped with a warning; anything else invalid fails the load.
func Load(path string, logger *zap.Logger) (entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, logger)
}

func Parse(data []byte, logger *zap.Logger) (entities.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var file entities.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return entities.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	out := catalog.Default()
	if len(file.Categories) > 0 {
		out.Categories = file.Categories
	}
	if len(file.Stacks) > 0 {
		out.Stacks = file.Stacks
	}
	if len(file.Extras) > 0 {
		out.Extras = file.Extras
	}
	if len(file.Plugins) > 0 {
		out.Plugins = map[entities.Category][]entities.Plugin{}
		for cat, plugins := range file.Plugins {
			if !cat.Valid() {
				logger.Warn("skipping plugins of unknown category", zap.String("category", string(cat)))
				continue
			}
			out.Plugins[cat] = plugins
		}
	}
	if len(file.Automations) > 0 {
		out.Automations = file.Automations
	}
	if len(file.ContentServices) > 0 {
		out.ContentServices = file.ContentServices
	}
	if len(file.SupportPackages) > 0 {
		out.SupportPackages = file.SupportPackages
	}

	if err := catalog.Validate(out); err != nil {
		return entities.Catalog{}, err
	}
	return out, nil
}

package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"dimred/internal/spec"
	"dimred/internal/transform"
)

const SupportedSchema = "v1"

//go:embed default_catalog.yml
var defaultCatalog []byte

// LoadCatalog parses a pipeline catalog YAML and validates it. An empty path
// selects the built-in catalog.
func LoadCatalog(path string) (spec.Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return spec.Catalog{}, err
	}
	return ParseCatalog(raw)
}

func DefaultCatalog() spec.Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("config: built-in catalog is invalid: %v", err))
	}
	return c
}

func ParseCatalog(raw []byte) (spec.Catalog, error) {
	var cat spec.Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return cat, err
	}
	if cat.SchemaVersion == "" {
		cat.SchemaVersion = SupportedSchema
	}
	if cat.SchemaVersion != SupportedSchema {
		return cat, fmt.Errorf("catalog schema_version %q not supported (want %q)", cat.SchemaVersion, SupportedSchema)
	}
	if err := validateCatalog(cat); err != nil {
		return cat, err
	}
	return cat, nil
}

func validateCatalog(cat spec.Catalog) error {
	if len(cat.Pipelines) == 0 {
		return fmt.Errorf("catalog: no pipelines")
	}
	kinds := transform.Kinds()
	seen := make(map[string]struct{}, len(cat.Pipelines))
	for i, p := range cat.Pipelines {
		if p.Name == "" {
			return fmt.Errorf("catalog: pipeline #%d has no name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("catalog: duplicate pipeline %q", p.Name)
		}
		seen[p.Name] = struct{}{}

		switch {
		case p.Transform != nil && len(p.Chain) > 0:
			return fmt.Errorf("catalog: pipeline %q sets both transform and chain", p.Name)
		case p.Transform == nil && len(p.Chain) == 0:
			return fmt.Errorf("catalog: pipeline %q needs a transform or a non-empty chain", p.Name)
		}
		for j, s := range p.Steps() {
			if s.Kind == "" {
				return fmt.Errorf("catalog: pipeline %q step %d has no kind", p.Name, j)
			}
			if !slices.Contains(kinds, s.Kind) {
				return fmt.Errorf("catalog: pipeline %q step %d: unknown kind %q (have %v)", p.Name, j, s.Kind, kinds)
			}
			// parameter errors belong to startup, not to the first Fit
			if _, err := transform.New(s.Kind, transform.Params{Components: s.Components, Seed: s.Seed}); err != nil {
				return fmt.Errorf("catalog: pipeline %q step %d: %w", p.Name, j, err)
			}
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/domain"
)

// TaxonomyEntry is one seeded lookup value
type TaxonomyEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// TaxonomySeed lists the lookup values of every taxonomy kind
type TaxonomySeed struct {
	Sectors    []TaxonomyEntry `yaml:"sectors"`
	Categories []TaxonomyEntry `yaml:"categories"`
	Industries []TaxonomyEntry `yaml:"industries"`
}

// ParseTaxonomySeed decodes a YAML seed file and rejects unnamed entries
func ParseTaxonomySeed(data []byte) (*TaxonomySeed, error) {
	var seed TaxonomySeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for kind, entries := range seed.byKind() {
		for i, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("%s entry %d has no name", kind, i)
			}
		}
	}

	return &seed, nil
}

func (s *TaxonomySeed) byKind() map[domain.TaxonomyKind][]TaxonomyEntry {
	return map[domain.TaxonomyKind][]TaxonomyEntry{
		domain.TaxonomySector:   s.Sectors,
		domain.TaxonomyCategory: s.Categories,
		domain.TaxonomyIndustry: s.Industries,
	}
}

// ApplyTaxonomySeed saves every entry by name and returns the number saved
func ApplyTaxonomySeed(ctx context.Context, exec executor.Executor, seed *TaxonomySeed) (int, error) {
	saved := 0
	for _, kind := range []domain.TaxonomyKind{domain.TaxonomySector, domain.TaxonomyCategory, domain.TaxonomyIndustry} {
		for _, e := range seed.byKind()[kind] {
			if _, err := exec.SaveTaxonomy(ctx, kind, &dto.SaveTaxonomyRequest{
				Name:        e.Name,
				Description: e.Description,
			}); err != nil {
				return saved, fmt.Errorf("failed to save %s %q: %w", kind, e.Name, err)
			}
			saved++
		}
	}
	return saved, nil
}

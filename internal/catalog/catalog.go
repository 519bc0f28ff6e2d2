// Package catalog holds the fixed option lists the generators draw from:
// need labels, neighborhoods, partner names, address parts and the
// per-category activity phrases. A default catalog is embedded; a YAML file
// with the same layout can replace it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/wellow/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Catalog is the developer-supplied asset behind every generated record.
type Catalog struct {
	NeedLabels      []string                     `yaml:"need_labels"`
	Neighborhoods   []string                     `yaml:"neighborhoods"`
	PartnerNames    []string                     `yaml:"partner_names"`
	Streets         []string                     `yaml:"streets"`
	FirstNames      []string                     `yaml:"first_names"`
	LastNames       []string                     `yaml:"last_names"`
	Centroid        Centroid                     `yaml:"centroid"`
	ActivityPhrases map[domain.Category][]string `yaml:"activity_phrases"`
	Months          []string                     `yaml:"months"`
}

// Centroid is the point partner coordinates cluster around. Spread is the
// maximum offset in degrees on each axis.
type Centroid struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Spread    float64 `yaml:"spread"`
}

// Default returns a fresh copy of the embedded catalog. It panics only if
// the embedded asset itself is broken, which the package tests rule out.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Phrases returns the activity phrases for a category.
func (c *Catalog) Phrases(cat domain.Category) []string {
	return c.ActivityPhrases[cat]
}

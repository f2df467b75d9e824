// Package catalog holds the static module catalog shown in the dashboard sidebar.
//
// The catalog is embedded as YAML and parsed once at startup. Modules are
// immutable after Load; callers receive copies of the slice headers but must not
// mutate the returned values.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed modules.yaml
var modulesYAML []byte

// DefaultModuleID is the module shown when nothing else is active.
const DefaultModuleID = "client-orbit"

// Trend is the direction of a feature metric.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Metric is a headline number attached to a feature.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Trend Trend  `yaml:"trend"`
}

// Feature is one capability card inside a module workspace.
type Feature struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Metrics     []Metric `yaml:"metrics"`
	Actions     []string `yaml:"actions"`
}

// Module describes one product module.
type Module struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Tagline  string    `yaml:"tagline"`
	Category string    `yaml:"category"`
	Icon     string    `yaml:"icon"`
	Features []Feature `yaml:"features"`
}

// Catalog is the ordered set of modules.
type Catalog struct {
	modules []Module
	byID    map[string]int
}

// Load parses the embedded module catalog.
func Load() (*Catalog, error) {
	return Parse(modulesYAML)
}

// Parse builds a catalog from YAML. Module ids must be unique and names non-empty.
func Parse(data []byte) (*Catalog, error) {
	var modules []Module
	if err := yaml.Unmarshal(data, &modules); err != nil {
		return nil, fmt.Errorf("parse module catalog: %w", err)
	}
	c := &Catalog{
		modules: modules,
		byID:    make(map[string]int, len(modules)),
	}
	for i, m := range modules {
		if m.ID == "" || strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("module %d: id and name are required", i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("module %q: duplicate id", m.ID)
		}
		for _, f := range m.Features {
			for _, metric := range f.Metrics {
				switch metric.Trend {
				case TrendUp, TrendDown, TrendFlat, "":
				default:
					return nil, fmt.Errorf("module %q feature %q: unknown trend %q", m.ID, f.ID, metric.Trend)
				}
			}
		}
		c.byID[m.ID] = i
	}
	return c, nil
}

// Modules returns all modules in display order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Get returns the module with the given id.
func (c *Catalog) Get(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

// Default returns the default module, falling back to the first module.
func (c *Catalog) Default() Module {
	if m, ok := c.Get(DefaultModuleID); ok {
		return m
	}
	if len(c.modules) > 0 {
		return c.modules[0]
	}
	return Module{}
}

// Resolve returns the module for id, or the default module when id is unknown.
func (c *Catalog) Resolve(id string) Module {
	if m, ok := c.Get(id); ok {
		return m
	}
	return c.Default()
}

// Filter returns the modules matching a free-text search term.
// An empty or whitespace-only term matches everything.
func (c *Catalog) Filter(term string) []Module {
	if strings.TrimSpace(term) == "" {
		return c.modules
	}
	needle := strings.ToLower(term)
	var out []Module
	for _, m := range c.modules {
		if m.matchesBase(needle) || m.matchesFeature(needle) {
			out = append(out, m)
		}
	}
	return out
}

// MatchesQuery reports whether a lowercased query is contained in the module's
// name, tagline, or any feature text. Category is not considered.
func (m Module) MatchesQuery(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(m.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(m.Tagline), lowerQuery) ||
		m.matchesFeature(lowerQuery)
}

func (m Module) matchesBase(needle string) bool {
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Tagline), needle) ||
		strings.Contains(strings.ToLower(m.Category), needle)
}

func (m Module) matchesFeature(needle string) bool {
	for _, f := range m.Features {
		if strings.Contains(strings.ToLower(f.Title+" "+f.Description), needle) {
			return true
		}
	}
	return false
}

// EffectiveActive keeps the active module while it is visible in the filtered
// list. When the filter hides it, the first visible module wins. An empty
// filtered list leaves the active module unchanged.
func EffectiveActive(filtered []Module, active string) string {
	if len(filtered) == 0 {
		return active
	}
	for _, m := range filtered {
		if m.ID == active {
			return active
		}
	}
	return filtered[0].ID
}

// Recommendation is a suggested module shown in the assistant panel.
type Recommendation struct {
	ID          string
	Title       string
	Description string
}

// Recommendations returns the first n modules as suggestions.
func Recommendations(modules []Module, n int) []Recommendation {
	n = max(0, min(n, len(modules)))
	out := make([]Recommendation, 0, n)
	for _, m := range modules[:n] {
		out = append(out, Recommendation{ID: m.ID, Title: m.Name, Description: m.Tagline})
	}
	return out
}

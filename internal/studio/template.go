package studio

import "slices"

// Kind is the visual shape a block renders as.
type Kind string

const (
	KindMetric Kind = "metric"
	KindTable  Kind = "table"
	KindForm   Kind = "form"
	KindChart  Kind = "chart"
)

func (k Kind) String() string {
	return string(k)
}

// BlockTemplate is an immutable palette entry.
type BlockTemplate struct {
	ID            string
	Name          string
	Description   string
	Kind          Kind
	DefaultFields []string
}

// Templates is a closed, ordered set of block templates.
type Templates struct {
	list []BlockTemplate
}

// NewTemplates builds a template set. Later duplicates of an id are dropped.
func NewTemplates(templates ...BlockTemplate) *Templates {
	t := &Templates{}
	for _, tmpl := range templates {
		if _, exists := t.Get(tmpl.ID); exists || tmpl.ID == "" {
			continue
		}
		tmpl.DefaultFields = slices.Clone(tmpl.DefaultFields)
		t.list = append(t.list, tmpl)
	}
	return t
}

// BuiltinTemplates returns the studio's stock palette.
func BuiltinTemplates() *Templates {
	return NewTemplates(
		BlockTemplate{
			ID:            "widget-metric",
			Name:          "Metric Tile",
			Description:   "Highlight KPIs like premium, claims ratio, or retention.",
			Kind:          KindMetric,
			DefaultFields: []string{"Label", "Value", "Trend"},
		},
		BlockTemplate{
			ID:            "widget-table",
			Name:          "Data Table",
			Description:   "Display structured lists from any module dataset.",
			Kind:          KindTable,
			DefaultFields: []string{"Column A", "Column B", "Column C"},
		},
		BlockTemplate{
			ID:            "widget-form",
			Name:          "Smart Form",
			Description:   "Collect information with validation and AI suggestions.",
			Kind:          KindForm,
			DefaultFields: []string{"Field A", "Field B", "Field C"},
		},
		BlockTemplate{
			ID:            "widget-chart",
			Name:          "Insight Chart",
			Description:   "Visualize performance trends, distribution, and forecasts.",
			Kind:          KindChart,
			DefaultFields: []string{"Metric Name", "Value"},
		},
	)
}

// Get looks up a template by id. The returned template's fields are a copy.
func (t *Templates) Get(id string) (BlockTemplate, bool) {
	for _, tmpl := range t.list {
		if tmpl.ID == id {
			tmpl.DefaultFields = slices.Clone(tmpl.DefaultFields)
			return tmpl, true
		}
	}
	return BlockTemplate{}, false
}

// All returns the templates in palette order.
func (t *Templates) All() []BlockTemplate {
	out := make([]BlockTemplate, len(t.list))
	for i, tmpl := range t.list {
		tmpl.DefaultFields = slices.Clone(tmpl.DefaultFields)
		out[i] = tmpl
	}
	return out
}

// Len returns the number of templates.
func (t *Templates) Len() int {
	return len(t.list)
}

package seo

// PageContext is the per-call bag of values the text variants and template
// overrides draw from. It is built fresh for every page and never mutated
// after construction.
type PageContext struct {
	RegionName     string
	RegionSlug     string
	RegionLocative string
	EntityName     string
	EntitySlug     string
	Category       string
	PriceRange     string
	SellerCount    int
}

// TemplateContext exposes the page context as the nested map consumed by
// admin override templates, e.g. {{region.locative}} or {{entity.name}}.
func (c PageContext) TemplateContext() map[string]any {
	return map[string]any{
		"region": map[string]any{
			"name":     c.RegionName,
			"slug":     c.RegionSlug,
			"locative": c.RegionLocative,
		},
		"entity": map[string]any{
			"name":     c.EntityName,
			"slug":     c.EntitySlug,
			"category": c.Category,
		},
		"price": map[string]any{
			"range": c.PriceRange,
		},
		"sellers": map[string]any{
			"count": c.SellerCount,
		},
	}
}

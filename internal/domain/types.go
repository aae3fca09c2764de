package domain

// Region identifies one geographic market. The slug is the stable identifier
// used in URLs and selection keys; the name is the display form and may be
// localized upstream.
type Region struct {
	Slug string
	Name string
}

// Listing carries the collaborator-supplied record for a service, product,
// category entry or company. Name is nil when the data source has no
// localized display name, in which case consumers fall back to the slug.
type Listing struct {
	Name     *string
	Slug     string
	Category *string
}

// SellerOffer is a single seller's price entry. Nil means unknown, never
// zero. PriceMax defaults to PriceMin when absent.
type SellerOffer struct {
	PriceMin *float64
	PriceMax *float64
	Currency string
}

// Rating aggregates review feedback for a product or company. Value is only
// meaningful when Count is positive.
type Rating struct {
	Value float64
	Count int
}

// SeoOverrides holds raw admin-authored text for a page. Fields may contain
// {{path.to.value}} placeholders and take precedence over generated copy
// when they render to a non-empty string.
type SeoOverrides struct {
	Title       string
	Description string
	H1          string
	Body        string
}

// CatalogEntry is one row of a region catalog listing, used to build
// ItemList structured data.
type CatalogEntry struct {
	Name string
	Slug string
}

// Package schemaorg emits schema.org JSON-LD nodes for marketplace pages.
// The JSON key names are a wire-format contract with search engines and must
// not change.
package schemaorg

import (
	"math"
	"strings"

	"github.com/uslugi-market/api/internal/domain"
	"github.com/uslugi-market/api/internal/seo"
)

// Context is the schema.org vocabulary URL shared by every emitted graph.
const Context = "https://schema.org"

// ListItem is one ordered entry of a BreadcrumbList or ItemList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Crumb is one breadcrumb level supplied by the page assembler.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList is the schema.org breadcrumb trail node.
type BreadcrumbList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// NewBreadcrumbList builds the breadcrumb node, skipping crumbs without a
// name. Returns nil when nothing usable remains.
func NewBreadcrumbList(crumbs []Crumb) *BreadcrumbList {
	elements := make([]ListItem, 0, len(crumbs))
	for _, crumb := range crumbs {
		name := strings.TrimSpace(crumb.Name)
		if name == "" {
			continue
		}
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: len(elements) + 1,
			Name:     name,
			Item:     strings.TrimSpace(crumb.URL),
		})
	}
	if len(elements) == 0 {
		return nil
	}
	return &BreadcrumbList{Type: "BreadcrumbList", ItemListElement: elements}
}

// SearchAction describes the site search entry point. The target keeps the
// literal {search_term_string} placeholder.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSite is the site-level node carried on every page.
type WebSite struct {
	Type            string        `json:"@type"`
	URL             string        `json:"url"`
	Name            string        `json:"name"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

// NewWebSite builds the WebSite node with its SearchAction. Returns nil when
// the identifying fields are missing.
func NewWebSite(name, url, searchTarget string) *WebSite {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil
	}
	node := &WebSite{Type: "WebSite", URL: url, Name: name}
	if target := strings.TrimSpace(searchTarget); target != "" {
		node.PotentialAction = &SearchAction{
			Type:       "SearchAction",
			Target:     target,
			QueryInput: "required name=search_term_string",
		}
	}
	return node
}

// WebSiteRef links a page to its parent site by @id.
type WebSiteRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// ImageObject wraps an image URL for primaryImageOfPage.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// WebPage is the page node; Type is "WebPage" or "CollectionPage".
type WebPage struct {
	Type               string       `json:"@type"`
	URL                string       `json:"url"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	IsPartOf           *WebSiteRef  `json:"isPartOf,omitempty"`
	InLanguage         string       `json:"inLanguage,omitempty"`
	PrimaryImageOfPage *ImageObject `json:"primaryImageOfPage,omitempty"`
}

// WebPageInput feeds NewWebPage.
type WebPageInput struct {
	Collection  bool
	URL         string
	Name        string
	Description string
	SiteURL     string
	Language    string
	Image       string
}

// NewWebPage builds the page node. Returns nil when name or url is missing.
func NewWebPage(input WebPageInput) *WebPage {
	name := strings.TrimSpace(input.Name)
	url := strings.TrimSpace(input.URL)
	if name == "" || url == "" {
		return nil
	}
	nodeType := "WebPage"
	if input.Collection {
		nodeType = "CollectionPage"
	}
	node := &WebPage{
		Type:        nodeType,
		URL:         url,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		InLanguage:  strings.TrimSpace(input.Language),
	}
	if site := strings.TrimSpace(input.SiteURL); site != "" {
		node.IsPartOf = &WebSiteRef{Type: "WebSite", ID: site}
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		node.PrimaryImageOfPage = &ImageObject{Type: "ImageObject", URL: image}
	}
	return node
}

// City is the areaServed value for region-scoped nodes.
type City struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Offer is a single-seller price.
type Offer struct {
	Type          string  `json:"@type"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
}

// AggregateOffer summarizes the price range across sellers.
type AggregateOffer struct {
	Type          string  `json:"@type"`
	LowPrice      float64 `json:"lowPrice"`
	HighPrice     float64 `json:"highPrice"`
	OfferCount    int     `json:"offerCount"`
	PriceCurrency string  `json:"priceCurrency"`
}

// AggregateRating carries review statistics. Only emitted when a numeric
// rating and a positive review count both exist.
type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

// Service is the region x service node.
type Service struct {
	Type       string `json:"@type"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	AreaServed *City  `json:"areaServed,omitempty"`
	Offers     any    `json:"offers,omitempty"`
}

// NewService builds the Service node. Returns nil when name or url is
// missing; offers are omitted entirely when no finite price exists.
func NewService(name, url, regionName string, price seo.PriceInfo, sellerCount int) *Service {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil
	}
	return &Service{
		Type:       "Service",
		Name:       name,
		URL:        url,
		AreaServed: cityNode(regionName),
		Offers:     offersValue(price, sellerCount),
	}
}

// Brand names the product manufacturer.
type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ProductGroup links a variant back to its parent product family.
type ProductGroup struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Product is the region x product node.
type Product struct {
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Brand           *Brand           `json:"brand,omitempty"`
	Model           string           `json:"model,omitempty"`
	IsVariantOf     *ProductGroup    `json:"isVariantOf,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Offers          any              `json:"offers,omitempty"`
}

// ProductInput feeds NewProduct.
type ProductInput struct {
	Name        string
	URL         string
	Price       seo.PriceInfo
	SellerCount int
	Brand       string
	Model       string
	VariantOf   string
	Rating      *domain.Rating
}

// NewProduct builds the Product node. Returns nil when name or url is
// missing. Offers and aggregateRating follow the same conditional-emission
// rules as the other nodes.
func NewProduct(input ProductInput) *Product {
	name := strings.TrimSpace(input.Name)
	url := strings.TrimSpace(input.URL)
	if name == "" || url == "" {
		return nil
	}
	node := &Product{
		Type:            "Product",
		Name:            name,
		URL:             url,
		Model:           strings.TrimSpace(input.Model),
		AggregateRating: ratingNode(input.Rating),
		Offers:          offersValue(input.Price, input.SellerCount),
	}
	if brand := strings.TrimSpace(input.Brand); brand != "" {
		node.Brand = &Brand{Type: "Brand", Name: brand}
	}
	if parent := strings.TrimSpace(input.VariantOf); parent != "" {
		node.IsVariantOf = &ProductGroup{Type: "ProductGroup", Name: parent}
	}
	return node
}

// LocalBusiness is the company node.
type LocalBusiness struct {
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	AreaServed      *City            `json:"areaServed,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

// NewLocalBusiness builds the company node. Returns nil when name or url is
// missing.
func NewLocalBusiness(name, url, regionName string, rating *domain.Rating) *LocalBusiness {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil
	}
	return &LocalBusiness{
		Type:            "LocalBusiness",
		Name:            name,
		URL:             url,
		AreaServed:      cityNode(regionName),
		AggregateRating: ratingNode(rating),
	}
}

// ItemList is the ordered listing node for catalog pages.
type ItemList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
	NumberOfItems   int        `json:"numberOfItems"`
}

// NewItemList builds the listing node, skipping entries without a name.
// Returns nil when nothing usable remains.
func NewItemList(entries []ListItem) *ItemList {
	elements := make([]ListItem, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: len(elements) + 1,
			Name:     name,
			URL:      strings.TrimSpace(entry.URL),
		})
	}
	if len(elements) == 0 {
		return nil
	}
	return &ItemList{Type: "ItemList", ItemListElement: elements, NumberOfItems: len(elements)}
}

func cityNode(regionName string) *City {
	name := strings.TrimSpace(regionName)
	if name == "" {
		return nil
	}
	return &City{Type: "City", Name: name}
}

// offersValue maps the aggregated range onto schema.org price structures.
// Nil when no finite price exists anywhere: schema.org disallows an Offer
// with no price semantics, so the field must be absent rather than zeroed.
func offersValue(info seo.PriceInfo, sellerCount int) any {
	if info.Min == nil && info.Max == nil {
		return nil
	}

	low := info.Min
	if low == nil {
		low = info.Max
	}
	high := info.Max
	if high == nil {
		high = info.Min
	}

	currency := strings.ToUpper(strings.TrimSpace(info.Currency))
	if currency == "" {
		currency = seo.DefaultCurrency
	}
	if sellerCount < 1 {
		sellerCount = 1
	}

	if sellerCount == 1 && *low == *high {
		return &Offer{Type: "Offer", Price: *low, PriceCurrency: currency}
	}
	return &AggregateOffer{
		Type:          "AggregateOffer",
		LowPrice:      *low,
		HighPrice:     *high,
		OfferCount:    sellerCount,
		PriceCurrency: currency,
	}
}

func ratingNode(rating *domain.Rating) *AggregateRating {
	if rating == nil || rating.Count <= 0 {
		return nil
	}
	if math.IsNaN(rating.Value) || math.IsInf(rating.Value, 0) {
		return nil
	}
	return &AggregateRating{Type: "AggregateRating", RatingValue: rating.Value, ReviewCount: rating.Count}
}

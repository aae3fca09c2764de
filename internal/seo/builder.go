package seo

import (
	"strings"

	"github.com/uslugi-market/api/internal/domain"
	"github.com/uslugi-market/api/internal/platform/textutil"
)

// GeneratedSeo is the page-head metadata produced for one page.
type GeneratedSeo struct {
	Title       string
	Description string
	Canonical   string
}

// Builder assembles titles, descriptions and canonical URLs for every page
// kind. It holds only the site base URL; all entity data arrives per call
// and nothing is cached, so a single Builder is safe for concurrent use.
type Builder struct {
	baseURL string
}

// NewBuilder constructs a Builder rooted at the given absolute site URL.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// RegionPageInput feeds the region landing page.
type RegionPageInput struct {
	Region    domain.Region
	Overrides domain.SeoOverrides
}

// CatalogPageInput feeds the region catalog listing, optionally narrowed to
// one category.
type CatalogPageInput struct {
	Region       domain.Region
	CategoryName *string
	CategorySlug string
	Overrides    domain.SeoOverrides
}

// ServicePageInput feeds a region x service page.
type ServicePageInput struct {
	Region      domain.Region
	Service     domain.Listing
	Offers      []domain.SellerOffer
	SellerCount int
	Overrides   domain.SeoOverrides
}

// ProductPageInput feeds a region x product page.
type ProductPageInput struct {
	Region      domain.Region
	Product     domain.Listing
	Offers      []domain.SellerOffer
	SellerCount int
	Overrides   domain.SeoOverrides
}

// CompanyPageInput feeds a region x company page.
type CompanyPageInput struct {
	Region    domain.Region
	Company   domain.Listing
	Overrides domain.SeoOverrides
}

// Region builds metadata for the region landing page.
func (b *Builder) Region(input RegionPageInput) (GeneratedSeo, PageContext) {
	ctx := b.regionContext(input.Region)
	key := "region:" + textutil.NormalizeSlug(input.Region.Slug)
	return b.generate(key, regionTitlePool, regionDescriptionPool, ctx, b.RegionURL(input.Region.Slug), input.Overrides), ctx
}

// Catalog builds metadata for the region catalog, with or without a
// category filter.
func (b *Builder) Catalog(input CatalogPageInput) (GeneratedSeo, PageContext) {
	ctx := b.regionContext(input.Region)
	categorySlug := textutil.NormalizeSlug(input.CategorySlug)
	if input.CategoryName != nil && strings.TrimSpace(*input.CategoryName) != "" {
		ctx.Category = strings.TrimSpace(*input.CategoryName)
	} else if categorySlug != "" {
		ctx.Category = categorySlug
	}

	keySuffix := categorySlug
	if keySuffix == "" {
		keySuffix = "all"
	}
	key := "catalog:" + textutil.NormalizeSlug(input.Region.Slug) + ":" + keySuffix
	return b.generate(key, catalogTitlePool, catalogDescriptionPool, ctx, b.CatalogURL(input.Region.Slug, categorySlug), input.Overrides), ctx
}

// Service builds metadata for a region x service page.
func (b *Builder) Service(input ServicePageInput) (GeneratedSeo, PageContext) {
	ctx := b.regionContext(input.Region)
	ctx.EntityName = displayName(input.Service)
	ctx.EntitySlug = textutil.NormalizeSlug(input.Service.Slug)
	if input.Service.Category != nil {
		ctx.Category = strings.TrimSpace(*input.Service.Category)
	}
	ctx.PriceRange = knownPriceRange(input.Offers)
	ctx.SellerCount = input.SellerCount

	key := "service:" + textutil.NormalizeSlug(input.Region.Slug) + ":" + ctx.EntitySlug
	return b.generate(key, serviceTitlePool, serviceDescriptionPool, ctx, b.ServiceURL(input.Region.Slug, input.Service.Slug), input.Overrides), ctx
}

// Product builds metadata for a region x product page.
func (b *Builder) Product(input ProductPageInput) (GeneratedSeo, PageContext) {
	ctx := b.regionContext(input.Region)
	ctx.EntityName = displayName(input.Product)
	ctx.EntitySlug = textutil.NormalizeSlug(input.Product.Slug)
	if input.Product.Category != nil {
		ctx.Category = strings.TrimSpace(*input.Product.Category)
	}
	ctx.PriceRange = knownPriceRange(input.Offers)
	ctx.SellerCount = input.SellerCount

	key := "product:" + textutil.NormalizeSlug(input.Region.Slug) + ":" + ctx.EntitySlug
	return b.generate(key, productTitlePool, productDescriptionPool, ctx, b.ProductURL(input.Region.Slug, input.Product.Slug), input.Overrides), ctx
}

// Company builds metadata for a region x company page.
func (b *Builder) Company(input CompanyPageInput) (GeneratedSeo, PageContext) {
	ctx := b.regionContext(input.Region)
	ctx.EntityName = displayName(input.Company)
	ctx.EntitySlug = textutil.NormalizeSlug(input.Company.Slug)

	key := "company:" + textutil.NormalizeSlug(input.Region.Slug) + ":" + ctx.EntitySlug
	return b.generate(key, companyTitlePool, companyDescriptionPool, ctx, b.CompanyURL(input.Region.Slug, input.Company.Slug), input.Overrides), ctx
}

// SiteURL returns the absolute site root.
func (b *Builder) SiteURL() string { return b.baseURL }

// SearchURL returns the site search URL template used by the WebSite
// SearchAction node; the {search_term_string} placeholder is literal.
func (b *Builder) SearchURL() string {
	return b.baseURL + "/search?q={search_term_string}"
}

// RegionURL composes the canonical region landing page URL.
func (b *Builder) RegionURL(regionSlug string) string {
	return b.baseURL + "/" + textutil.NormalizeSlug(regionSlug)
}

// CatalogURL composes the canonical catalog URL, with an optional category
// path segment.
func (b *Builder) CatalogURL(regionSlug, categorySlug string) string {
	url := b.RegionURL(regionSlug) + "/catalog"
	if slug := textutil.NormalizeSlug(categorySlug); slug != "" {
		url += "/" + slug
	}
	return url
}

// ServiceURL composes the canonical service page URL.
func (b *Builder) ServiceURL(regionSlug, serviceSlug string) string {
	return b.RegionURL(regionSlug) + "/services/" + textutil.NormalizeSlug(serviceSlug)
}

// ProductURL composes the canonical product page URL.
func (b *Builder) ProductURL(regionSlug, productSlug string) string {
	return b.RegionURL(regionSlug) + "/products/" + textutil.NormalizeSlug(productSlug)
}

// CompanyURL composes the canonical company page URL.
func (b *Builder) CompanyURL(regionSlug, companySlug string) string {
	return b.RegionURL(regionSlug) + "/companies/" + textutil.NormalizeSlug(companySlug)
}

func (b *Builder) regionContext(region domain.Region) PageContext {
	name := strings.TrimSpace(region.Name)
	return PageContext{
		RegionName:     name,
		RegionSlug:     textutil.NormalizeSlug(region.Slug),
		RegionLocative: Locative(name, region.Slug),
	}
}

func (b *Builder) generate(key string, titles, descriptions []Variant, ctx PageContext, canonical string, overrides domain.SeoOverrides) GeneratedSeo {
	title := textutil.CapitalizeFirst(ChooseText(key, titles, ctx))
	description := ChooseText(key+":d", descriptions, ctx)
	if title == "" {
		title = fallbackTitle(ctx)
	}

	templateCtx := ctx.TemplateContext()
	if rendered := strings.TrimSpace(RenderTemplate(overrides.Title, templateCtx)); rendered != "" {
		title = rendered
	}
	if rendered := strings.TrimSpace(RenderTemplate(overrides.Description, templateCtx)); rendered != "" {
		description = rendered
	}

	return GeneratedSeo{Title: title, Description: description, Canonical: canonical}
}

// fallbackTitle is the safety net when every pool variant filtered out: a
// plain but valid title beats an empty one.
func fallbackTitle(ctx PageContext) string {
	if ctx.EntityName != "" {
		return ctx.EntityName
	}
	if ctx.RegionName != "" {
		return ctx.RegionName
	}
	return ctx.RegionSlug
}

func displayName(listing domain.Listing) string {
	if listing.Name != nil {
		if name := strings.TrimSpace(*listing.Name); name != "" {
			return name
		}
	}
	return textutil.NormalizeSlug(listing.Slug)
}

// knownPriceRange returns the formatted range, or "" when no seller has a
// usable price, so that price-bearing variants drop out of selection.
func knownPriceRange(offers []domain.SellerOffer) string {
	info := AggregateOffers(offers)
	if info.Min == nil && info.Max == nil {
		return ""
	}
	return FormatPriceRange(info)
}

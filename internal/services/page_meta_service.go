package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/uslugi-market/api/internal/domain"
	"github.com/uslugi-market/api/internal/schemaorg"
	"github.com/uslugi-market/api/internal/seo"
)

var (
	// ErrPageMetaInvalidInput signals bad request data such as a missing
	// region or entity slug.
	ErrPageMetaInvalidInput = errors.New("page meta: invalid input")
	// ErrPageMetaBuilderRequired indicates the SEO builder dependency is
	// absent.
	ErrPageMetaBuilderRequired = errors.New("page meta: seo builder is required")
)

const defaultPageLanguage = "ru"

// PageMetaServiceDeps wires the builder and site-level settings for page
// metadata generation.
type PageMetaServiceDeps struct {
	Builder      *seo.Builder
	SiteName     string
	Language     string
	DefaultImage string
	Sanitizer    *bluemonday.Policy
	Logger       func(context.Context, string, map[string]any)
}

// PageMetaService turns collaborator-supplied entity records into the full
// page metadata bundle: head metadata, Open Graph mirrors and the JSON-LD
// node list.
type PageMetaService struct {
	builder      *seo.Builder
	siteName     string
	language     string
	defaultImage string
	sanitizer    *bluemonday.Policy
	logger       func(context.Context, string, map[string]any)
}

// NewPageMetaService constructs a PageMetaService with the provided
// dependencies.
func NewPageMetaService(deps PageMetaServiceDeps) (*PageMetaService, error) {
	if deps.Builder == nil {
		return nil, ErrPageMetaBuilderRequired
	}
	language := strings.TrimSpace(deps.Language)
	if language == "" {
		language = defaultPageLanguage
	}
	sanitizer := deps.Sanitizer
	if sanitizer == nil {
		sanitizer = bluemonday.StrictPolicy()
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &PageMetaService{
		builder:      deps.Builder,
		siteName:     strings.TrimSpace(deps.SiteName),
		language:     language,
		defaultImage: strings.TrimSpace(deps.DefaultImage),
		sanitizer:    sanitizer,
		logger:       logger,
	}, nil
}

// OpenGraph mirrors the generated metadata for og:/twitter: tags.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	Type        string
}

// PageMeta is the complete bundle consumed by the page-assembly layer.
type PageMeta struct {
	Seo       seo.GeneratedSeo
	OpenGraph OpenGraph
	H1        string
	Body      string
	Nodes     []any
}

// RegionPageCommand feeds RegionPage.
type RegionPageCommand struct {
	Region    domain.Region
	Overrides domain.SeoOverrides
}

// CatalogPageCommand feeds CatalogPage.
type CatalogPageCommand struct {
	Region       domain.Region
	CategoryName *string
	CategorySlug string
	Entries      []domain.CatalogEntry
	Overrides    domain.SeoOverrides
}

// ServicePageCommand feeds ServicePage.
type ServicePageCommand struct {
	Region      domain.Region
	Service     domain.Listing
	Offers      []domain.SellerOffer
	SellerCount int
	Overrides   domain.SeoOverrides
}

// ProductPageCommand feeds ProductPage.
type ProductPageCommand struct {
	Region      domain.Region
	Product     domain.Listing
	Offers      []domain.SellerOffer
	SellerCount int
	Brand       string
	Model       string
	VariantOf   string
	Rating      *domain.Rating
	Overrides   domain.SeoOverrides
}

// CompanyPageCommand feeds CompanyPage.
type CompanyPageCommand struct {
	Region    domain.Region
	Company   domain.Listing
	Rating    *domain.Rating
	Overrides domain.SeoOverrides
}

// RegionPage builds metadata for a region landing page.
func (s *PageMetaService) RegionPage(ctx context.Context, cmd RegionPageCommand) (PageMeta, error) {
	if err := validateRegion(cmd.Region); err != nil {
		return PageMeta{}, err
	}

	generated, pageCtx := s.builder.Region(seo.RegionPageInput{
		Region:    cmd.Region,
		Overrides: s.sanitizeOverrides(cmd.Overrides),
	})

	nodes := s.baseNodes(generated, pageCtx, false, []schemaorg.Crumb{
		{Name: s.siteName, URL: s.builder.SiteURL()},
		{Name: pageCtx.RegionName, URL: generated.Canonical},
	})

	s.logger(ctx, "page_meta.generated", map[string]any{"kind": "region", "region": pageCtx.RegionSlug})
	return s.finish(generated, pageCtx, cmd.Overrides, nodes), nil
}

// CatalogPage builds metadata for the region catalog listing, optionally
// narrowed to one category.
func (s *PageMetaService) CatalogPage(ctx context.Context, cmd CatalogPageCommand) (PageMeta, error) {
	if err := validateRegion(cmd.Region); err != nil {
		return PageMeta{}, err
	}

	generated, pageCtx := s.builder.Catalog(seo.CatalogPageInput{
		Region:       cmd.Region,
		CategoryName: cmd.CategoryName,
		CategorySlug: cmd.CategorySlug,
		Overrides:    s.sanitizeOverrides(cmd.Overrides),
	})

	crumbs := []schemaorg.Crumb{
		{Name: s.siteName, URL: s.builder.SiteURL()},
		{Name: pageCtx.RegionName, URL: s.builder.RegionURL(cmd.Region.Slug)},
	}
	if pageCtx.Category != "" {
		crumbs = append(crumbs, schemaorg.Crumb{Name: pageCtx.Category, URL: generated.Canonical})
	}

	nodes := s.baseNodes(generated, pageCtx, true, crumbs)
	if itemList := schemaorg.NewItemList(catalogListItems(s.builder, cmd.Region.Slug, cmd.Entries)); itemList != nil {
		nodes = append(nodes, itemList)
	}

	s.logger(ctx, "page_meta.generated", map[string]any{"kind": "catalog", "region": pageCtx.RegionSlug, "category": pageCtx.Category})
	return s.finish(generated, pageCtx, cmd.Overrides, nodes), nil
}

// ServicePage builds metadata for a region x service page.
func (s *PageMetaService) ServicePage(ctx context.Context, cmd ServicePageCommand) (PageMeta, error) {
	if err := validateRegion(cmd.Region); err != nil {
		return PageMeta{}, err
	}
	if strings.TrimSpace(cmd.Service.Slug) == "" {
		return PageMeta{}, fmt.Errorf("%w: service slug is required", ErrPageMetaInvalidInput)
	}

	sellerCount := resolveSellerCount(cmd.SellerCount, len(cmd.Offers))
	generated, pageCtx := s.builder.Service(seo.ServicePageInput{
		Region:      cmd.Region,
		Service:     cmd.Service,
		Offers:      cmd.Offers,
		SellerCount: sellerCount,
		Overrides:   s.sanitizeOverrides(cmd.Overrides),
	})

	nodes := s.baseNodes(generated, pageCtx, false, []schemaorg.Crumb{
		{Name: s.siteName, URL: s.builder.SiteURL()},
		{Name: pageCtx.RegionName, URL: s.builder.RegionURL(cmd.Region.Slug)},
		{Name: pageCtx.EntityName, URL: generated.Canonical},
	})
	if node := schemaorg.NewService(pageCtx.EntityName, generated.Canonical, pageCtx.RegionName, seo.AggregateOffers(cmd.Offers), sellerCount); node != nil {
		nodes = append(nodes, node)
	}

	s.logger(ctx, "page_meta.generated", map[string]any{"kind": "service", "region": pageCtx.RegionSlug, "entity": pageCtx.EntitySlug})
	return s.finish(generated, pageCtx, cmd.Overrides, nodes), nil
}

// ProductPage builds metadata for a region x product page.
func (s *PageMetaService) ProductPage(ctx context.Context, cmd ProductPageCommand) (PageMeta, error) {
	if err := validateRegion(cmd.Region); err != nil {
		return PageMeta{}, err
	}
	if strings.TrimSpace(cmd.Product.Slug) == "" {
		return PageMeta{}, fmt.Errorf("%w: product slug is required", ErrPageMetaInvalidInput)
	}

	sellerCount := resolveSellerCount(cmd.SellerCount, len(cmd.Offers))
	generated, pageCtx := s.builder.Product(seo.ProductPageInput{
		Region:      cmd.Region,
		Product:     cmd.Product,
		Offers:      cmd.Offers,
		SellerCount: sellerCount,
		Overrides:   s.sanitizeOverrides(cmd.Overrides),
	})

	nodes := s.baseNodes(generated, pageCtx, false, []schemaorg.Crumb{
		{Name: s.siteName, URL: s.builder.SiteURL()},
		{Name: pageCtx.RegionName, URL: s.builder.RegionURL(cmd.Region.Slug)},
		{Name: pageCtx.EntityName, URL: generated.Canonical},
	})
	if node := schemaorg.NewProduct(schemaorg.ProductInput{
		Name:        pageCtx.EntityName,
		URL:         generated.Canonical,
		Price:       seo.AggregateOffers(cmd.Offers),
		SellerCount: sellerCount,
		Brand:       cmd.Brand,
		Model:       cmd.Model,
		VariantOf:   cmd.VariantOf,
		Rating:      cmd.Rating,
	}); node != nil {
		nodes = append(nodes, node)
	}

	s.logger(ctx, "page_meta.generated", map[string]any{"kind": "product", "region": pageCtx.RegionSlug, "entity": pageCtx.EntitySlug})
	return s.finish(generated, pageCtx, cmd.Overrides, nodes), nil
}

// CompanyPage builds metadata for a region x company page.
func (s *PageMetaService) CompanyPage(ctx context.Context, cmd CompanyPageCommand) (PageMeta, error) {
	if err := validateRegion(cmd.Region); err != nil {
		return PageMeta{}, err
	}
	if strings.TrimSpace(cmd.Company.Slug) == "" {
		return PageMeta{}, fmt.Errorf("%w: company slug is required", ErrPageMetaInvalidInput)
	}

	generated, pageCtx := s.builder.Company(seo.CompanyPageInput{
		Region:    cmd.Region,
		Company:   cmd.Company,
		Overrides: s.sanitizeOverrides(cmd.Overrides),
	})

	nodes := s.baseNodes(generated, pageCtx, false, []schemaorg.Crumb{
		{Name: s.siteName, URL: s.builder.SiteURL()},
		{Name: pageCtx.RegionName, URL: s.builder.RegionURL(cmd.Region.Slug)},
		{Name: pageCtx.EntityName, URL: generated.Canonical},
	})
	if node := schemaorg.NewLocalBusiness(pageCtx.EntityName, generated.Canonical, pageCtx.RegionName, cmd.Rating); node != nil {
		nodes = append(nodes, node)
	}

	s.logger(ctx, "page_meta.generated", map[string]any{"kind": "company", "region": pageCtx.RegionSlug, "entity": pageCtx.EntitySlug})
	return s.finish(generated, pageCtx, cmd.Overrides, nodes), nil
}

func (s *PageMetaService) baseNodes(generated seo.GeneratedSeo, pageCtx seo.PageContext, collection bool, crumbs []schemaorg.Crumb) []any {
	nodes := make([]any, 0, 4)
	if site := schemaorg.NewWebSite(s.siteName, s.builder.SiteURL(), s.builder.SearchURL()); site != nil {
		nodes = append(nodes, site)
	}
	if breadcrumb := schemaorg.NewBreadcrumbList(crumbs); breadcrumb != nil {
		nodes = append(nodes, breadcrumb)
	}
	if page := schemaorg.NewWebPage(schemaorg.WebPageInput{
		Collection:  collection,
		URL:         generated.Canonical,
		Name:        generated.Title,
		Description: generated.Description,
		SiteURL:     s.builder.SiteURL(),
		Language:    s.language,
		Image:       s.defaultImage,
	}); page != nil {
		nodes = append(nodes, page)
	}
	return nodes
}

// finish renders the H1/body overrides and mirrors the metadata into the
// Open Graph block.
func (s *PageMetaService) finish(generated seo.GeneratedSeo, pageCtx seo.PageContext, overrides domain.SeoOverrides, nodes []any) PageMeta {
	templateCtx := pageCtx.TemplateContext()
	h1 := strings.TrimSpace(seo.RenderTemplate(s.sanitize(overrides.H1), templateCtx))
	body := strings.TrimSpace(seo.RenderTemplate(s.sanitize(overrides.Body), templateCtx))

	return PageMeta{
		Seo: generated,
		OpenGraph: OpenGraph{
			Title:       generated.Title,
			Description: generated.Description,
			URL:         generated.Canonical,
			Image:       s.defaultImage,
			Type:        "website",
		},
		H1:    h1,
		Body:  body,
		Nodes: schemaorg.CompactNodes(nodes),
	}
}

func (s *PageMetaService) sanitizeOverrides(overrides domain.SeoOverrides) domain.SeoOverrides {
	return domain.SeoOverrides{
		Title:       s.sanitize(overrides.Title),
		Description: s.sanitize(overrides.Description),
		H1:          s.sanitize(overrides.H1),
		Body:        s.sanitize(overrides.Body),
	}
}

func (s *PageMetaService) sanitize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return s.sanitizer.Sanitize(raw)
}

func validateRegion(region domain.Region) error {
	if strings.TrimSpace(region.Slug) == "" {
		return fmt.Errorf("%w: region slug is required", ErrPageMetaInvalidInput)
	}
	return nil
}

func resolveSellerCount(declared, offerCount int) int {
	if declared > 0 {
		return declared
	}
	return offerCount
}

func catalogListItems(builder *seo.Builder, regionSlug string, entries []domain.CatalogEntry) []schemaorg.ListItem {
	items := make([]schemaorg.ListItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, schemaorg.ListItem{
			Name: entry.Name,
			URL:  builder.ServiceURL(regionSlug, entry.Slug),
		})
	}
	return items
}

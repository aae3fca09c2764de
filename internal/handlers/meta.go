package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/uslugi-market/api/internal/domain"
	"github.com/uslugi-market/api/internal/platform/httpx"
	"github.com/uslugi-market/api/internal/schemaorg"
	"github.com/uslugi-market/api/internal/services"
)

const maxMetaBodySize = 64 * 1024

// MetaHandlers exposes the page metadata computation endpoints consumed by
// the page-assembly layer.
type MetaHandlers struct {
	meta *services.PageMetaService
}

// NewMetaHandlers constructs a new MetaHandlers instance.
func NewMetaHandlers(meta *services.PageMetaService) *MetaHandlers {
	return &MetaHandlers{meta: meta}
}

// Routes registers the /meta endpoints.
func (h *MetaHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/region", h.regionPage)
	r.Post("/catalog", h.catalogPage)
	r.Post("/service", h.servicePage)
	r.Post("/product", h.productPage)
	r.Post("/company", h.companyPage)
}

type regionPayload struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type listingPayload struct {
	Name     *string `json:"name"`
	Slug     string  `json:"slug"`
	Category *string `json:"category"`
}

type offerPayload struct {
	PriceMin *float64 `json:"priceMin"`
	PriceMax *float64 `json:"priceMax"`
	Currency string   `json:"currency"`
}

type overridesPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	H1          string `json:"h1"`
	Body        string `json:"body"`
}

type ratingPayload struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type catalogEntryPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type regionPageRequest struct {
	Region    regionPayload     `json:"region"`
	Overrides *overridesPayload `json:"overrides"`
}

type catalogPageRequest struct {
	Region       regionPayload         `json:"region"`
	CategoryName *string               `json:"categoryName"`
	CategorySlug string                `json:"categorySlug"`
	Entries      []catalogEntryPayload `json:"entries"`
	Overrides    *overridesPayload     `json:"overrides"`
}

type servicePageRequest struct {
	Region      regionPayload     `json:"region"`
	Service     listingPayload    `json:"service"`
	Offers      []offerPayload    `json:"offers"`
	SellerCount int               `json:"sellerCount"`
	Overrides   *overridesPayload `json:"overrides"`
}

type productPageRequest struct {
	Region      regionPayload     `json:"region"`
	Product     listingPayload    `json:"product"`
	Offers      []offerPayload    `json:"offers"`
	SellerCount int               `json:"sellerCount"`
	Brand       string            `json:"brand"`
	Model       string            `json:"model"`
	VariantOf   string            `json:"variantOf"`
	Rating      *ratingPayload    `json:"rating"`
	Overrides   *overridesPayload `json:"overrides"`
}

type companyPageRequest struct {
	Region    regionPayload     `json:"region"`
	Company   listingPayload    `json:"company"`
	Rating    *ratingPayload    `json:"rating"`
	Overrides *overridesPayload `json:"overrides"`
}

type seoPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
}

type openGraphPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Type        string `json:"type"`
}

type pageMetaResponse struct {
	Seo       seoPayload       `json:"seo"`
	OpenGraph openGraphPayload `json:"openGraph"`
	H1        string           `json:"h1,omitempty"`
	Body      string           `json:"body,omitempty"`
	JSONLD    json.RawMessage  `json:"jsonld"`
}

func (h *MetaHandlers) regionPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req regionPageRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	meta, err := h.meta.RegionPage(ctx, services.RegionPageCommand{
		Region:    domain.Region(req.Region),
		Overrides: buildOverrides(req.Overrides),
	})
	if err != nil {
		writeMetaError(ctx, w, err)
		return
	}
	h.respond(ctx, w, meta)
}

func (h *MetaHandlers) catalogPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req catalogPageRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	entries := make([]domain.CatalogEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, domain.CatalogEntry(entry))
	}

	meta, err := h.meta.CatalogPage(ctx, services.CatalogPageCommand{
		Region:       domain.Region(req.Region),
		CategoryName: req.CategoryName,
		CategorySlug: req.CategorySlug,
		Entries:      entries,
		Overrides:    buildOverrides(req.Overrides),
	})
	if err != nil {
		writeMetaError(ctx, w, err)
		return
	}
	h.respond(ctx, w, meta)
}

func (h *MetaHandlers) servicePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req servicePageRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	meta, err := h.meta.ServicePage(ctx, services.ServicePageCommand{
		Region:      domain.Region(req.Region),
		Service:     domain.Listing(req.Service),
		Offers:      buildOffers(req.Offers),
		SellerCount: req.SellerCount,
		Overrides:   buildOverrides(req.Overrides),
	})
	if err != nil {
		writeMetaError(ctx, w, err)
		return
	}
	h.respond(ctx, w, meta)
}

func (h *MetaHandlers) productPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req productPageRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	meta, err := h.meta.ProductPage(ctx, services.ProductPageCommand{
		Region:      domain.Region(req.Region),
		Product:     domain.Listing(req.Product),
		Offers:      buildOffers(req.Offers),
		SellerCount: req.SellerCount,
		Brand:       req.Brand,
		Model:       req.Model,
		VariantOf:   req.VariantOf,
		Rating:      buildRating(req.Rating),
		Overrides:   buildOverrides(req.Overrides),
	})
	if err != nil {
		writeMetaError(ctx, w, err)
		return
	}
	h.respond(ctx, w, meta)
}

func (h *MetaHandlers) companyPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req companyPageRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	meta, err := h.meta.CompanyPage(ctx, services.CompanyPageCommand{
		Region:    domain.Region(req.Region),
		Company:   domain.Listing(req.Company),
		Rating:    buildRating(req.Rating),
		Overrides: buildOverrides(req.Overrides),
	})
	if err != nil {
		writeMetaError(ctx, w, err)
		return
	}
	h.respond(ctx, w, meta)
}

// decode reads and unmarshals the request body, writing the error response
// itself when the payload is unusable.
func (h *MetaHandlers) decode(ctx context.Context, w http.ResponseWriter, r *http.Request, target any) bool {
	if h.meta == nil {
		httpx.WriteError(ctx, w, httpx.NewError("meta_service_unavailable", "page meta service unavailable", http.StatusServiceUnavailable))
		return false
	}

	body, err := readLimitedBody(r, maxMetaBodySize)
	if err != nil {
		switch {
		case errors.Is(err, errEmptyBody):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body is required", http.StatusBadRequest))
		case errors.Is(err, errBodyTooLarge):
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
		default:
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		}
		return false
	}

	if err := json.Unmarshal(body, target); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid JSON payload", http.StatusBadRequest))
		return false
	}
	return true
}

func (h *MetaHandlers) respond(ctx context.Context, w http.ResponseWriter, meta services.PageMeta) {
	graph, err := schemaorg.Graph(meta.Nodes)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "failed to serialize structured data", http.StatusInternalServerError))
		return
	}

	writeJSONResponse(w, http.StatusOK, pageMetaResponse{
		Seo: seoPayload{
			Title:       meta.Seo.Title,
			Description: meta.Seo.Description,
			Canonical:   meta.Seo.Canonical,
		},
		OpenGraph: openGraphPayload{
			Title:       meta.OpenGraph.Title,
			Description: meta.OpenGraph.Description,
			URL:         meta.OpenGraph.URL,
			Image:       meta.OpenGraph.Image,
			Type:        meta.OpenGraph.Type,
		},
		H1:     meta.H1,
		Body:   meta.Body,
		JSONLD: json.RawMessage(graph),
	})
}

func writeMetaError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrPageMetaInvalidInput) {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("internal_error", "failed to generate page metadata", http.StatusInternalServerError))
}

func buildOffers(payloads []offerPayload) []domain.SellerOffer {
	if len(payloads) == 0 {
		return nil
	}
	offers := make([]domain.SellerOffer, 0, len(payloads))
	for _, payload := range payloads {
		offers = append(offers, domain.SellerOffer(payload))
	}
	return offers
}

func buildOverrides(payload *overridesPayload) domain.SeoOverrides {
	if payload == nil {
		return domain.SeoOverrides{}
	}
	return domain.SeoOverrides(*payload)
}

func buildRating(payload *ratingPayload) *domain.Rating {
	if payload == nil {
		return nil
	}
	rating := domain.Rating(*payload)
	return &rating
}

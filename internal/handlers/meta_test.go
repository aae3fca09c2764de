package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/uslugi-market/api/internal/seo"
	"github.com/uslugi-market/api/internal/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	meta, err := services.NewPageMetaService(services.PageMetaServiceDeps{
		Builder:  seo.NewBuilder("https://uslugi-market.ru"),
		SiteName: "Услуги Маркет",
	})
	if err != nil {
		t.Fatalf("NewPageMetaService: %v", err)
	}
	return NewRouter(WithMetaRoutes(NewMetaHandlers(meta).Routes))
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServicePageEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/service", `{
		"region": {"slug": "tver", "name": "Тверь"},
		"service": {"name": "Септик под ключ", "slug": "septic"},
		"offers": [{"priceMin": 45000, "priceMax": 90000}],
		"sellerCount": 3
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Seo struct {
			Title     string `json:"title"`
			Canonical string `json:"canonical"`
		} `json:"seo"`
		OpenGraph struct {
			Type string `json:"type"`
		} `json:"openGraph"`
		JSONLD json.RawMessage `json:"jsonld"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Seo.Canonical != "https://uslugi-market.ru/tver/services/septic" {
		t.Fatalf("unexpected canonical %q", resp.Seo.Canonical)
	}
	if !strings.Contains(resp.Seo.Title, "Септик под ключ") {
		t.Fatalf("title %q should contain the service name", resp.Seo.Title)
	}
	if resp.OpenGraph.Type != "website" {
		t.Fatalf("unexpected og type %q", resp.OpenGraph.Type)
	}

	jsonld := string(resp.JSONLD)
	for _, fragment := range []string{`"@context":"https://schema.org"`, `"@graph"`, `"AggregateOffer"`, `"lowPrice":45000`, `"highPrice":90000`, `"offerCount":3`} {
		if !strings.Contains(jsonld, fragment) {
			t.Fatalf("jsonld missing %s: %s", fragment, jsonld)
		}
	}
}

func TestServicePageEndpointEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/service", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty body, got %d", rec.Code)
	}

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error envelope: %v", err)
	}
	if resp.Error != "invalid_request" {
		t.Fatalf("unexpected error code %q", resp.Error)
	}
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status in envelope %d", resp.Status)
	}
}

func TestServicePageEndpointMissingRegion(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/service", `{"service": {"slug": "septic"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing region, got %d", rec.Code)
	}
}

func TestServicePageEndpointMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/service", `{"region": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestRegionPageEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/region", `{"region": {"slug": "tver", "name": "Тверь"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"canonical":"https://uslugi-market.ru/tver"`) {
		t.Fatalf("response missing region canonical: %s", rec.Body.String())
	}
}

func TestCatalogPageEndpointItemList(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/meta/catalog", `{
		"region": {"slug": "tver", "name": "Тверь"},
		"categoryName": "Септики",
		"categorySlug": "septiki",
		"entries": [
			{"name": "Септик под ключ", "slug": "septic"},
			{"name": "Монтаж септика", "slug": "montazh-septika"}
		]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, fragment := range []string{`"CollectionPage"`, `"ItemList"`, `"numberOfItems":2`} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("response missing %s: %s", fragment, body)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meta/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

func TestMetaServiceUnavailable(t *testing.T) {
	router := NewRouter(WithMetaRoutes(NewMetaHandlers(nil).Routes))

	rec := postJSON(t, router, "/api/v1/meta/region", `{"region": {"slug": "tver"}}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the service is absent, got %d", rec.Code)
	}
}

func TestServicePageEndpointBodyTooLarge(t *testing.T) {
	router := newTestRouter(t)

	oversized := `{"region": {"slug": "tver"}, "padding": "` + strings.Repeat("a", maxMetaBodySize) + `"}`
	rec := postJSON(t, router, "/api/v1/meta/service", oversized)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for an oversized body, got %d", rec.Code)
	}
}

package schemaorg

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestCompactNodesDropsTypedNils(t *testing.T) {
	var service *Service
	var page *WebPage
	site := NewWebSite("Услуги Маркет", "https://uslugi-market.ru", "")

	nodes := CompactNodes([]any{nil, service, site, page})
	if len(nodes) != 1 {
		t.Fatalf("expected 1 surviving node, got %d", len(nodes))
	}
	if nodes[0] != any(site) {
		t.Fatalf("unexpected surviving node %#v", nodes[0])
	}
}

func TestGraphDocumentShape(t *testing.T) {
	site := NewWebSite("Услуги Маркет", "https://uslugi-market.ru", "")
	crumbs := NewBreadcrumbList([]Crumb{{Name: "Главная", URL: "https://uslugi-market.ru"}})

	var missing *LocalBusiness
	raw, err := Graph([]any{site, missing, crumbs})
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	var doc struct {
		Context string            `json:"@context"`
		Graph   []json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Context != "https://schema.org" {
		t.Fatalf("unexpected @context %q", doc.Context)
	}
	if len(doc.Graph) != 2 {
		t.Fatalf("expected 2 graph nodes, got %d", len(doc.Graph))
	}
}

func TestGraphEmpty(t *testing.T) {
	raw, err := Graph(nil)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	var doc struct {
		Graph []any `json:"@graph"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Graph) != 0 {
		t.Fatalf("expected empty graph, got %d nodes", len(doc.Graph))
	}
}

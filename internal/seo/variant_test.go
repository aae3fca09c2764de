package seo

import (
	"fmt"
	"testing"
)

func TestPickVariantDeterminism(t *testing.T) {
	variants := []string{"a", "b", "c", "d"}
	key := "service:tver:septic"

	first := PickVariant(key, variants)
	for i := 0; i < 1000; i++ {
		if got := PickVariant(key, variants); got != first {
			t.Fatalf("call %d returned %q, want %q", i, got, first)
		}
	}
}

func TestPickVariantEmptySlice(t *testing.T) {
	if got := PickVariant[string]("any-key", nil); got != "" {
		t.Fatalf("expected zero value for empty slice, got %q", got)
	}
}

func TestPickVariantDistribution(t *testing.T) {
	variants := []string{"a", "b", "c", "d"}
	counts := make(map[string]int, len(variants))
	const keys = 100

	for i := 0; i < keys; i++ {
		key := fmt.Sprintf("service:region-%d:septic", i)
		counts[PickVariant(key, variants)]++
	}

	// Rough uniformity: hash selection must not collapse onto one variant.
	for variant, count := range counts {
		if count > keys*60/100 {
			t.Fatalf("variant %q selected for %d of %d keys", variant, count, keys)
		}
	}
}

func TestChooseTextFiltersInapplicableVariants(t *testing.T) {
	pool := []Variant{
		func(c PageContext) string {
			if c.Category == "" {
				return ""
			}
			return "with category " + c.Category
		},
		func(c PageContext) string { return "always " + c.RegionName },
	}

	ctx := PageContext{RegionName: "Тверь"}
	got := ChooseText("catalog:tver:all", pool, ctx)
	if got != "always Тверь" {
		t.Fatalf("expected the surviving variant, got %q", got)
	}

	// Same key and pool stay deterministic once the category applies.
	ctx.Category = "Септики"
	first := ChooseText("catalog:tver:septiki", pool, ctx)
	for i := 0; i < 100; i++ {
		if got := ChooseText("catalog:tver:septiki", pool, ctx); got != first {
			t.Fatalf("selection changed between calls: %q vs %q", got, first)
		}
	}
}

func TestChooseTextEmptyResults(t *testing.T) {
	if got := ChooseText("key", nil, PageContext{}); got != "" {
		t.Fatalf("expected empty string for empty pool, got %q", got)
	}

	pool := []Variant{
		func(PageContext) string { return "   " },
		func(PageContext) string { return "" },
		nil,
	}
	if got := ChooseText("key", pool, PageContext{}); got != "" {
		t.Fatalf("expected empty string when every variant filters out, got %q", got)
	}
}

package seo

import (
	"hash/fnv"
	"strings"
)

// Variant produces one candidate text for a page context. A variant that
// does not apply to the given context (e.g. it needs a category the page
// does not have) returns an empty string and is skipped during selection.
type Variant func(PageContext) string

// PickVariant deterministically selects one element of variants keyed by the
// 32-bit FNV-1a hash of key. The key must be built from stable identifiers
// only (slugs, entity kinds), never from volatile request data: repeated
// page builds have to land on the same wording. An empty slice yields the
// zero value.
func PickVariant[T any](key string, variants []T) T {
	var zero T
	if len(variants) == 0 {
		return zero
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return variants[int(h.Sum32()%uint32(len(variants)))]
}

// ChooseText applies every variant in pool to ctx, drops results that are
// empty after trimming, and picks deterministically among the survivors.
// Filtering before selection keeps inapplicable variants out without
// breaking determinism for a given context shape. Returns "" when nothing
// applies.
func ChooseText(key string, pool []Variant, ctx PageContext) string {
	if len(pool) == 0 {
		return ""
	}
	candidates := make([]string, 0, len(pool))
	for _, variant := range pool {
		if variant == nil {
			continue
		}
		text := strings.TrimSpace(variant(ctx))
		if text == "" {
			continue
		}
		candidates = append(candidates, text)
	}
	if len(candidates) == 0 {
		return ""
	}
	return PickVariant(key, candidates)
}

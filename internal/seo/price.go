package seo

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/uslugi-market/api/internal/domain"
)

// DefaultCurrency is the marketplace's local currency code.
const DefaultCurrency = "RUB"

const priceOnRequest = "цена по запросу"

// rublePrinter renders amounts with Russian thousands grouping. Printers are
// safe for concurrent use.
var rublePrinter = message.NewPrinter(language.Russian)

// PriceInfo is the aggregated price range across all sellers of one listing.
// Nil means unknown, never zero.
type PriceInfo struct {
	Min      *float64
	Max      *float64
	Currency string
}

// AggregateOffers reduces per-seller price entries to a single global range.
// Non-finite and negative values are dropped before aggregation; an offer
// without a usable max falls back to its own min. The currency is taken from
// the first offer that names one.
func AggregateOffers(offers []domain.SellerOffer) PriceInfo {
	info := PriceInfo{}
	for _, offer := range offers {
		if info.Currency == "" {
			info.Currency = strings.ToUpper(strings.TrimSpace(offer.Currency))
		}

		min := finitePrice(offer.PriceMin)
		max := finitePrice(offer.PriceMax)
		if max == nil {
			max = min
		}

		if min != nil && (info.Min == nil || *min < *info.Min) {
			info.Min = min
		}
		if max != nil && (info.Max == nil || *max > *info.Max) {
			info.Max = max
		}
	}
	return info
}

// FormatPriceRange renders the range for human-facing copy: "от 500 ₽",
// "до 2 000 ₽", "от 500 до 2 000 ₽", or a generic price-on-request phrase
// when nothing is known.
func FormatPriceRange(info PriceInfo) string {
	suffix := currencySuffix(info.Currency)
	switch {
	case info.Min == nil && info.Max == nil:
		return priceOnRequest
	case info.Min != nil && (info.Max == nil || *info.Max == *info.Min):
		return "от " + formatAmount(*info.Min) + suffix
	case info.Min == nil:
		return "до " + formatAmount(*info.Max) + suffix
	default:
		return "от " + formatAmount(*info.Min) + " до " + formatAmount(*info.Max) + suffix
	}
}

func formatAmount(value float64) string {
	return rublePrinter.Sprintf("%d", int64(math.Round(value)))
}

func currencySuffix(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == DefaultCurrency {
		return " ₽"
	}
	return " " + code
}

func finitePrice(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

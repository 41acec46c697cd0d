package recommender

import (
	"math"
	"strings"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
)

// PricePolicy selects how the price-fit signal is computed. It is fixed at
// configuration time; the two policies produce different rankings and are
// never mixed within one scoring pass.
type PricePolicy string

const (
	// PricePolicyCustomer rewards proximity to the customer's average
	// order value: max(0, 1 - |price - aov| / aov).
	PricePolicyCustomer PricePolicy = "customer"

	// PricePolicyCatalog uses the snapshot's inverted min-max normalized
	// price, so cheaper-in-catalog scores higher.
	PricePolicyCatalog PricePolicy = "catalog"
)

const scorePrecision = 4

// historyTokens lowercases the combined browsing and purchase history.
func historyTokens(p domain.CustomerProfile) []string {
	tokens := make([]string, 0, len(p.BrowsingHistory)+len(p.PurchaseHistory))
	for _, t := range append(append([]string{}, p.BrowsingHistory...), p.PurchaseHistory...) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// searchableText is the product side of the history match: category,
// subcategory and similar-product tags, lowercased.
func searchableText(x domain.Product) string {
	parts := make([]string, 0, 2+len(x.SimilarProducts))
	parts = append(parts, x.Category, x.Subcategory)
	parts = append(parts, x.SimilarProducts...)
	return strings.ToLower(strings.Join(parts, " "))
}

// historyOverlap counts history tokens contained as substrings in the
// product's searchable text. Substring containment, not set equality, so a
// history entry "shoes" matches a "running shoes" subcategory. The count is
// deliberately unbounded.
func historyOverlap(tokens []string, text string) float64 {
	count := 0
	for _, t := range tokens {
		if strings.Contains(text, t) {
			count++
		}
	}
	return float64(count)
}

// priceFit computes the price signal under the configured policy. A missing
// or zero average order value makes the customer-relative term contribute 0
// rather than failing.
func priceFit(policy PricePolicy, x domain.Product, p domain.CustomerProfile) float64 {
	switch policy {
	case PricePolicyCatalog:
		return x.NormalizedPrice
	default:
		aov := p.AvgOrderValue
		if aov <= 0 || math.IsNaN(aov) {
			return 0
		}
		fit := 1 - math.Abs(x.Price-aov)/aov
		if fit < 0 {
			return 0
		}
		return fit
	}
}

func categoryMatch(x domain.Product, p domain.CustomerProfile) float64 {
	if x.Category == "" {
		return 0
	}
	if strings.EqualFold(x.Category, p.PreferredCategory) {
		return 1
	}
	for _, t := range p.BrowsingHistory {
		if strings.EqualFold(x.Category, t) {
			return 1
		}
	}
	return 0
}

func subcategoryMatch(x domain.Product, p domain.CustomerProfile) float64 {
	if x.Subcategory == "" {
		return 0
	}
	for _, t := range p.PurchaseHistory {
		if strings.EqualFold(x.Subcategory, t) {
			return 1
		}
	}
	return 0
}

func tokenMatch(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if strings.EqualFold(a, b) {
		return 1
	}
	return 0
}

// guard neutralizes NaN/Inf terms so one malformed product never aborts
// the batch.
func guard(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// scoreProduct computes the weighted sum of all applicable signals for one
// product, with the per-term breakdown kept for explainability.
func scoreProduct(
	x domain.Product,
	p domain.CustomerProfile,
	tokens []string,
	w WeightConfig,
	policy PricePolicy,
) domain.ScoredProduct {

	breakdown := domain.ScoreBreakdown{
		History:     w.History * guard(historyOverlap(tokens, searchableText(x))),
		Rating:      w.Rating * guard(x.NormalizedRating),
		Sentiment:   w.Sentiment * guard(x.SentimentScore),
		Probability: w.Probability * guard(x.RecommendationProbability),
		Price:       w.Price * guard(priceFit(policy, x, p)),
		Category:    w.Category * categoryMatch(x, p),
		Subcategory: w.Subcategory * subcategoryMatch(x, p),
		Season:      w.Season * tokenMatch(x.Season, p.Season),
		Holiday:     w.Holiday * tokenMatch(x.Holiday, p.Holiday),
	}

	total := breakdown.History +
		breakdown.Rating +
		breakdown.Sentiment +
		breakdown.Probability +
		breakdown.Price +
		breakdown.Category +
		breakdown.Subcategory +
		breakdown.Season +
		breakdown.Holiday

	return domain.ScoredProduct{
		ProductID:   x.ProductID,
		Category:    x.Category,
		Subcategory: x.Subcategory,
		Price:       x.Price,
		Rating:      x.Rating,
		Score:       roundScore(total),
		Breakdown:   breakdown,
	}
}

// roundScore fixes the score to 4 decimal places for reproducibility in
// tests and storage.
func roundScore(v float64) float64 {
	shift := math.Pow(10, scorePrecision)
	return math.Round(v*shift) / shift
}

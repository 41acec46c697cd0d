package recommender

import (
	"math"
	"testing"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
)

func TestHistoryOverlapSubstringContainment(t *testing.T) {
	product := domain.Product{
		Category:    "Footwear",
		Subcategory: "Running Shoes",
	}

	profile := domain.CustomerProfile{
		BrowsingHistory: []string{"Shoes"},
	}

	got := historyOverlap(historyTokens(profile), searchableText(product))
	if got != 1 {
		t.Fatalf("expected substring match for %q in %q, got %v", "Shoes", "running shoes", got)
	}
}

func TestHistoryOverlapCountsEveryToken(t *testing.T) {
	product := domain.Product{
		Category:        "Electronics",
		Subcategory:     "Headphones",
		SimilarProducts: []string{"wireless earbuds", "speakers"},
	}

	profile := domain.CustomerProfile{
		BrowsingHistory: []string{"headphones", "Wireless"},
		PurchaseHistory: []string{"speakers", "laptops"},
	}

	// headphones, wireless and speakers all appear; laptops does not
	got := historyOverlap(historyTokens(profile), searchableText(product))
	if got != 3 {
		t.Fatalf("expected overlap count 3, got %v", got)
	}
}

func TestHistoryOverlapNoMatch(t *testing.T) {
	product := domain.Product{Category: "Books", Subcategory: "Fiction"}
	profile := domain.CustomerProfile{BrowsingHistory: []string{"garden tools"}}

	if got := historyOverlap(historyTokens(profile), searchableText(product)); got != 0 {
		t.Fatalf("expected no overlap, got %v", got)
	}
}

func TestPriceFitCustomerRelative(t *testing.T) {
	profile := domain.CustomerProfile{AvgOrderValue: 10}

	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"exact match", 10, 1.0},
		{"distance above", 20, 0.0},
		{"far above clamps to zero", 30, 0.0},
		{"halfway below", 5, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := priceFit(PricePolicyCustomer, domain.Product{Price: tc.price}, profile)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("priceFit(%v) = %v, want %v", tc.price, got, tc.want)
			}
		})
	}
}

func TestPriceFitMissingAvgOrderValue(t *testing.T) {
	got := priceFit(PricePolicyCustomer, domain.Product{Price: 10}, domain.CustomerProfile{})
	if got != 0 {
		t.Fatalf("expected zero contribution without avg order value, got %v", got)
	}
}

func TestPriceFitCatalogRelative(t *testing.T) {
	p := domain.Product{Price: 10, NormalizedPrice: 0.75}
	got := priceFit(PricePolicyCatalog, p, domain.CustomerProfile{AvgOrderValue: 10})
	if got != 0.75 {
		t.Fatalf("catalog policy must use the snapshot normalization, got %v", got)
	}
}

func TestCategoryMatch(t *testing.T) {
	profile := domain.CustomerProfile{
		PreferredCategory: "Fashion",
		BrowsingHistory:   []string{"Books"},
	}

	if got := categoryMatch(domain.Product{Category: "fashion"}, profile); got != 1 {
		t.Fatalf("preferred category should match case-insensitively, got %v", got)
	}
	if got := categoryMatch(domain.Product{Category: "Books"}, profile); got != 1 {
		t.Fatalf("browsing-history category should match, got %v", got)
	}
	if got := categoryMatch(domain.Product{Category: "Sports"}, profile); got != 0 {
		t.Fatalf("unrelated category should not match, got %v", got)
	}
}

func TestSubcategoryMatch(t *testing.T) {
	profile := domain.CustomerProfile{PurchaseHistory: []string{"Sneakers"}}

	if got := subcategoryMatch(domain.Product{Subcategory: "sneakers"}, profile); got != 1 {
		t.Fatalf("purchase-history subcategory should match, got %v", got)
	}
	if got := subcategoryMatch(domain.Product{Subcategory: "Sandals"}, profile); got != 0 {
		t.Fatalf("unrelated subcategory should not match, got %v", got)
	}
}

func TestGuardNeutralizesNaN(t *testing.T) {
	if got := guard(math.NaN()); got != 0 {
		t.Fatalf("NaN must contribute zero, got %v", got)
	}
	if got := guard(math.Inf(1)); got != 0 {
		t.Fatalf("Inf must contribute zero, got %v", got)
	}
	if got := guard(0.42); got != 0.42 {
		t.Fatalf("finite values pass through, got %v", got)
	}
}

func TestRoundScoreFourDecimals(t *testing.T) {
	if got := roundScore(0.123456); got != 0.1235 {
		t.Fatalf("roundScore(0.123456) = %v, want 0.1235", got)
	}
	if got := roundScore(2.0); got != 2.0 {
		t.Fatalf("roundScore(2.0) = %v, want 2.0", got)
	}
}

func TestScoreProductBreakdownSumsToScore(t *testing.T) {
	product := domain.Product{
		ProductID:                 "P100",
		Category:                  "Fashion",
		Subcategory:               "Jeans",
		Price:                     50,
		Rating:                    4,
		NormalizedRating:          0.8,
		SentimentScore:            0.9,
		RecommendationProbability: 0.6,
		Season:                    "Winter",
		Holiday:                   "Christmas",
	}

	profile := domain.CustomerProfile{
		CustomerID:        "C1",
		BrowsingHistory:   []string{"Fashion"},
		PurchaseHistory:   []string{"Jeans"},
		PreferredCategory: "Fashion",
		AvgOrderValue:     50,
		Season:            "Winter",
		Holiday:           "Christmas",
	}

	sp := scoreProduct(product, profile, historyTokens(profile), DefaultWeights(), PricePolicyCustomer)

	b := sp.Breakdown
	sum := b.History + b.Rating + b.Sentiment + b.Probability + b.Price +
		b.Category + b.Subcategory + b.Season + b.Holiday

	if math.Abs(sp.Score-roundScore(sum)) > 1e-9 {
		t.Fatalf("score %v does not equal rounded breakdown sum %v", sp.Score, roundScore(sum))
	}

	if b.History == 0 || b.Category == 0 || b.Subcategory == 0 || b.Season == 0 || b.Holiday == 0 {
		t.Fatalf("expected every matching signal to contribute, breakdown: %+v", b)
	}
}

func TestWeightConfigValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate, got %v", err)
	}

	w := DefaultWeights()
	w.Sentiment = -0.1
	if err := w.Validate(); err != domain.ErrInvalidWeight {
		t.Fatalf("negative weight must be rejected, got %v", err)
	}

	var zero WeightConfig
	if err := zero.Validate(); err != nil {
		t.Fatalf("all-zero weights are allowed, got %v", err)
	}
}

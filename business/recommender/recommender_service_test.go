package recommender

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/catalog"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
)

// ---- fakes ----

type fakeProductRepo struct {
	products []domain.Product
	err      error
}

func (f *fakeProductRepo) LoadAll(ctx context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeProfileStore struct {
	profiles map[string]domain.CustomerProfile
}

func (f *fakeProfileStore) GetProfile(ctx context.Context, customerID string) (domain.CustomerProfile, error) {
	p, ok := f.profiles[customerID]
	if !ok {
		return domain.CustomerProfile{}, domain.ErrCustomerNotFound
	}
	return p, nil
}

func newTestService(t *testing.T, products []domain.Product, profiles map[string]domain.CustomerProfile, policy PricePolicy) *Service {
	t.Helper()

	catalogService, err := catalog.NewCatalogService(context.Background(), &fakeProductRepo{products: products}, 0)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	return NewService(&fakeProfileStore{profiles: profiles}, catalogService, policy)
}

func priceOnlyWeights() WeightConfig {
	return WeightConfig{Price: 1}
}

// ---- tests ----

func TestRecommendPriceFitDominates(t *testing.T) {
	products := []domain.Product{
		{ProductID: "P1", Price: 10, Rating: 5},
		{ProductID: "P2", Price: 20, Rating: 3},
		{ProductID: "P3", Price: 30, Rating: 4},
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 10},
	}

	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	recs, err := svc.Recommend(context.Background(), "C1", 3, priceOnlyWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// P1 is an exact price match (1.0); P2 and P3 both clamp to 0 and the
	// tie-break orders them by ascending product id.
	wantOrder := []string{"P1", "P2", "P3"}
	gotOrder := make([]string, 0, len(recs))
	for _, r := range recs {
		gotOrder = append(gotOrder, r.ProductID)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Fatalf("ranking = %v, want %v", gotOrder, wantOrder)
	}

	if recs[0].Score != 1.0 {
		t.Fatalf("P1 score = %v, want 1.0", recs[0].Score)
	}
	if recs[1].Score != 0 || recs[2].Score != 0 {
		t.Fatalf("P2/P3 scores = %v/%v, want 0/0", recs[1].Score, recs[2].Score)
	}
}

func TestRecommendUnknownCustomer(t *testing.T) {
	svc := newTestService(t,
		[]domain.Product{{ProductID: "P1", Price: 10}},
		map[string]domain.CustomerProfile{},
		PricePolicyCustomer,
	)

	_, err := svc.Recommend(context.Background(), "C_DOES_NOT_EXIST", 5, DefaultWeights())
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc := newTestService(t,
		nil,
		map[string]domain.CustomerProfile{"C1": {CustomerID: "C1"}},
		PricePolicyCustomer,
	)

	_, err := svc.Recommend(context.Background(), "C1", 5, DefaultWeights())
	if !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestRecommendNegativeWeightRejected(t *testing.T) {
	svc := newTestService(t,
		[]domain.Product{{ProductID: "P1", Price: 10}},
		map[string]domain.CustomerProfile{"C1": {CustomerID: "C1"}},
		PricePolicyCustomer,
	)

	w := DefaultWeights()
	w.Price = -1

	_, err := svc.Recommend(context.Background(), "C1", 5, w)
	if !errors.Is(err, domain.ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestRecommendResultLength(t *testing.T) {
	products := make([]domain.Product, 0, 8)
	for i := range 8 {
		products = append(products, domain.Product{
			ProductID: fmt.Sprintf("P%d", i),
			Price:     float64(10 + i),
			Rating:    float64(i % 5),
		})
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 12},
	}
	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	cases := []struct {
		topN int
		want int
	}{
		{topN: 3, want: 3},
		{topN: 8, want: 8},
		{topN: 50, want: 8},
		{topN: 0, want: 0},
		{topN: -1, want: 0},
	}

	for _, tc := range cases {
		recs, err := svc.Recommend(context.Background(), "C1", tc.topN, DefaultWeights())
		if err != nil {
			t.Fatalf("topN=%d: unexpected error: %v", tc.topN, err)
		}
		if len(recs) != tc.want {
			t.Fatalf("topN=%d: got %d results, want %d", tc.topN, len(recs), tc.want)
		}
	}
}

func TestRecommendZeroWeightsFallsBackToIDOrder(t *testing.T) {
	products := []domain.Product{
		{ProductID: "P9", Price: 5, Rating: 5},
		{ProductID: "P1", Price: 50, Rating: 1},
		{ProductID: "P5", Price: 20, Rating: 3},
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 20, BrowsingHistory: []string{"everything"}},
	}
	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	recs, err := svc.Recommend(context.Background(), "C1", 3, WeightConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"P1", "P5", "P9"}
	for i, r := range recs {
		if r.Score != 0 {
			t.Fatalf("all-zero weights must yield zero scores, got %v for %s", r.Score, r.ProductID)
		}
		if r.ProductID != want[i] {
			t.Fatalf("position %d = %s, want %s", i, r.ProductID, want[i])
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	products := []domain.Product{
		{ProductID: "P2", Price: 25, Rating: 4, SentimentScore: 0.7, Category: "Fashion"},
		{ProductID: "P1", Price: 30, Rating: 4, SentimentScore: 0.7, Category: "Fashion"},
		{ProductID: "P3", Price: 15, Rating: 2, SentimentScore: 0.1, Category: "Books"},
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 25, PreferredCategory: "Fashion"},
	}
	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	first, err := svc.Recommend(context.Background(), "C1", 3, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 5 {
		again, err := svc.Recommend(context.Background(), "C1", 3, DefaultWeights())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("identical inputs produced different rankings:\n%v\n%v", first, again)
		}
	}
}

func TestRecommendSortedWithDeterministicTies(t *testing.T) {
	products := []domain.Product{
		{ProductID: "B", Price: 10, Rating: 4},
		{ProductID: "A", Price: 10, Rating: 4},
		{ProductID: "C", Price: 10, Rating: 5},
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 10},
	}
	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	recs, err := svc.Recommend(context.Background(), "C1", 3, WeightConfig{Price: 1, Rating: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("result not sorted descending at %d: %v", i, recs)
		}
		if recs[i].Score == recs[i-1].Score && recs[i].ProductID < recs[i-1].ProductID {
			t.Fatalf("equal scores not ordered by ascending product id: %v", recs)
		}
	}

	// C leads on rating, then A before B on the tie
	want := []string{"C", "A", "B"}
	for i, r := range recs {
		if r.ProductID != want[i] {
			t.Fatalf("position %d = %s, want %s", i, r.ProductID, want[i])
		}
	}
}

func TestRecommendCatalogPolicyUsesNormalizedPrice(t *testing.T) {
	products := []domain.Product{
		{ProductID: "CHEAP", Price: 10},
		{ProductID: "MID", Price: 50},
		{ProductID: "DEAR", Price: 100},
	}
	profiles := map[string]domain.CustomerProfile{
		// avg order value close to the expensive product; catalog policy
		// must ignore it and prefer the cheap one
		"C1": {CustomerID: "C1", AvgOrderValue: 100},
	}
	svc := newTestService(t, products, profiles, PricePolicyCatalog)

	recs, err := svc.Recommend(context.Background(), "C1", 3, priceOnlyWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recs[0].ProductID != "CHEAP" {
		t.Fatalf("catalog policy should rank the cheapest first, got %v", recs[0].ProductID)
	}
	if recs[0].Score != 1.0 {
		t.Fatalf("cheapest product normalized price = %v, want 1.0", recs[0].Score)
	}
}

func TestSimilarItems(t *testing.T) {
	products := []domain.Product{
		{ProductID: "P1", Category: "Fashion", Subcategory: "Jeans", Price: 20, Rating: 5},
		{ProductID: "P2", Category: "Fashion", Subcategory: "Shirts", Price: 25, Rating: 1},
		{ProductID: "P3", Category: "Books", Subcategory: "Fiction", Price: 10, Rating: 1},
	}
	profiles := map[string]domain.CustomerProfile{
		"C1": {CustomerID: "C1", AvgOrderValue: 20, PreferredCategory: "Fashion"},
	}
	svc := newTestService(t, products, profiles, PricePolicyCustomer)

	items, err := svc.SimilarItems(context.Background(), "C1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range items {
		if p.ProductID == "P1" {
			t.Fatalf("similar items must exclude the recommended products")
		}
	}

	found := false
	for _, p := range items {
		if p.ProductID == "P2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected P2 (shared category) among similar items, got %v", items)
	}
}

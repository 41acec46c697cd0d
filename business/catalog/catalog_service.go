package catalog

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/metrics"
)

// RatingMax is the upper bound of the product rating scale.
const RatingMax = 5.0

// neutralNorm is substituted when min-max bounds are degenerate
// (all prices or all ratings equal) instead of dividing by zero.
const neutralNorm = 0.5

// ProductRepository contract interface
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}

// Snapshot is an immutable, versioned view of the whole catalog with
// normalization bounds fixed at build time. Readers in flight during a
// reload keep scoring against their own snapshot.
type Snapshot struct {
	Version  int64
	LoadedAt time.Time
	MinPrice float64
	MaxPrice float64

	products []domain.Product
}

// Products returns the snapshot's product slice. Order is stable for the
// lifetime of the snapshot. Callers must not mutate it.
func (s *Snapshot) Products() []domain.Product {
	return s.products
}

func (s *Snapshot) Len() int {
	return len(s.products)
}

type Service struct {
	productRepo ProductRepository
	maxCatalog  int

	current atomic.Pointer[Snapshot]
	version atomic.Int64
}

func NewCatalogService(ctx context.Context, productRepo ProductRepository, maxCatalog int) (*Service, error) {
	s := &Service{
		productRepo: productRepo,
		maxCatalog:  maxCatalog,
	}

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Current returns the live snapshot handle.
func (s *Service) Current() *Snapshot {
	return s.current.Load()
}

// Reload builds a fresh snapshot from the repository and swaps it in
// atomically. The previous snapshot stays valid for readers holding it.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.LoadAll(ctx)
	if err != nil {
		logger.Error("Failed to load product catalog", "error", err)
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	if s.maxCatalog > 0 && len(products) > s.maxCatalog {
		logger.Warn("Catalog exceeds configured bound, truncating",
			"size", len(products), "max", s.maxCatalog)
		products = products[:s.maxCatalog]
	}

	snap := buildSnapshot(products, s.version.Add(1))
	s.current.Store(snap)

	logger.Info("Catalog snapshot loaded",
		"version", snap.Version,
		"products", snap.Len(),
		"min_price", snap.MinPrice,
		"max_price", snap.MaxPrice,
	)

	return snap, nil
}

// Sample returns up to n random products from the current snapshot.
func (s *Service) Sample(n int) []domain.Product {
	snap := s.Current()
	if snap == nil || n <= 0 {
		return []domain.Product{}
	}

	products := snap.Products()
	if n >= len(products) {
		out := make([]domain.Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]domain.Product, 0, n)
	for _, idx := range rand.Perm(len(products))[:n] {
		out = append(out, products[idx])
	}

	return out
}

func buildSnapshot(products []domain.Product, version int64) *Snapshot {
	snap := &Snapshot{
		Version:  version,
		LoadedAt: time.Now(),
		products: make([]domain.Product, len(products)),
	}
	copy(snap.products, products)

	minPrice, maxPrice := priceBounds(snap.products)
	snap.MinPrice = minPrice
	snap.MaxPrice = maxPrice

	priceRange := maxPrice - minPrice

	for i := range snap.products {
		p := &snap.products[i]

		// malformed numerics never abort the batch; the offending
		// field is recovered to a neutral value
		badPrice := math.IsNaN(p.Price) || p.Price < 0
		if badPrice {
			logger.Warn("Malformed price recovered to neutral", "product_id", p.ProductID)
			metrics.MalformedRecordsTotal.Inc()
			p.Price = 0
		}
		if math.IsNaN(p.Rating) || p.Rating < 0 {
			logger.Warn("Malformed rating recovered to zero", "product_id", p.ProductID)
			metrics.MalformedRecordsTotal.Inc()
			p.Rating = 0
		}

		switch {
		case badPrice || priceRange <= 0:
			p.NormalizedPrice = neutralNorm
		default:
			p.NormalizedPrice = 1 - (p.Price-minPrice)/priceRange
		}

		if p.Rating > RatingMax {
			p.Rating = RatingMax
		}
		p.NormalizedRating = p.Rating / RatingMax

		p.SentimentScore = clampUnit(p.SentimentScore)
		p.RecommendationProbability = clampUnit(p.RecommendationProbability)
	}

	return snap
}

func priceBounds(products []domain.Product) (float64, float64) {
	if len(products) == 0 {
		return 0, 0
	}

	minPrice := math.Inf(1)
	maxPrice := math.Inf(-1)
	for _, p := range products {
		if math.IsNaN(p.Price) || p.Price < 0 {
			continue
		}
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	if math.IsInf(minPrice, 1) {
		return 0, 0
	}

	return minPrice, maxPrice
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

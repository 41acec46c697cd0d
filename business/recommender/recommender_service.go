package recommender

import (
	"context"
	"fmt"
	"sort"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/catalog"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
)

const DefaultTopN = 5

const similarItemsCap = 10

// ---- Collaborator interfaces ----

type ProfileStore interface {
	GetProfile(ctx context.Context, customerID string) (domain.CustomerProfile, error)
}

type CatalogStore interface {
	Current() *catalog.Snapshot
}

// ---- Usecase / Service ----

// Service is the scoring & ranking engine. It is stateless per call: each
// request reads the immutable profile store and one catalog snapshot and
// allocates its own transient result, so concurrent requests need no
// coordination.
type Service struct {
	profiles ProfileStore
	catalog  CatalogStore
	policy   PricePolicy
}

func NewService(profiles ProfileStore, catalogStore CatalogStore, policy PricePolicy) *Service {
	if policy != PricePolicyCatalog {
		policy = PricePolicyCustomer
	}
	return &Service{
		profiles: profiles,
		catalog:  catalogStore,
		policy:   policy,
	}
}

// Recommend scores every product in the current catalog snapshot against
// the customer's profile and returns the top-N by score.
//
// Failure semantics: unknown customer -> domain.ErrCustomerNotFound with no
// partial computation; empty catalog -> domain.ErrEmptyCatalog; negative
// weight -> domain.ErrInvalidWeight; topN <= 0 -> empty result, not a fault.
func (s *Service) Recommend(
	ctx context.Context,
	customerID string,
	topN int,
	weights WeightConfig,
) ([]domain.ScoredProduct, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := weights.Validate(); err != nil {
		return nil, err
	}

	customerProfile, err := s.profiles.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	snap := s.catalog.Current()
	if snap == nil || snap.Len() == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	if topN <= 0 {
		return []domain.ScoredProduct{}, nil
	}

	scored := s.scoreAll(customerProfile, snap, weights)

	rankScored(scored)

	if topN < len(scored) {
		scored = scored[:topN]
	}

	logger.Debug("recommendation served",
		"customer_id", customerID,
		"snapshot_version", snap.Version,
		"top_n", topN,
		"returned", len(scored),
		"price_policy", string(s.policy),
	)

	RecommendationsServedTotal.WithLabelValues(string(s.policy)).Inc()

	return scored, nil
}

// SimilarItems returns catalog products that share a category or
// subcategory with the customer's current top-N, excluding the top-N
// themselves.
func (s *Service) SimilarItems(
	ctx context.Context,
	customerID string,
	topN int,
) ([]domain.Product, error) {

	if topN <= 0 {
		topN = DefaultTopN
	}

	top, err := s.Recommend(ctx, customerID, topN, DefaultWeights())
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return []domain.Product{}, nil
	}

	categories := make(map[string]struct{}, len(top))
	subcategories := make(map[string]struct{}, len(top))
	recommended := make(map[string]struct{}, len(top))
	for _, r := range top {
		categories[r.Category] = struct{}{}
		subcategories[r.Subcategory] = struct{}{}
		recommended[r.ProductID] = struct{}{}
	}

	snap := s.catalog.Current()
	if snap == nil {
		return []domain.Product{}, nil
	}

	similar := make([]domain.Product, 0, similarItemsCap)
	seen := make(map[string]struct{})
	for _, p := range snap.Products() {
		if len(similar) >= similarItemsCap {
			break
		}
		if _, ok := recommended[p.ProductID]; ok {
			continue
		}
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		_, catOK := categories[p.Category]
		_, subOK := subcategories[p.Subcategory]
		if !catOK && !subOK {
			continue
		}
		seen[p.ProductID] = struct{}{}
		similar = append(similar, p)
	}

	return similar, nil
}

func (s *Service) scoreAll(
	customerProfile domain.CustomerProfile,
	snap *catalog.Snapshot,
	weights WeightConfig,
) []domain.ScoredProduct {

	tokens := historyTokens(customerProfile)

	scored := make([]domain.ScoredProduct, 0, snap.Len())
	for _, p := range snap.Products() {
		scored = append(scored, scoreProduct(p, customerProfile, tokens, weights, s.policy))
	}

	return scored
}

// rankScored sorts descending by score with a deterministic tie-break on
// ascending product id, so identical inputs always produce an identical
// ordered result.
func rankScored(scored []domain.ScoredProduct) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ProductID < scored[j].ProductID
	})
}

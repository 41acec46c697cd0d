package postgres

import (
	"context"
	"fmt"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"

	"gorm.io/gorm"
)

// RecommendationRepository is the append-only log of past recommendations.
// The engine never reads it; the HTTP layer writes served rankings and the
// history/trending endpoints query it.
type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

func (r *RecommendationRepository) SaveBatch(ctx context.Context, recs []domain.SavedRecommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(recs) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&recs).Error; err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}

	return nil
}

func (r *RecommendationRepository) FindByCustomer(ctx context.Context, customerID string, limit int) ([]domain.SavedRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var recs []domain.SavedRecommendation
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}

	return recs, nil
}

// Trending aggregates the log by product id, most-recommended first.
func (r *RecommendationRepository) Trending(ctx context.Context, limit int) ([]domain.TrendingProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}

	var trending []domain.TrendingProduct
	if err := r.DB.WithContext(ctx).
		Model(&domain.SavedRecommendation{}).
		Select("product_id, MAX(category) AS category, MAX(subcategory) AS subcategory, COUNT(*) AS frequency").
		Group("product_id").
		Order("frequency DESC").
		Limit(limit).
		Scan(&trending).Error; err != nil {
		return nil, fmt.Errorf("failed to query trending products: %w", err)
	}

	return trending, nil
}

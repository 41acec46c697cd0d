package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/catalog"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/recommender"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommenderService interface {
		Recommend(ctx context.Context, customerID string, topN int, weights recommender.WeightConfig) ([]domain.ScoredProduct, error)
		SimilarItems(ctx context.Context, customerID string, topN int) ([]domain.Product, error)
	}

	RecommendationLog interface {
		SaveBatch(ctx context.Context, recs []domain.SavedRecommendation) error
		FindByCustomer(ctx context.Context, customerID string, limit int) ([]domain.SavedRecommendation, error)
		Trending(ctx context.Context, limit int) ([]domain.TrendingProduct, error)
	}

	RecommendationCache interface {
		Get(ctx context.Context, customerID string, topN int, weights recommender.WeightConfig, snapshotVersion int64) ([]domain.ScoredProduct, bool, error)
		Set(ctx context.Context, customerID string, topN int, weights recommender.WeightConfig, snapshotVersion int64, recs []domain.ScoredProduct) error
	}

	SnapshotProvider interface {
		Current() *catalog.Snapshot
	}

	RecommendationHandler struct {
		validate    *validator.Validate
		service     RecommenderService
		log         RecommendationLog
		cache       RecommendationCache
		snapshots   SnapshotProvider
		defaultTopN int
	}

	RecommendQuery struct {
		CustomerID string `query:"customer_id" validate:"required"`
		N          int    `query:"n"`

		HistoryWeight     *float64 `query:"history_weight"`
		RatingWeight      *float64 `query:"rating_weight"`
		SentimentWeight   *float64 `query:"sentiment_weight"`
		ProbabilityWeight *float64 `query:"probability_weight"`
		PriceWeight       *float64 `query:"price_weight"`
		CategoryWeight    *float64 `query:"category_weight"`
		SubcategoryWeight *float64 `query:"subcategory_weight"`
		SeasonWeight      *float64 `query:"season_weight"`
		HolidayWeight     *float64 `query:"holiday_weight"`
	}

	HistoryQuery struct {
		CustomerID string `query:"customer_id" validate:"required"`
		Limit      int    `query:"limit"`
	}

	TrendingQuery struct {
		N int `query:"n"`
	}
)

func NewRecommendationHandler(
	service RecommenderService,
	log RecommendationLog,
	cache RecommendationCache,
	snapshots SnapshotProvider,
	defaultTopN int,
) *RecommendationHandler {
	if defaultTopN <= 0 {
		defaultTopN = recommender.DefaultTopN
	}
	return &RecommendationHandler{
		validate:    validator.New(),
		service:     service,
		log:         log,
		cache:       cache,
		snapshots:   snapshots,
		defaultTopN: defaultTopN,
	}
}

func (q RecommendQuery) weights() recommender.WeightConfig {
	w := recommender.DefaultWeights()
	if q.HistoryWeight != nil {
		w.History = *q.HistoryWeight
	}
	if q.RatingWeight != nil {
		w.Rating = *q.RatingWeight
	}
	if q.SentimentWeight != nil {
		w.Sentiment = *q.SentimentWeight
	}
	if q.ProbabilityWeight != nil {
		w.Probability = *q.ProbabilityWeight
	}
	if q.PriceWeight != nil {
		w.Price = *q.PriceWeight
	}
	if q.CategoryWeight != nil {
		w.Category = *q.CategoryWeight
	}
	if q.SubcategoryWeight != nil {
		w.Subcategory = *q.SubcategoryWeight
	}
	if q.SeasonWeight != nil {
		w.Season = *q.SeasonWeight
	}
	if q.HolidayWeight != nil {
		w.Holiday = *q.HolidayWeight
	}
	return w
}

// GET /api/v1/recommendations?customer_id=C1001&n=5&price_weight=0.3
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = h.defaultTopN
	}

	weights := q.weights()
	ctx := c.Request().Context()

	var snapVersion int64
	if snap := h.snapshots.Current(); snap != nil {
		snapVersion = snap.Version
	}

	if h.cache != nil {
		if recs, hit, err := h.cache.Get(ctx, q.CustomerID, q.N, weights, snapVersion); err != nil {
			logger.Warn("Recommendation cache read failed", "error", err)
		} else if hit {
			return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
		}
	}

	recs, err := h.service.Recommend(ctx, q.CustomerID, q.N, weights)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidWeight):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrEmptyCatalog):
			// zero products is a normal outcome, not a fault
			return c.JSON(http.StatusOK, fres.Response.StatusOK([]domain.ScoredProduct{}))
		default:
			logger.Error("Failed to compute recommendations", "error", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	// persistence is a collaborator concern; a log failure never corrupts
	// the ranked response
	if h.log != nil && len(recs) > 0 {
		rows := make([]domain.SavedRecommendation, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, domain.SavedRecommendation{
				CustomerID:  q.CustomerID,
				ProductID:   r.ProductID,
				Category:    r.Category,
				Subcategory: r.Subcategory,
				Score:       r.Score,
				CreatedAt:   time.Now(),
			})
		}
		if err := h.log.SaveBatch(ctx, rows); err != nil {
			logger.Warn("Failed to persist recommendations", "error", err)
		}
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, q.CustomerID, q.N, weights, snapVersion, recs); err != nil {
			logger.Warn("Recommendation cache write failed", "error", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/history?customer_id=C1001
func (h *RecommendationHandler) History(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rows, err := h.log.FindByCustomer(c.Request().Context(), q.CustomerID, q.Limit)
	if err != nil {
		logger.Error("Failed to load recommendation history", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

// GET /api/v1/recommendations/trending?n=10
func (h *RecommendationHandler) Trending(c echo.Context) error {
	var q TrendingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rows, err := h.log.Trending(c.Request().Context(), q.N)
	if err != nil {
		logger.Error("Failed to load trending products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

// GET /api/v1/recommendations/similar?customer_id=C1001&n=5
func (h *RecommendationHandler) Similar(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	items, err := h.service.SimilarItems(c.Request().Context(), q.CustomerID, q.N)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrEmptyCatalog):
			return c.JSON(http.StatusOK, fres.Response.StatusOK([]domain.Product{}))
		default:
			logger.Error("Failed to find similar items", "error", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

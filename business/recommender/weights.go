package recommender

import "github.com/Neha-Agarwal-coder/shopingRecommendation/domain"

// WeightConfig holds independent multiplicative coefficients, one per
// scoring signal. They are not required to sum to 1; setting a weight to
// zero disables its signal.
type WeightConfig struct {
	History     float64
	Rating      float64
	Sentiment   float64
	Probability float64
	Price       float64
	Category    float64
	Subcategory float64
	Season      float64
	Holiday     float64
}

const (
	// history matches are the strongest behavioral signal and carry the
	// largest default multiplier
	defaultWHistory     = 1.5
	defaultWRating      = 1.0
	defaultWSentiment   = 1.0
	defaultWProbability = 0.8
	defaultWPrice       = 0.5
	defaultWCategory    = 1.0
	defaultWSubcategory = 1.0
	defaultWSeason      = 0.3
	defaultWHoliday     = 0.2
)

func DefaultWeights() WeightConfig {
	return WeightConfig{
		History:     defaultWHistory,
		Rating:      defaultWRating,
		Sentiment:   defaultWSentiment,
		Probability: defaultWProbability,
		Price:       defaultWPrice,
		Category:    defaultWCategory,
		Subcategory: defaultWSubcategory,
		Season:      defaultWSeason,
		Holiday:     defaultWHoliday,
	}
}

// Validate rejects negative weights outright; they are never clamped.
func (w WeightConfig) Validate() error {
	for _, v := range []float64{
		w.History, w.Rating, w.Sentiment, w.Probability, w.Price,
		w.Category, w.Subcategory, w.Season, w.Holiday,
	} {
		if v < 0 {
			return domain.ErrInvalidWeight
		}
	}

	return nil
}

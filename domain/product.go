package domain

// Product is a catalog record. NormalizedPrice and NormalizedRating are
// derived once per catalog snapshot using min-max scaling over the whole
// catalog; they are never recomputed per request.
//
// SentimentScore and RecommendationProbability are pre-normalized to [0,1]
// at ingestion and used as-is by the engine.
type Product struct {
	ProductID                 string   `json:"product_id"`
	Category                  string   `json:"category"`
	Subcategory               string   `json:"subcategory"`
	Brand                     string   `json:"brand,omitempty"`
	Price                     float64  `json:"price"`
	Rating                    float64  `json:"rating"`
	SentimentScore            float64  `json:"sentiment_score"`
	RecommendationProbability float64  `json:"recommendation_probability"`
	Season                    string   `json:"season,omitempty"`
	Holiday                   string   `json:"holiday,omitempty"`
	GeographicalLocation      string   `json:"geographical_location,omitempty"`
	SimilarProducts           []string `json:"similar_products,omitempty"`

	NormalizedPrice  float64 `json:"normalized_price"`
	NormalizedRating float64 `json:"normalized_rating"`
}

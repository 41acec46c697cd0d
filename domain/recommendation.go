package domain

import "time"

// ScoreBreakdown holds the weighted contribution of every signal so a
// ranking can be explained and asserted on in tests.
type ScoreBreakdown struct {
	History     float64 `json:"history"`
	Rating      float64 `json:"rating"`
	Sentiment   float64 `json:"sentiment"`
	Probability float64 `json:"probability"`
	Price       float64 `json:"price"`
	Category    float64 `json:"category"`
	Subcategory float64 `json:"subcategory"`
	Season      float64 `json:"season"`
	Holiday     float64 `json:"holiday"`
}

// ScoredProduct is a transient per-request value; the engine never persists it.
type ScoredProduct struct {
	ProductID   string         `json:"product_id"`
	Category    string         `json:"category"`
	Subcategory string         `json:"subcategory"`
	Price       float64        `json:"price"`
	Rating      float64        `json:"rating"`
	Score       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// CREATE TABLE public.recommendations (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     customer_id  TEXT NOT NULL,
//     product_id   TEXT NOT NULL,
//     category     TEXT,
//     subcategory  TEXT,
//     score        NUMERIC,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

// SavedRecommendation is one row of the append-only recommendation log.
type SavedRecommendation struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  string    `gorm:"column:customer_id;not null;index" json:"customer_id"`
	ProductID   string    `gorm:"column:product_id;not null" json:"product_id"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Subcategory string    `gorm:"column:subcategory;type:text" json:"subcategory"`
	Score       float64   `gorm:"column:score;type:numeric" json:"score"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SavedRecommendation) TableName() string {
	return "recommendations"
}

// TrendingProduct aggregates how often a product was recommended.
type TrendingProduct struct {
	ProductID   string `gorm:"column:product_id" json:"product_id"`
	Category    string `gorm:"column:category" json:"category"`
	Subcategory string `gorm:"column:subcategory" json:"subcategory"`
	Frequency   int64  `gorm:"column:frequency" json:"frequency"`
}

package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/metrics"
)

// ProductRepository loads the product catalog from a delimited file. A row
// with malformed numeric fields is recovered with neutral values and kept;
// it never aborts the batch.
type ProductRepository struct {
	path string
}

func NewProductRepository(path string) *ProductRepository {
	return &ProductRepository{path: path}
}

func (r *ProductRepository) LoadAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read product header: %w", err)
	}
	idx := headerIndex(header)

	var products []domain.Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("Skipping unreadable product row", "error", err)
			continue
		}

		p := domain.Product{
			ProductID:            field(record, idx, "Product_ID"),
			Category:             field(record, idx, "Category"),
			Subcategory:          field(record, idx, "Subcategory"),
			Brand:                field(record, idx, "Brand"),
			Season:               field(record, idx, "Season"),
			Holiday:              field(record, idx, "Holiday"),
			GeographicalLocation: field(record, idx, "Geographical_Location"),
			SimilarProducts:      parseTokenList(field(record, idx, "Similar_Product_List")),
		}

		if p.ProductID == "" {
			logger.Warn("Skipping product row without id")
			continue
		}

		var ok bool
		if p.Price, ok = parseFloat(field(record, idx, "Price"), 0); !ok {
			logger.Warn("Malformed price recovered to neutral", "product_id", p.ProductID)
			metrics.MalformedRecordsTotal.Inc()
		}
		if p.Rating, ok = parseFloat(field(record, idx, "Product_Rating"), 0); !ok {
			logger.Warn("Malformed rating recovered to neutral", "product_id", p.ProductID)
			metrics.MalformedRecordsTotal.Inc()
		}
		if p.SentimentScore, ok = parseFloat(field(record, idx, "Customer_Review_Sentiment_Score"), 0); !ok {
			logger.Warn("Malformed sentiment recovered to neutral", "product_id", p.ProductID)
			metrics.MalformedRecordsTotal.Inc()
		}
		// optional signal; absent defaults to 0
		p.RecommendationProbability, _ = parseFloat(field(record, idx, "Probability_of_Recommendation"), 0)

		products = append(products, p)
	}

	return products, nil
}

package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
)

// CustomerRepository loads customer profiles from a delimited file once at
// process start.
type CustomerRepository struct {
	path string
}

func NewCustomerRepository(path string) *CustomerRepository {
	return &CustomerRepository{path: path}
}

func (r *CustomerRepository) LoadAll(ctx context.Context) ([]domain.CustomerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open customer file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read customer header: %w", err)
	}
	idx := headerIndex(header)

	var customers []domain.CustomerProfile
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("Skipping unreadable customer row", "error", err)
			continue
		}

		c := domain.CustomerProfile{
			CustomerID:        field(record, idx, "Customer_ID"),
			Age:               parseInt(field(record, idx, "Age"), 0),
			Gender:            field(record, idx, "Gender"),
			Location:          field(record, idx, "Location"),
			BrowsingHistory:   parseTokenList(field(record, idx, "Browsing_History")),
			PurchaseHistory:   parseTokenList(field(record, idx, "Purchase_History")),
			PreferredCategory: field(record, idx, "Preferred_Category"),
			Season:            field(record, idx, "Season"),
			Holiday:           field(record, idx, "Holiday"),
			Segment:           field(record, idx, "Customer_Segment"),
		}

		aov, ok := parseFloat(field(record, idx, "Avg_Order_Value"), 0)
		if !ok {
			logger.Warn("Malformed avg order value, price-fit disabled for customer",
				"customer_id", c.CustomerID)
		}
		c.AvgOrderValue = aov

		customers = append(customers, c)
	}

	return customers, nil
}

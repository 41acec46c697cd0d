package profile

import (
	"context"
	"fmt"
	"sort"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
)

// CustomerRepository contract interface
type CustomerRepository interface {
	LoadAll(ctx context.Context) ([]domain.CustomerProfile, error)
}

// Service is a read-only profile store. Profiles are loaded once at
// construction and never mutated afterwards.
type Service struct {
	profiles map[string]domain.CustomerProfile
}

func NewProfileService(ctx context.Context, customerRepo CustomerRepository) (*Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	customers, err := customerRepo.LoadAll(ctx)
	if err != nil {
		logger.Error("Failed to load customer profiles", "error", err)
		return nil, fmt.Errorf("failed to load customer profiles: %w", err)
	}

	profiles := make(map[string]domain.CustomerProfile, len(customers))
	for _, c := range customers {
		if c.CustomerID == "" {
			logger.Warn("Skipping customer row without id")
			continue
		}
		profiles[c.CustomerID] = c
	}

	logger.Info("Customer profiles loaded", "count", len(profiles))

	return &Service{profiles: profiles}, nil
}

// GetProfile looks up a single profile. An unknown id is a normal outcome
// and returns domain.ErrCustomerNotFound, never a fault.
func (s *Service) GetProfile(ctx context.Context, customerID string) (domain.CustomerProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerProfile{}, fmt.Errorf("context error: %w", err)
	}

	p, ok := s.profiles[customerID]
	if !ok {
		return domain.CustomerProfile{}, domain.ErrCustomerNotFound
	}

	return p, nil
}

// CustomerIDs returns every known customer id in ascending order.
func (s *Service) CustomerIDs() []string {
	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"
)

type fakeCustomerRepo struct {
	customers []domain.CustomerProfile
	err       error
}

func (f *fakeCustomerRepo) LoadAll(ctx context.Context) ([]domain.CustomerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

func TestGetProfile(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []domain.CustomerProfile{
		{CustomerID: "C1001", AvgOrderValue: 120.5, PreferredCategory: "Books"},
		{CustomerID: "C1002", AvgOrderValue: 40},
		{CustomerID: ""}, // rows without an id are dropped at load
	}}

	svc, err := NewProfileService(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.GetProfile(context.Background(), "C1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PreferredCategory != "Books" || p.AvgOrderValue != 120.5 {
		t.Fatalf("unexpected profile: %+v", p)
	}

	_, err = svc.GetProfile(context.Background(), "C_DOES_NOT_EXIST")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerIDsSorted(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []domain.CustomerProfile{
		{CustomerID: "C3"},
		{CustomerID: "C1"},
		{CustomerID: "C2"},
	}}

	svc, err := NewProfileService(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"C1", "C2", "C3"}
	if got := svc.CustomerIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("CustomerIDs() = %v, want %v", got, want)
	}
}
